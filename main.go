package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/rs/cors"

	"github.com/afinewinecompany/cnebl-sub004/internal/api"
	"github.com/afinewinecompany/cnebl-sub004/internal/config"
	"github.com/afinewinecompany/cnebl-sub004/internal/logger"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/storage"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

func main() {
	// 載入 .env（若存在），再載入應用程式配置
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}

	log := logger.New(cfg.Server.Mode)
	defer log.Sync()

	utils.InitJWT(cfg.Auth.JWTSecret, cfg.Auth.TokenHours)

	// 初始化資料庫連接
	db, err := storage.NewPostgresDB(cfg.DB.Host, cfg.DB.User, cfg.DB.Password, cfg.DB.Name, cfg.DB.Port)
	if err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	// 自動遷移資料庫結構
	if err := db.AutoMigrate(
		&models.User{},
		&models.Team{},
		&models.Season{},
		&models.Game{},
		&models.Message{},
		&models.ChannelReadMark{},
		&models.PlateAppearance{},
		&models.Availability{},
	); err != nil {
		log.Fatal("failed to auto migrate database", "error", err)
	}

	// Redis 供未讀數、戰績快取與流量限制使用
	rdb, err := storage.NewRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.PoolSize)
	if err != nil {
		log.Fatal("failed to connect to redis", "error", err)
	}
	defer rdb.Close()

	// 初始化 repositories 與 services
	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, clockwork.NewRealClock(), log)

	// 設置 Gin 路由
	gin.SetMode(cfg.Server.Mode)
	r := gin.New()
	r.Use(gin.Recovery())
	api.SetupRoutes(r, services, cfg, rdb, log)

	// 前端由獨立的 SPA 提供，以 CORS 包住整個路由器
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	log.Info("starting server", "address", cfg.Server.Address)
	if err := http.ListenAndServe(cfg.Server.Address, corsHandler.Handler(r)); err != nil {
		log.Fatal("failed to run server", "error", err)
	}
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/afinewinecompany/cnebl-sub004/internal/api/handlers"
	"github.com/afinewinecompany/cnebl-sub004/internal/config"
	"github.com/afinewinecompany/cnebl-sub004/internal/logger"
	"github.com/afinewinecompany/cnebl-sub004/internal/middleware"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/service"
	"github.com/afinewinecompany/cnebl-sub004/internal/utils"
)

func SetupRoutes(r *gin.Engine, services *service.Services, cfg *config.Config, rdb *redis.Client, log *logger.Logger) {
	// 初始化 handlers
	authHandler := handlers.NewAuthHandler(services.User, cfg.Auth.CookieName, cfg.Auth.CookieSecure, cfg.Auth.TokenHours)
	profileHandler := handlers.NewProfileHandler(services.User)
	teamHandler := handlers.NewTeamHandler(services.Team)
	gameHandler := handlers.NewGameHandler(services.Game)
	standingsHandler := handlers.NewStandingsHandler(services.Standings)
	statsHandler := handlers.NewStatsHandler(services.Scorebook, services.Season)
	chatHandler := handlers.NewChatHandler(services.Chat)
	wsHandler := handlers.NewWebSocketHandler(services.Hub, services.Chat)
	availabilityHandler := handlers.NewAvailabilityHandler(services.Game)
	scorebookHandler := handlers.NewScorebookHandler(services.Scorebook)
	adminUserHandler := handlers.NewAdminUserHandler(services.User)
	adminTeamHandler := handlers.NewAdminTeamHandler(services.Team)
	adminSeasonHandler := handlers.NewAdminSeasonHandler(services.Season)
	adminGameHandler := handlers.NewAdminGameHandler(services.Game)

	r.Use(middleware.RequestLogMiddleware(log))
	r.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimit.RequestsPerMinute))

	// 處理 404 錯誤
	r.NoRoute(func(c *gin.Context) {
		utils.Fail(c, http.StatusNotFound, utils.CodeNotFound, "找不到該路徑")
	})

	api := r.Group("/api")

	// 公開路由
	{
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/standings", standingsHandler.Get)
		api.GET("/schedule", gameHandler.Schedule)
		api.GET("/games/:id", gameHandler.Get)
		api.GET("/stats/batting", statsHandler.Batting)

		api.GET("/teams", teamHandler.List)
		api.GET("/teams/:id", teamHandler.Get)
		api.GET("/teams/:id/roster", teamHandler.Roster)

		// 基本的健康檢查
		api.GET("/health", handlers.Health)
	}

	// 需要驗證的路由
	authorized := api.Group("/")
	authorized.Use(middleware.AuthMiddleware(cfg.Auth.CookieName))
	{
		// 個人資料
		authorized.GET("/me", profileHandler.Me)
		authorized.PUT("/me", profileHandler.UpdateMe)
		authorized.PUT("/me/password", profileHandler.ChangePassword)

		// 球隊成員
		authorized.POST("/teams/join", teamHandler.Join)
		authorized.POST("/teams/leave", teamHandler.Leave)

		// 球隊頻道聊天
		channels := authorized.Group("/teams/:id/channels")
		{
			channels.GET("/unread", chatHandler.Unread)
			channels.GET("/:channel/messages", chatHandler.Messages)
			channels.POST("/:channel/messages", chatHandler.Post)
			channels.GET("/:channel/pins", chatHandler.Pinned)
			channels.POST("/:channel/read", chatHandler.MarkRead)
			channels.PUT("/:channel/messages/:messageID", chatHandler.Edit)
			channels.DELETE("/:channel/messages/:messageID", chatHandler.Delete)
			channels.POST("/:channel/messages/:messageID/pin", chatHandler.Pin)
			channels.DELETE("/:channel/messages/:messageID/pin", chatHandler.Unpin)
		}

		// WebSocket 連接（掛在球隊路由下）
		authorized.GET("/teams/:id/chat/ws", wsHandler.HandleChatWS)

		// 出席回覆
		authorized.GET("/games/:id/availability", availabilityHandler.List)
		authorized.PUT("/games/:id/availability", availabilityHandler.Set)

		// 記錄簿（服務層再驗證記錄權限）
		authorized.GET("/games/:id/plate-appearances", scorebookHandler.List)
		authorized.POST("/games/:id/plate-appearances", scorebookHandler.Record)
		authorized.DELETE("/games/:id/plate-appearances/last", scorebookHandler.DeleteLast)
	}

	// 管理後台路由
	admin := api.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg.Auth.CookieName), middleware.RoleAuthMiddleware(models.RoleAdmin))
	{
		admin.GET("/users", adminUserHandler.List)
		admin.PUT("/users/:id/status", adminUserHandler.SetStatus)
		admin.DELETE("/users/:id", adminUserHandler.Delete)
		// 角色變更僅限會長
		admin.PUT("/users/:id/role", middleware.RoleAuthMiddleware(models.RoleCommissioner), adminUserHandler.SetRole)

		admin.POST("/teams", adminTeamHandler.Create)
		admin.PUT("/teams/:id", adminTeamHandler.Update)
		admin.DELETE("/teams/:id", adminTeamHandler.Delete)
		admin.POST("/teams/:id/reset-invite-code", adminTeamHandler.ResetInviteCode)
		admin.PUT("/teams/:id/manager", adminTeamHandler.SetManager)

		admin.GET("/seasons", adminSeasonHandler.List)
		admin.POST("/seasons", adminSeasonHandler.Create)
		admin.PUT("/seasons/:id", adminSeasonHandler.Update)
		admin.POST("/seasons/:id/activate", adminSeasonHandler.Activate)

		admin.POST("/games", adminGameHandler.Create)
		admin.PUT("/games/:id", adminGameHandler.Reschedule)
		admin.PUT("/games/:id/score", adminGameHandler.SetScore)
		admin.POST("/games/:id/start-warmup", adminGameHandler.StartWarmup)
		admin.POST("/games/:id/start", adminGameHandler.Start)
		admin.POST("/games/:id/suspend", adminGameHandler.Suspend)
		admin.POST("/games/:id/resume", adminGameHandler.Resume)
		admin.POST("/games/:id/postpone", adminGameHandler.Postpone)
		admin.POST("/games/:id/cancel", adminGameHandler.Cancel)
		admin.POST("/games/:id/finalize", adminGameHandler.Finalize)
	}
}

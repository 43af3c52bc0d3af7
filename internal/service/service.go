package service

import (
	"errors"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"

	"github.com/afinewinecompany/cnebl-sub004/internal/logger"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

// 服務層的共用錯誤，handler 依此對應 HTTP 狀態碼
var (
	ErrNotFound   = errors.New("資源不存在")
	ErrForbidden  = errors.New("權限不足")
	ErrConflict   = errors.New("狀態衝突")
	ErrValidation = errors.New("資料驗證失敗")
)

type Services struct {
	User      *UserService
	Team      *TeamService
	Season    *SeasonService
	Game      *GameService
	Chat      *ChatService
	Scorebook *ScorebookService
	Standings *StandingsService
	Hub       *ChatHub
}

func NewServices(repos *repository.Repositories, rdb *redis.Client, clock clockwork.Clock, log *logger.Logger) *Services {
	hub := NewChatHub(log)

	userService := NewUserService(repos.User)
	teamService := NewTeamService(repos.Team, repos.User)
	seasonService := NewSeasonService(repos.Season)
	gameService := NewGameService(repos.Game, repos.Team, repos.Season, repos.Availability, rdb, clock, log)
	chatService := NewChatService(repos.Message, repos.User, repos.Team, hub, rdb, clock, log)
	scorebookService := NewScorebookService(repos.PlateAppearance, repos.Game, repos.User)
	standingsService := NewStandingsService(repos.Game, repos.Team, repos.Season, rdb, log)

	return &Services{
		User:      userService,
		Team:      teamService,
		Season:    seasonService,
		Game:      gameService,
		Chat:      chatService,
		Scorebook: scorebookService,
		Standings: standingsService,
		Hub:       hub,
	}
}

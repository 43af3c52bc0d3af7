package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/logger"
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

type GameService struct {
	gameRepo         repository.GameRepository
	teamRepo         repository.TeamRepository
	seasonRepo       repository.SeasonRepository
	availabilityRepo repository.AvailabilityRepository
	rdb              *redis.Client
	clock            clockwork.Clock
	log              *logger.Logger
}

func NewGameService(
	gameRepo repository.GameRepository,
	teamRepo repository.TeamRepository,
	seasonRepo repository.SeasonRepository,
	availabilityRepo repository.AvailabilityRepository,
	rdb *redis.Client,
	clock clockwork.Clock,
	log *logger.Logger,
) *GameService {
	return &GameService{
		gameRepo:         gameRepo,
		teamRepo:         teamRepo,
		seasonRepo:       seasonRepo,
		availabilityRepo: availabilityRepo,
		rdb:              rdb,
		clock:            clock,
		log:              log,
	}
}

// Create 排定一場新比賽
func (s *GameService) Create(seasonID, homeTeamID, awayTeamID uint, scheduledAt time.Time, field string) (*models.Game, error) {
	if homeTeamID == awayTeamID {
		return nil, fmt.Errorf("%w: 主隊與客隊不可相同", ErrValidation)
	}
	if _, err := s.seasonRepo.FindByID(seasonID); err != nil {
		return nil, fmt.Errorf("%w: 賽季不存在", ErrNotFound)
	}
	if _, err := s.teamRepo.FindByID(homeTeamID); err != nil {
		return nil, fmt.Errorf("%w: 主隊不存在", ErrNotFound)
	}
	if _, err := s.teamRepo.FindByID(awayTeamID); err != nil {
		return nil, fmt.Errorf("%w: 客隊不存在", ErrNotFound)
	}

	game := &models.Game{
		SeasonID:    seasonID,
		HomeTeamID:  homeTeamID,
		AwayTeamID:  awayTeamID,
		ScheduledAt: scheduledAt,
		Field:       field,
		Status:      models.GameStatusScheduled,
	}

	if err := s.gameRepo.Create(game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *GameService) Get(id uint) (*models.Game, error) {
	game, err := s.gameRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: 比賽不存在", ErrNotFound)
	}
	return game, err
}

// Schedule 查詢賽程，未指定賽季時採用啟用中的賽季
func (s *GameService) Schedule(filter repository.ScheduleFilter) ([]models.Game, error) {
	if filter.SeasonID == 0 {
		season, err := s.seasonRepo.FindActive()
		if err == nil {
			filter.SeasonID = season.ID
		}
	}
	return s.gameRepo.FindSchedule(filter)
}

// Reschedule 重新排定比賽時間，延賽的比賽回到 scheduled 狀態
func (s *GameService) Reschedule(id uint, scheduledAt time.Time, field string) (*models.Game, error) {
	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	switch game.Status {
	case models.GameStatusScheduled:
		// 尚未開打，直接改時間
	case models.GameStatusPostponed:
		game.Status = models.GameStatusScheduled
		game.StatusNote = ""
	default:
		return nil, fmt.Errorf("%w: 狀態 %s 的比賽不可重新排定", ErrConflict, game.Status)
	}

	game.ScheduledAt = scheduledAt
	if field != "" {
		game.Field = field
	}

	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

// transition 套用狀態轉換的共用守門邏輯
func (s *GameService) transition(game *models.Game, next models.GameStatus, note string) error {
	if !game.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: 不可由 %s 轉換為 %s", ErrConflict, game.Status, next)
	}
	game.Status = next
	if note != "" {
		game.StatusNote = note
	}
	return nil
}

// StartWarmup 比賽進入賽前熱身
func (s *GameService) StartWarmup(id uint) (*models.Game, error) {
	return s.applyTransition(id, models.GameStatusWarmup, "", nil)
}

// Start 比賽開打，首次開打時記錄開始時間
func (s *GameService) Start(id uint) (*models.Game, error) {
	return s.applyTransition(id, models.GameStatusInProgress, "", func(game *models.Game) {
		if game.StartedAt == nil {
			now := s.clock.Now()
			game.StartedAt = &now
		}
	})
}

// Suspend 比賽因故中斷（保留比分，之後可續賽）
func (s *GameService) Suspend(id uint, note string) (*models.Game, error) {
	return s.applyTransition(id, models.GameStatusSuspended, note, nil)
}

// Resume 中斷的比賽恢復進行
func (s *GameService) Resume(id uint) (*models.Game, error) {
	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if game.Status != models.GameStatusSuspended {
		return nil, fmt.Errorf("%w: 只有中斷中的比賽可以續賽", ErrConflict)
	}
	return s.applyTransition(id, models.GameStatusInProgress, "", nil)
}

// Postpone 延賽，之後須重新排定日期
func (s *GameService) Postpone(id uint, note string) (*models.Game, error) {
	return s.applyTransition(id, models.GameStatusPostponed, note, nil)
}

// Cancel 取消比賽，為終止狀態
func (s *GameService) Cancel(id uint, note string) (*models.Game, error) {
	return s.applyTransition(id, models.GameStatusCancelled, note, nil)
}

// SetScore 更新即時比分，僅進行中（含中斷）的比賽可更新
func (s *GameService) SetScore(id uint, homeScore, awayScore int) (*models.Game, error) {
	if homeScore < 0 || awayScore < 0 {
		return nil, fmt.Errorf("%w: 比分不可為負", ErrValidation)
	}

	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !game.Status.Live() {
		return nil, fmt.Errorf("%w: 比賽不在進行中，無法更新比分", ErrConflict)
	}

	game.HomeScore = homeScore
	game.AwayScore = awayScore
	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

// Finalize 比賽結束並確定最終比分，戰績快取隨之失效
func (s *GameService) Finalize(id uint, homeScore, awayScore *int) (*models.Game, error) {
	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if homeScore != nil && awayScore != nil {
		if *homeScore < 0 || *awayScore < 0 {
			return nil, fmt.Errorf("%w: 比分不可為負", ErrValidation)
		}
		game.HomeScore = *homeScore
		game.AwayScore = *awayScore
	} else if game.StartedAt == nil {
		// 沒開打過又沒給比分，無從確定結果
		return nil, fmt.Errorf("%w: 結束比賽必須附上最終比分", ErrValidation)
	}

	if err := s.transition(game, models.GameStatusFinal, ""); err != nil {
		return nil, err
	}
	now := s.clock.Now()
	game.EndedAt = &now

	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}

	s.invalidateStandings()
	return game, nil
}

// applyTransition 讀取、轉換、回寫的共用流程，mutate 在轉換成功後執行
func (s *GameService) applyTransition(id uint, next models.GameStatus, note string, mutate func(*models.Game)) (*models.Game, error) {
	game, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if err := s.transition(game, next, note); err != nil {
		return nil, err
	}
	if mutate != nil {
		mutate(game)
	}

	if err := s.gameRepo.Update(game); err != nil {
		return nil, err
	}
	return game, nil
}

// invalidateStandings 清空戰績相關的 Redis 快取，確保下次查詢取得最新資料
func (s *GameService) invalidateStandings() {
	if s.rdb == nil {
		return
	}
	ctx := context.Background()
	keys, err := s.rdb.Keys(ctx, "standings:*").Result()
	if err == nil && len(keys) > 0 {
		s.rdb.Del(ctx, keys...)
		s.log.Info("standings cache invalidated", "keys", len(keys))
	}
}

// SetAvailability 球員回覆某場比賽的出席狀況
func (s *GameService) SetAvailability(userID, gameID uint, status, note string) (*models.Availability, error) {
	if !models.ValidAvailability(status) {
		return nil, fmt.Errorf("%w: 無效的出席回覆", ErrValidation)
	}

	game, err := s.Get(gameID)
	if err != nil {
		return nil, err
	}
	if game.Status.Terminal() {
		return nil, fmt.Errorf("%w: 比賽已結束，不可回覆出席", ErrConflict)
	}

	availability := &models.Availability{
		UserID: userID,
		GameID: gameID,
		Status: models.AvailabilityStatus(status),
		Note:   note,
	}
	if err := s.availabilityRepo.Upsert(availability); err != nil {
		return nil, err
	}
	return s.availabilityRepo.FindByUserAndGame(userID, gameID)
}

// GameAvailability 查詢某場比賽所有人的出席回覆
func (s *GameService) GameAvailability(gameID uint) ([]models.Availability, error) {
	if _, err := s.Get(gameID); err != nil {
		return nil, err
	}
	return s.availabilityRepo.FindByGame(gameID)
}

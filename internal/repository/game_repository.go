package repository

import (
	"time"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/storage"
)

// ScheduleFilter 描述賽程查詢的過濾條件，零值欄位不參與過濾
type ScheduleFilter struct {
	SeasonID uint
	TeamID   uint
	From     time.Time
	To       time.Time
}

type GameRepository interface {
	Create(game *models.Game) error
	FindByID(id uint) (*models.Game, error)
	FindSchedule(filter ScheduleFilter) ([]models.Game, error)
	FindFinalBySeason(seasonID uint) ([]models.Game, error)
	Update(game *models.Game) error
	Delete(id uint) error
}

type gameRepository struct {
	db *storage.PostgresDB
}

func NewGameRepository(db *storage.PostgresDB) GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(game *models.Game) error {
	return r.db.Create(game).Error
}

func (r *gameRepository) FindByID(id uint) (*models.Game, error) {
	var game models.Game
	err := r.db.First(&game, id).Error
	if err != nil {
		return nil, err
	}
	return &game, nil
}

func (r *gameRepository) FindSchedule(filter ScheduleFilter) ([]models.Game, error) {
	query := r.db.DB
	if filter.SeasonID != 0 {
		query = query.Where("season_id = ?", filter.SeasonID)
	}
	if filter.TeamID != 0 {
		query = query.Where("home_team_id = ? OR away_team_id = ?", filter.TeamID, filter.TeamID)
	}
	if !filter.From.IsZero() {
		query = query.Where("scheduled_at >= ?", filter.From)
	}
	if !filter.To.IsZero() {
		query = query.Where("scheduled_at <= ?", filter.To)
	}

	var games []models.Game
	err := query.Order("scheduled_at asc").Find(&games).Error
	return games, err
}

// FindFinalBySeason 查詢某賽季所有已完賽的比賽，戰績計算只採計這些
func (r *gameRepository) FindFinalBySeason(seasonID uint) ([]models.Game, error) {
	var games []models.Game
	err := r.db.Where("season_id = ? AND status = ?", seasonID, models.GameStatusFinal).
		Find(&games).Error
	return games, err
}

func (r *gameRepository) Update(game *models.Game) error {
	return r.db.Save(game).Error
}

func (r *gameRepository) Delete(id uint) error {
	return r.db.Delete(&models.Game{}, id).Error
}

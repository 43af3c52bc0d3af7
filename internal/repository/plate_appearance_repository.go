package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/storage"
)

// BattingTotals 是打擊統計查詢的聚合結果
type BattingTotals struct {
	BatterID   uint   `json:"batter_id"`
	PlayerName string `json:"player_name"`
	TeamName   string `json:"team_name"`
	PA         int    `json:"pa"`
	Hits       int    `json:"hits"`
	Walks      int    `json:"walks"`
	Sacrifices int    `json:"sacrifices"`
	RBI        int    `json:"rbi"`
}

type PlateAppearanceRepository interface {
	Create(pa *models.PlateAppearance) error
	FindByGame(gameID uint) ([]models.PlateAppearance, error)
	FindLastByGame(gameID uint) (*models.PlateAppearance, error)
	Delete(id uint) error
	BattingTotalsBySeason(seasonID uint) ([]BattingTotals, error)
}

type plateAppearanceRepository struct {
	db *storage.PostgresDB
}

func NewPlateAppearanceRepository(db *storage.PostgresDB) PlateAppearanceRepository {
	return &plateAppearanceRepository{db: db}
}

func (r *plateAppearanceRepository) Create(pa *models.PlateAppearance) error {
	return r.db.Create(pa).Error
}

func (r *plateAppearanceRepository) FindByGame(gameID uint) ([]models.PlateAppearance, error) {
	var pas []models.PlateAppearance
	err := r.db.Where("game_id = ?", gameID).Order("number asc").Find(&pas).Error
	return pas, err
}

// FindLastByGame 查詢該場比賽序號最大的打席，沒有紀錄時回傳 nil
func (r *plateAppearanceRepository) FindLastByGame(gameID uint) (*models.PlateAppearance, error) {
	var pa models.PlateAppearance
	err := r.db.Where("game_id = ?", gameID).Order("number DESC").First(&pa).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pa, nil
}

func (r *plateAppearanceRepository) Delete(id uint) error {
	return r.db.Delete(&models.PlateAppearance{}, id).Error
}

// BattingTotalsBySeason 以 JOIN 與 GROUP BY 一次聚合出整季每位打者的打擊數據
func (r *plateAppearanceRepository) BattingTotalsBySeason(seasonID uint) ([]BattingTotals, error) {
	var totals []BattingTotals
	err := r.db.Table("plate_appearances pa").
		Select(`pa.batter_id,
			u.display_name as player_name,
			t.name as team_name,
			COUNT(*) as pa,
			COUNT(*) FILTER (WHERE pa.result = 'hit') as hits,
			COUNT(*) FILTER (WHERE pa.result = 'walk') as walks,
			COUNT(*) FILTER (WHERE pa.result = 'sacrifice') as sacrifices,
			COALESCE(SUM(pa.rbi), 0) as rbi`).
		Joins("JOIN games g ON pa.game_id = g.id").
		Joins("JOIN users u ON pa.batter_id = u.id").
		Joins("JOIN teams t ON pa.team_id = t.id").
		Where("g.season_id = ? AND pa.deleted_at IS NULL", seasonID).
		Group("pa.batter_id, u.display_name, t.name").
		Order("hits DESC").
		Scan(&totals).Error
	return totals, err
}

package repository

import (
	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/storage"
)

type SeasonRepository interface {
	Create(season *models.Season) error
	FindByID(id uint) (*models.Season, error)
	FindActive() (*models.Season, error)
	FindAll() ([]models.Season, error)
	Update(season *models.Season) error
	Activate(id uint) error
}

type seasonRepository struct {
	db *storage.PostgresDB
}

func NewSeasonRepository(db *storage.PostgresDB) SeasonRepository {
	return &seasonRepository{db: db}
}

func (r *seasonRepository) Create(season *models.Season) error {
	return r.db.Create(season).Error
}

func (r *seasonRepository) FindByID(id uint) (*models.Season, error) {
	var season models.Season
	err := r.db.First(&season, id).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepository) FindActive() (*models.Season, error) {
	var season models.Season
	err := r.db.Where("active = ?", true).First(&season).Error
	if err != nil {
		return nil, err
	}
	return &season, nil
}

func (r *seasonRepository) FindAll() ([]models.Season, error) {
	var seasons []models.Season
	err := r.db.Order("year DESC, start_date DESC").Find(&seasons).Error
	return seasons, err
}

func (r *seasonRepository) Update(season *models.Season) error {
	return r.db.Save(season).Error
}

// Activate 在交易中將指定賽季設為啟用，並停用其他賽季
func (r *seasonRepository) Activate(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Season{}).Where("active = ?", true).
			Update("active", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.Season{}).Where("id = ?", id).
			Update("active", true).Error
	})
}

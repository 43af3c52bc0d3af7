package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/storage"
)

type AvailabilityRepository interface {
	Upsert(availability *models.Availability) error
	FindByGame(gameID uint) ([]models.Availability, error)
	FindByUserAndGame(userID, gameID uint) (*models.Availability, error)
}

type availabilityRepository struct {
	db *storage.PostgresDB
}

func NewAvailabilityRepository(db *storage.PostgresDB) AvailabilityRepository {
	return &availabilityRepository{db: db}
}

// Upsert 建立或更新使用者對某場比賽的出席回覆
func (r *availabilityRepository) Upsert(availability *models.Availability) error {
	existing, err := r.FindByUserAndGame(availability.UserID, availability.GameID)
	if err != nil {
		return err
	}
	if existing == nil {
		return r.db.Create(availability).Error
	}
	existing.Status = availability.Status
	existing.Note = availability.Note
	return r.db.Save(existing).Error
}

func (r *availabilityRepository) FindByGame(gameID uint) ([]models.Availability, error) {
	var availabilities []models.Availability
	err := r.db.Where("game_id = ?", gameID).Find(&availabilities).Error
	return availabilities, err
}

func (r *availabilityRepository) FindByUserAndGame(userID, gameID uint) (*models.Availability, error) {
	var availability models.Availability
	err := r.db.Where("user_id = ? AND game_id = ?", userID, gameID).First(&availability).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &availability, nil
}

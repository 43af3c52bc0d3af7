package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

type SeasonService struct {
	seasonRepo repository.SeasonRepository
}

func NewSeasonService(seasonRepo repository.SeasonRepository) *SeasonService {
	return &SeasonService{seasonRepo: seasonRepo}
}

func (s *SeasonService) Create(name string, year int, startDate, endDate time.Time) (*models.Season, error) {
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("%w: 賽季結束日必須晚於開始日", ErrValidation)
	}

	season := &models.Season{
		Name:      name,
		Year:      year,
		StartDate: startDate,
		EndDate:   endDate,
	}

	if err := s.seasonRepo.Create(season); err != nil {
		return nil, err
	}
	return season, nil
}

func (s *SeasonService) Get(id uint) (*models.Season, error) {
	season, err := s.seasonRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: 賽季不存在", ErrNotFound)
	}
	return season, err
}

// Active 查詢目前啟用中的賽季
func (s *SeasonService) Active() (*models.Season, error) {
	season, err := s.seasonRepo.FindActive()
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: 目前沒有啟用中的賽季", ErrNotFound)
	}
	return season, err
}

func (s *SeasonService) List() ([]models.Season, error) {
	return s.seasonRepo.FindAll()
}

func (s *SeasonService) Update(id uint, name string, startDate, endDate time.Time) (*models.Season, error) {
	season, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if name != "" {
		season.Name = name
	}
	if !startDate.IsZero() {
		season.StartDate = startDate
	}
	if !endDate.IsZero() {
		season.EndDate = endDate
	}
	if !season.EndDate.After(season.StartDate) {
		return nil, fmt.Errorf("%w: 賽季結束日必須晚於開始日", ErrValidation)
	}

	if err := s.seasonRepo.Update(season); err != nil {
		return nil, err
	}
	return season, nil
}

// Activate 啟用指定賽季，其他賽季同時停用
func (s *SeasonService) Activate(id uint) (*models.Season, error) {
	if _, err := s.Get(id); err != nil {
		return nil, err
	}

	if err := s.seasonRepo.Activate(id); err != nil {
		return nil, err
	}
	return s.Get(id)
}

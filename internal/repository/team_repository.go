package repository

import (
	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/storage"
)

type TeamRepository interface {
	Create(team *models.Team) error
	FindByID(id uint) (*models.Team, error)
	FindByInviteCode(code string) (*models.Team, error)
	FindAll() ([]models.Team, error)
	Update(team *models.Team) error
	Delete(id uint) error
}

type teamRepository struct {
	db *storage.PostgresDB
}

func NewTeamRepository(db *storage.PostgresDB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

func (r *teamRepository) FindByID(id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) FindByInviteCode(code string) (*models.Team, error) {
	var team models.Team
	err := r.db.Where("invite_code = ?", code).First(&team).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) FindAll() ([]models.Team, error) {
	var teams []models.Team
	err := r.db.Order("name asc").Find(&teams).Error
	return teams, err
}

func (r *teamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

func (r *teamRepository) Delete(id uint) error {
	return r.db.Delete(&models.Team{}, id).Error
}

package repository

import "github.com/afinewinecompany/cnebl-sub004/internal/storage"

type Repositories struct {
	User            UserRepository
	Team            TeamRepository
	Season          SeasonRepository
	Game            GameRepository
	Message         MessageRepository
	PlateAppearance PlateAppearanceRepository
	Availability    AvailabilityRepository
}

func NewRepositories(db *storage.PostgresDB) *Repositories {
	return &Repositories{
		User:            NewUserRepository(db),
		Team:            NewTeamRepository(db),
		Season:          NewSeasonRepository(db),
		Game:            NewGameRepository(db),
		Message:         NewMessageRepository(db),
		PlateAppearance: NewPlateAppearanceRepository(db),
		Availability:    NewAvailabilityRepository(db),
	}
}

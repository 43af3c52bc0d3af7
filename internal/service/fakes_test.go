package service

import (
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

// 測試用的記憶體版 repositories

type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) FindByID(id uint) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	for _, user := range r.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindByTeamID(teamID uint) ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		if user.TeamID != nil && *user.TeamID == teamID {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) FindAll(role, status string) ([]models.User, error) {
	var users []models.User
	for _, user := range r.users {
		if role != "" && string(user.Role) != role {
			continue
		}
		if status != "" && string(user.Status) != status {
			continue
		}
		users = append(users, *user)
	}
	return users, nil
}

func (r *fakeUserRepo) Update(user *models.User) error {
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) Delete(id uint) error {
	delete(r.users, id)
	return nil
}

type fakeTeamRepo struct {
	teams  map[uint]*models.Team
	nextID uint
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uint]*models.Team), nextID: 1}
}

func (r *fakeTeamRepo) Create(team *models.Team) error {
	for _, existing := range r.teams {
		if existing.Name == team.Name {
			return gorm.ErrDuplicatedKey
		}
	}
	team.ID = r.nextID
	r.nextID++
	copied := *team
	r.teams[team.ID] = &copied
	return nil
}

func (r *fakeTeamRepo) FindByID(id uint) (*models.Team, error) {
	team, ok := r.teams[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *team
	return &copied, nil
}

func (r *fakeTeamRepo) FindByInviteCode(code string) (*models.Team, error) {
	for _, team := range r.teams {
		if team.InviteCode == code {
			copied := *team
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeTeamRepo) FindAll() ([]models.Team, error) {
	var teams []models.Team
	for _, team := range r.teams {
		teams = append(teams, *team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (r *fakeTeamRepo) Update(team *models.Team) error {
	copied := *team
	r.teams[team.ID] = &copied
	return nil
}

func (r *fakeTeamRepo) Delete(id uint) error {
	delete(r.teams, id)
	return nil
}

type fakeSeasonRepo struct {
	seasons map[uint]*models.Season
	nextID  uint
}

func newFakeSeasonRepo() *fakeSeasonRepo {
	return &fakeSeasonRepo{seasons: make(map[uint]*models.Season), nextID: 1}
}

func (r *fakeSeasonRepo) Create(season *models.Season) error {
	season.ID = r.nextID
	r.nextID++
	copied := *season
	r.seasons[season.ID] = &copied
	return nil
}

func (r *fakeSeasonRepo) FindByID(id uint) (*models.Season, error) {
	season, ok := r.seasons[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *season
	return &copied, nil
}

func (r *fakeSeasonRepo) FindActive() (*models.Season, error) {
	for _, season := range r.seasons {
		if season.Active {
			copied := *season
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeSeasonRepo) FindAll() ([]models.Season, error) {
	var seasons []models.Season
	for _, season := range r.seasons {
		seasons = append(seasons, *season)
	}
	return seasons, nil
}

func (r *fakeSeasonRepo) Update(season *models.Season) error {
	copied := *season
	r.seasons[season.ID] = &copied
	return nil
}

func (r *fakeSeasonRepo) Activate(id uint) error {
	for _, season := range r.seasons {
		season.Active = season.ID == id
	}
	return nil
}

type fakeGameRepo struct {
	games  map[uint]*models.Game
	nextID uint
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[uint]*models.Game), nextID: 1}
}

func (r *fakeGameRepo) Create(game *models.Game) error {
	game.ID = r.nextID
	r.nextID++
	copied := *game
	r.games[game.ID] = &copied
	return nil
}

func (r *fakeGameRepo) FindByID(id uint) (*models.Game, error) {
	game, ok := r.games[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *game
	return &copied, nil
}

func (r *fakeGameRepo) FindSchedule(filter repository.ScheduleFilter) ([]models.Game, error) {
	var games []models.Game
	for _, game := range r.games {
		if filter.SeasonID != 0 && game.SeasonID != filter.SeasonID {
			continue
		}
		if filter.TeamID != 0 && game.HomeTeamID != filter.TeamID && game.AwayTeamID != filter.TeamID {
			continue
		}
		if !filter.From.IsZero() && game.ScheduledAt.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && game.ScheduledAt.After(filter.To) {
			continue
		}
		games = append(games, *game)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].ScheduledAt.Before(games[j].ScheduledAt) })
	return games, nil
}

func (r *fakeGameRepo) FindFinalBySeason(seasonID uint) ([]models.Game, error) {
	var games []models.Game
	for _, game := range r.games {
		if game.SeasonID == seasonID && game.Status == models.GameStatusFinal {
			games = append(games, *game)
		}
	}
	return games, nil
}

func (r *fakeGameRepo) Update(game *models.Game) error {
	copied := *game
	r.games[game.ID] = &copied
	return nil
}

func (r *fakeGameRepo) Delete(id uint) error {
	delete(r.games, id)
	return nil
}

type fakeMessageRepo struct {
	messages map[uint]*models.Message
	marks    map[string]*models.ChannelReadMark
	nextID   uint
	now      func() time.Time
}

func newFakeMessageRepo(now func() time.Time) *fakeMessageRepo {
	return &fakeMessageRepo{
		messages: make(map[uint]*models.Message),
		marks:    make(map[string]*models.ChannelReadMark),
		nextID:   1,
		now:      now,
	}
}

func (r *fakeMessageRepo) Create(message *models.Message) error {
	message.ID = r.nextID
	message.CreatedAt = r.now()
	r.nextID++
	copied := *message
	r.messages[message.ID] = &copied
	return nil
}

func (r *fakeMessageRepo) FindByID(id uint) (*models.Message, error) {
	message, ok := r.messages[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *message
	return &copied, nil
}

func (r *fakeMessageRepo) FindChannelPage(teamID uint, channel models.Channel, before time.Time, limit int) ([]models.Message, error) {
	var messages []models.Message
	for _, message := range r.messages {
		if message.TeamID != teamID || message.Channel != channel {
			continue
		}
		if !before.IsZero() && !message.CreatedAt.Before(before) {
			continue
		}
		messages = append(messages, *message)
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].CreatedAt.After(messages[j].CreatedAt) })
	if len(messages) > limit {
		messages = messages[:limit]
	}
	return messages, nil
}

func (r *fakeMessageRepo) FindPinned(teamID uint, channel models.Channel) ([]models.Message, error) {
	var messages []models.Message
	for _, message := range r.messages {
		if message.TeamID == teamID && message.Channel == channel && message.Pinned && !message.Deleted {
			messages = append(messages, *message)
		}
	}
	return messages, nil
}

func (r *fakeMessageRepo) CountUnread(teamID uint, channel models.Channel, after time.Time, excludeUserID uint) (int64, error) {
	var count int64
	for _, message := range r.messages {
		if message.TeamID != teamID || message.Channel != channel || message.Deleted {
			continue
		}
		if message.UserID == excludeUserID {
			continue
		}
		if message.CreatedAt.After(after) {
			count++
		}
	}
	return count, nil
}

func (r *fakeMessageRepo) Update(message *models.Message) error {
	copied := *message
	r.messages[message.ID] = &copied
	return nil
}

func markKey(userID, teamID uint, channel models.Channel) string {
	return fmt.Sprintf("%d:%d:%s", userID, teamID, channel)
}

func (r *fakeMessageRepo) GetReadMark(userID, teamID uint, channel models.Channel) (*models.ChannelReadMark, error) {
	mark, ok := r.marks[markKey(userID, teamID, channel)]
	if !ok {
		return nil, nil
	}
	copied := *mark
	return &copied, nil
}

func (r *fakeMessageRepo) UpsertReadMark(mark *models.ChannelReadMark) error {
	copied := *mark
	r.marks[markKey(mark.UserID, mark.TeamID, mark.Channel)] = &copied
	return nil
}

type fakePARepo struct {
	pas    map[uint]*models.PlateAppearance
	nextID uint
}

func newFakePARepo() *fakePARepo {
	return &fakePARepo{pas: make(map[uint]*models.PlateAppearance), nextID: 1}
}

func (r *fakePARepo) Create(pa *models.PlateAppearance) error {
	pa.ID = r.nextID
	r.nextID++
	copied := *pa
	r.pas[pa.ID] = &copied
	return nil
}

func (r *fakePARepo) FindByGame(gameID uint) ([]models.PlateAppearance, error) {
	var pas []models.PlateAppearance
	for _, pa := range r.pas {
		if pa.GameID == gameID {
			pas = append(pas, *pa)
		}
	}
	sort.Slice(pas, func(i, j int) bool { return pas[i].Number < pas[j].Number })
	return pas, nil
}

func (r *fakePARepo) FindLastByGame(gameID uint) (*models.PlateAppearance, error) {
	var last *models.PlateAppearance
	for _, pa := range r.pas {
		if pa.GameID == gameID && (last == nil || pa.Number > last.Number) {
			last = pa
		}
	}
	if last == nil {
		return nil, nil
	}
	copied := *last
	return &copied, nil
}

func (r *fakePARepo) Delete(id uint) error {
	delete(r.pas, id)
	return nil
}

func (r *fakePARepo) BattingTotalsBySeason(seasonID uint) ([]repository.BattingTotals, error) {
	return nil, nil
}

type fakeAvailabilityRepo struct {
	availabilities map[uint]*models.Availability
	nextID         uint
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{availabilities: make(map[uint]*models.Availability), nextID: 1}
}

func (r *fakeAvailabilityRepo) Upsert(availability *models.Availability) error {
	for _, existing := range r.availabilities {
		if existing.UserID == availability.UserID && existing.GameID == availability.GameID {
			existing.Status = availability.Status
			existing.Note = availability.Note
			return nil
		}
	}
	availability.ID = r.nextID
	r.nextID++
	copied := *availability
	r.availabilities[availability.ID] = &copied
	return nil
}

func (r *fakeAvailabilityRepo) FindByGame(gameID uint) ([]models.Availability, error) {
	var availabilities []models.Availability
	for _, availability := range r.availabilities {
		if availability.GameID == gameID {
			availabilities = append(availabilities, *availability)
		}
	}
	return availabilities, nil
}

func (r *fakeAvailabilityRepo) FindByUserAndGame(userID, gameID uint) (*models.Availability, error) {
	for _, availability := range r.availabilities {
		if availability.UserID == userID && availability.GameID == gameID {
			copied := *availability
			return &copied, nil
		}
	}
	return nil, nil
}

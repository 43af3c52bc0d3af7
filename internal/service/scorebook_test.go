package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
	"github.com/afinewinecompany/cnebl-sub004/internal/repository"
)

type scorebookFixture struct {
	svc      *ScorebookService
	games    *fakeGameRepo
	users    *fakeUserRepo
	pas      *fakePARepo
	gameID   uint
	manager  uint
	batter   uint
	opponent uint
}

// newScorebookFixture 建立一場進行中的比賽：
// 主隊 1（經理 + 打者）、客隊 2（打者），經理為記錄者
func newScorebookFixture(t *testing.T) *scorebookFixture {
	t.Helper()

	users := newFakeUserRepo()
	games := newFakeGameRepo()
	pas := newFakePARepo()

	homeID, awayID := uint(1), uint(2)

	manager := &models.User{Username: "manager", Role: models.RoleManager, TeamID: &homeID}
	require.NoError(t, users.Create(manager))
	batter := &models.User{Username: "batter", Role: models.RolePlayer, TeamID: &homeID}
	require.NoError(t, users.Create(batter))
	opponent := &models.User{Username: "opponent", Role: models.RolePlayer, TeamID: &awayID}
	require.NoError(t, users.Create(opponent))

	game := &models.Game{
		SeasonID:   1,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		Status:     models.GameStatusInProgress,
	}
	require.NoError(t, games.Create(game))

	return &scorebookFixture{
		svc:      NewScorebookService(pas, games, users),
		games:    games,
		users:    users,
		pas:      pas,
		gameID:   game.ID,
		manager:  manager.ID,
		batter:   batter.ID,
		opponent: opponent.ID,
	}
}

func (f *scorebookFixture) input(inning int) RecordInput {
	return RecordInput{
		BatterID: f.batter,
		TeamID:   1,
		Inning:   inning,
		Result:   models.PAResultHit,
		Subtype:  models.PAHitSingle,
	}
}

func TestScorebookRecordSequencing(t *testing.T) {
	f := newScorebookFixture(t)

	first, err := f.svc.Record(f.manager, f.gameID, f.input(1))
	require.NoError(t, err)
	assert.Equal(t, 1, first.Number)

	second, err := f.svc.Record(f.manager, f.gameID, f.input(1))
	require.NoError(t, err)
	assert.Equal(t, 2, second.Number)

	third, err := f.svc.Record(f.manager, f.gameID, f.input(3))
	require.NoError(t, err)
	assert.Equal(t, 3, third.Number)
	assert.Equal(t, 3, third.Inning)
}

func TestScorebookRecordInningCannotGoBack(t *testing.T) {
	f := newScorebookFixture(t)

	_, err := f.svc.Record(f.manager, f.gameID, f.input(4))
	require.NoError(t, err)

	_, err = f.svc.Record(f.manager, f.gameID, f.input(3))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScorebookRecordGameNotLive(t *testing.T) {
	f := newScorebookFixture(t)

	game, err := f.games.FindByID(f.gameID)
	require.NoError(t, err)
	game.Status = models.GameStatusScheduled
	require.NoError(t, f.games.Update(game))

	_, err = f.svc.Record(f.manager, f.gameID, f.input(1))
	assert.ErrorIs(t, err, ErrConflict)
}

func TestScorebookRecordSuspendedGameStillScorable(t *testing.T) {
	f := newScorebookFixture(t)

	game, err := f.games.FindByID(f.gameID)
	require.NoError(t, err)
	game.Status = models.GameStatusSuspended
	require.NoError(t, f.games.Update(game))

	_, err = f.svc.Record(f.manager, f.gameID, f.input(1))
	assert.NoError(t, err)
}

func TestScorebookRecordPermission(t *testing.T) {
	f := newScorebookFixture(t)

	// 一般球員不可記錄
	_, err := f.svc.Record(f.batter, f.gameID, f.input(1))
	assert.ErrorIs(t, err, ErrForbidden)

	// 非參賽隊伍的經理不可記錄
	otherTeam := uint(9)
	outsider := &models.User{Username: "outsider", Role: models.RoleManager, TeamID: &otherTeam}
	require.NoError(t, f.users.Create(outsider))
	_, err = f.svc.Record(outsider.ID, f.gameID, f.input(1))
	assert.ErrorIs(t, err, ErrForbidden)

	// 管理員不受隊伍限制
	admin := &models.User{Username: "admin", Role: models.RoleAdmin}
	require.NoError(t, f.users.Create(admin))
	_, err = f.svc.Record(admin.ID, f.gameID, f.input(1))
	assert.NoError(t, err)
}

func TestScorebookRecordBatterTeamChecks(t *testing.T) {
	f := newScorebookFixture(t)

	// 打者所屬球隊未參賽
	input := f.input(1)
	input.TeamID = 9
	_, err := f.svc.Record(f.manager, f.gameID, input)
	assert.ErrorIs(t, err, ErrValidation)

	// 打者不屬於指定球隊
	input = f.input(1)
	input.BatterID = f.opponent
	_, err = f.svc.Record(f.manager, f.gameID, input)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScorebookRecordInvalidPlay(t *testing.T) {
	f := newScorebookFixture(t)

	input := f.input(1)
	input.Result = models.PAResultOut
	input.Subtype = models.PAOutStrikeout
	input.RBI = 2

	_, err := f.svc.Record(f.manager, f.gameID, input)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestScorebookDeleteLast(t *testing.T) {
	f := newScorebookFixture(t)

	_, err := f.svc.Record(f.manager, f.gameID, f.input(1))
	require.NoError(t, err)
	_, err = f.svc.Record(f.manager, f.gameID, f.input(1))
	require.NoError(t, err)

	require.NoError(t, f.svc.DeleteLast(f.manager, f.gameID))

	pas, err := f.svc.List(f.gameID)
	require.NoError(t, err)
	require.Len(t, pas, 1)
	assert.Equal(t, 1, pas[0].Number)

	// 撤銷後重新記錄，序號接續
	next, err := f.svc.Record(f.manager, f.gameID, f.input(2))
	require.NoError(t, err)
	assert.Equal(t, 2, next.Number)
}

func TestScorebookDeleteLastGuards(t *testing.T) {
	f := newScorebookFixture(t)

	// 沒有紀錄可撤銷
	err := f.svc.DeleteLast(f.manager, f.gameID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.svc.Record(f.manager, f.gameID, f.input(1))
	require.NoError(t, err)

	// 一般球員不可撤銷
	err = f.svc.DeleteLast(f.batter, f.gameID)
	assert.ErrorIs(t, err, ErrForbidden)

	// 完賽後記錄簿封存
	game, err := f.games.FindByID(f.gameID)
	require.NoError(t, err)
	game.Status = models.GameStatusFinal
	require.NoError(t, f.games.Update(game))

	err = f.svc.DeleteLast(f.manager, f.gameID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestBuildStatLine(t *testing.T) {
	line := buildStatLine(repository.BattingTotals{
		BatterID:   7,
		PlayerName: "王小明",
		TeamName:   "公鹿",
		PA:         20,
		Hits:       6,
		Walks:      3,
		Sacrifices: 1,
		RBI:        8,
	})

	// 打數 = 20 - 3 - 1 = 16；打擊率 = 6/16
	assert.Equal(t, 16, line.AB)
	assert.InDelta(t, 0.375, line.AVG, 1e-9)
	assert.Equal(t, 8, line.RBI)
}

func TestBuildStatLineZeroAtBats(t *testing.T) {
	line := buildStatLine(repository.BattingTotals{PA: 2, Walks: 2})
	assert.Equal(t, 0, line.AB)
	assert.Equal(t, 0.0, line.AVG)
}

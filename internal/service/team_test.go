package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
)

type teamFixture struct {
	svc   *TeamService
	users *fakeUserRepo
	teams *fakeTeamRepo
}

func newTeamFixture() *teamFixture {
	users := newFakeUserRepo()
	teams := newFakeTeamRepo()
	return &teamFixture{
		svc:   NewTeamService(teams, users),
		users: users,
		teams: teams,
	}
}

func (f *teamFixture) player(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, Role: models.RolePlayer}
	require.NoError(t, f.users.Create(user))
	return user
}

func TestTeamCreate(t *testing.T) {
	f := newTeamFixture()
	manager := f.player(t, "manager")

	team, err := f.svc.Create("公鹿", "BUC", "市立棒球場", manager.ID)
	require.NoError(t, err)
	assert.Equal(t, manager.ID, team.ManagerID)
	assert.Len(t, team.InviteCode, inviteCodeLength)

	// 建隊時經理自動入隊並升級角色
	stored, err := f.users.FindByID(manager.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.TeamID)
	assert.Equal(t, team.ID, *stored.TeamID)
	assert.Equal(t, models.RoleManager, stored.Role)

	// 隊名不可重複
	other := f.player(t, "other")
	_, err = f.svc.Create("公鹿", "BU2", "", other.ID)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestTeamJoinByInviteCode(t *testing.T) {
	f := newTeamFixture()
	manager := f.player(t, "manager")
	team, err := f.svc.Create("公鹿", "BUC", "", manager.ID)
	require.NoError(t, err)

	rookie := f.player(t, "rookie")
	joined, err := f.svc.Join(rookie.ID, team.InviteCode)
	require.NoError(t, err)
	assert.Equal(t, team.ID, joined.ID)

	// 已有球隊不可再加入
	_, err = f.svc.Join(rookie.ID, team.InviteCode)
	assert.ErrorIs(t, err, ErrConflict)

	outsider := f.player(t, "outsider")
	_, err = f.svc.Join(outsider.ID, "WRONGCOD")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTeamLeave(t *testing.T) {
	f := newTeamFixture()
	manager := f.player(t, "manager")
	team, err := f.svc.Create("公鹿", "BUC", "", manager.ID)
	require.NoError(t, err)

	rookie := f.player(t, "rookie")
	_, err = f.svc.Join(rookie.ID, team.InviteCode)
	require.NoError(t, err)

	require.NoError(t, f.svc.Leave(rookie.ID))
	stored, err := f.users.FindByID(rookie.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.TeamID)

	// 經理須先轉移職務
	assert.ErrorIs(t, f.svc.Leave(manager.ID), ErrConflict)

	// 沒有球隊無從離隊
	assert.ErrorIs(t, f.svc.Leave(rookie.ID), ErrValidation)
}

func TestTeamSetManager(t *testing.T) {
	f := newTeamFixture()
	manager := f.player(t, "manager")
	team, err := f.svc.Create("公鹿", "BUC", "", manager.ID)
	require.NoError(t, err)

	rookie := f.player(t, "rookie")

	// 非隊員不可接任經理
	_, err = f.svc.SetManager(team.ID, rookie.ID)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = f.svc.Join(rookie.ID, team.InviteCode)
	require.NoError(t, err)

	updated, err := f.svc.SetManager(team.ID, rookie.ID)
	require.NoError(t, err)
	assert.Equal(t, rookie.ID, updated.ManagerID)

	// 新經理升級角色，原經理可以離隊了
	stored, err := f.users.FindByID(rookie.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleManager, stored.Role)
	assert.NoError(t, f.svc.Leave(manager.ID))
}

func TestTeamResetInviteCode(t *testing.T) {
	f := newTeamFixture()
	manager := f.player(t, "manager")
	team, err := f.svc.Create("公鹿", "BUC", "", manager.ID)
	require.NoError(t, err)
	oldCode := team.InviteCode

	newCode, err := f.svc.ResetInviteCode(team.ID)
	require.NoError(t, err)
	assert.NotEqual(t, oldCode, newCode)

	// 舊碼立即失效
	rookie := f.player(t, "rookie")
	_, err = f.svc.Join(rookie.ID, oldCode)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = f.svc.Join(rookie.ID, newCode)
	assert.NoError(t, err)
}

func TestTeamDeleteClearsMembers(t *testing.T) {
	f := newTeamFixture()
	manager := f.player(t, "manager")
	team, err := f.svc.Create("公鹿", "BUC", "", manager.ID)
	require.NoError(t, err)
	rookie := f.player(t, "rookie")
	_, err = f.svc.Join(rookie.ID, team.InviteCode)
	require.NoError(t, err)

	require.NoError(t, f.svc.Delete(team.ID))

	_, err = f.svc.Get(team.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	for _, id := range []uint{manager.ID, rookie.ID} {
		stored, err := f.users.FindByID(id)
		require.NoError(t, err)
		assert.Nil(t, stored.TeamID)
	}
}

func TestTeamRoster(t *testing.T) {
	f := newTeamFixture()
	manager := f.player(t, "manager")
	team, err := f.svc.Create("公鹿", "BUC", "", manager.ID)
	require.NoError(t, err)

	roster, err := f.svc.Roster(team.ID)
	require.NoError(t, err)
	assert.Len(t, roster, 1)

	_, err = f.svc.Roster(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/afinewinecompany/cnebl-sub004/internal/models"
)

func newUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo), repo
}

func TestUserRegister(t *testing.T) {
	svc, _ := newUserService()

	user, err := svc.Register("hank", "hank@example.com", "secret123", "")
	require.NoError(t, err)
	assert.Equal(t, models.RolePlayer, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)
	// 未填顯示名稱時沿用帳號
	assert.Equal(t, "hank", user.DisplayName)
	// 密碼不以明文儲存
	assert.NotEqual(t, "secret123", user.Password)
}

func TestUserRegisterDuplicates(t *testing.T) {
	svc, _ := newUserService()

	_, err := svc.Register("hank", "hank@example.com", "secret123", "老王")
	require.NoError(t, err)

	_, err = svc.Register("hank", "other@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrConflict)

	_, err = svc.Register("other", "hank@example.com", "secret123", "")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUserAuthenticate(t *testing.T) {
	svc, _ := newUserService()
	registered, err := svc.Register("hank", "hank@example.com", "secret123", "")
	require.NoError(t, err)

	user, err := svc.Authenticate("hank", "secret123")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	_, err = svc.Authenticate("hank", "wrong")
	assert.ErrorIs(t, err, ErrValidation)
	_, err = svc.Authenticate("nobody", "secret123")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserAuthenticateBanned(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register("hank", "hank@example.com", "secret123", "")
	require.NoError(t, err)

	_, err = svc.SetStatus(user.ID, "banned")
	require.NoError(t, err)

	_, err = svc.Authenticate("hank", "secret123")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUserUpdateProfile(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register("hank", "hank@example.com", "secret123", "老王")
	require.NoError(t, err)

	jersey := 23
	bats := "S"
	updated, err := svc.UpdateProfile(user.ID, ProfileUpdate{JerseyNumber: &jersey, Bats: &bats})
	require.NoError(t, err)
	require.NotNil(t, updated.JerseyNumber)
	assert.Equal(t, 23, *updated.JerseyNumber)
	assert.Equal(t, "S", updated.Bats)
	// 未指定的欄位不變
	assert.Equal(t, "老王", updated.DisplayName)
}

func TestUserChangePassword(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register("hank", "hank@example.com", "secret123", "")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.ChangePassword(user.ID, "wrong", "newpass456"), ErrValidation)

	require.NoError(t, svc.ChangePassword(user.ID, "secret123", "newpass456"))
	_, err = svc.Authenticate("hank", "newpass456")
	assert.NoError(t, err)
	_, err = svc.Authenticate("hank", "secret123")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserSetRole(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register("hank", "hank@example.com", "secret123", "")
	require.NoError(t, err)

	promoted, err := svc.SetRole(user.ID, "admin")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, promoted.Role)

	_, err = svc.SetRole(user.ID, "superuser")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUserCommissionerProtected(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register("boss", "boss@example.com", "secret123", "")
	require.NoError(t, err)
	_, err = svc.SetRole(user.ID, "commissioner")
	require.NoError(t, err)

	_, err = svc.SetStatus(user.ID, "banned")
	assert.ErrorIs(t, err, ErrForbidden)
	assert.ErrorIs(t, svc.Delete(user.ID), ErrForbidden)
}

func TestUserDelete(t *testing.T) {
	svc, _ := newUserService()
	user, err := svc.Register("hank", "hank@example.com", "secret123", "")
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID))
	_, err = svc.GetByID(user.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

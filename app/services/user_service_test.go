package services

import (
	"strings"
	"testing"

	"csvvault/app/models"

	"github.com/stretchr/testify/require"
)

func TestRegisterAndValidateCredentials(t *testing.T) {
	users, _ := newServices(t)

	u, err := users.Register("alice", "p1")
	require.NoError(t, err)
	require.Equal(t, models.RoleUser, u.Role)
	require.True(t, u.IsActive)
	require.NotEqual(t, "p1", u.PasswordHash)

	got, err := users.ValidateCredentials("alice", "p1")
	require.NoError(t, err)
	require.Equal(t, u.ID, got.ID)
}

func TestValidateCredentialsUniformFailure(t *testing.T) {
	users, _ := newServices(t)

	_, err := users.Register("alice", "p1")
	require.NoError(t, err)

	// wrong password and unknown username fail identically
	_, err = users.ValidateCredentials("alice", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = users.ValidateCredentials("nobody", "p1")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateUsername(t *testing.T) {
	users, _ := newServices(t)

	_, err := users.Register("alice", "p1")
	require.NoError(t, err)

	_, err = users.Register("alice", "p2")
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestEnsureAdmin(t *testing.T) {
	users, _ := newServices(t)

	require.NoError(t, users.EnsureAdmin("admin", "admin123"))
	require.NoError(t, users.EnsureAdmin("admin", "other-password"))

	u, err := users.ValidateCredentials("admin", "admin123")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, u.Role)
	require.True(t, u.IsAdmin())
}

func TestSetActive(t *testing.T) {
	users, _ := newServices(t)

	u, err := users.Register("alice", "p1")
	require.NoError(t, err)

	require.NoError(t, users.SetActive(u.ID, false))
	got, err := users.FindByUsername("alice")
	require.NoError(t, err)
	require.False(t, got.IsActive)

	require.ErrorIs(t, users.SetActive(9999, false), ErrNotFound)
}

func TestDeleteUserCascadesFiles(t *testing.T) {
	users, files := newServices(t)

	alice, err := users.Register("alice", "p1")
	require.NoError(t, err)

	f, err := files.Upload(alice, "data.csv", strings.NewReader("a,b\n1,2\n"))
	require.NoError(t, err)

	require.NoError(t, users.Delete(alice.ID))

	_, err = users.FindByUsername("alice")
	require.ErrorIs(t, err, ErrNotFound)

	admin := &models.User{ID: 999, Role: models.RoleAdmin}
	_, err = files.Get(admin, f.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteUnknownUser(t *testing.T) {
	users, _ := newServices(t)
	require.ErrorIs(t, users.Delete(42), ErrNotFound)
}

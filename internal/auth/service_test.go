package auth_test

import (
	"testing"

	"github.com/KarlovS28/uchettest/internal/auth"
	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() (*auth.Service, storage.Storage) {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	store := storage.NewMemory()
	return auth.NewService(store, log), store
}

func setupInput() auth.SetupInput {
	return auth.SetupInput{
		OrganizationName: "ООО Ромашка",
		FullName:         "Петров Пётр Петрович",
		Position:         "Директор",
		Username:         "admin",
		Password:         "secret123",
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)
	assert.True(t, auth.CheckPassword(hash, "secret123"))
	assert.False(t, auth.CheckPassword(hash, "secret124"))
}

func TestSetupBootstrapsOrganizationAndAdmin(t *testing.T) {
	service, store := newTestService()

	initialized, err := service.IsInitialized()
	require.NoError(t, err)
	assert.False(t, initialized)

	result, err := service.Setup(setupInput())
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.Organization.ID)
	assert.Equal(t, "ООО Ромашка", result.Organization.Name)
	assert.Equal(t, models.UserRoleAdmin, result.User.Role)
	assert.Equal(t, models.PermissionList{models.PermissionFullAccess}, result.User.Permissions)
	assert.NotEqual(t, "secret123", result.User.Password)

	initialized, err = service.IsInitialized()
	require.NoError(t, err)
	assert.True(t, initialized)

	// The admin is persisted and can be looked up
	user, err := store.GetUserByUsername("admin")
	require.NoError(t, err)
	assert.Equal(t, result.User.ID, user.ID)
}

func TestSetupRejectsSecondRun(t *testing.T) {
	service, _ := newTestService()

	_, err := service.Setup(setupInput())
	require.NoError(t, err)

	input := setupInput()
	input.Username = "another"
	_, err = service.Setup(input)
	assert.ErrorIs(t, err, apperrors.ErrSystemAlreadySetUp)
}

func TestLogin(t *testing.T) {
	service, _ := newTestService()
	_, err := service.Setup(setupInput())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		user, err := service.Login("admin", "secret123")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := service.Login("admin", "wrong")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("unknown username looks identical", func(t *testing.T) {
		_, err := service.Login("ghost", "secret123")
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

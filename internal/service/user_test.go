package service_test

import (
	"testing"

	"github.com/KarlovS28/uchettest/internal/auth"
	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/service"
	"github.com/KarlovS28/uchettest/internal/storage"
	"github.com/KarlovS28/uchettest/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(t *testing.T) (*service.UserService, uint) {
	t.Helper()
	store := storage.NewMemory()
	org := testutils.NewOrganizationFactory().Create()
	require.NoError(t, store.CreateOrganization(org))
	return service.NewUserService(store, validator.New()), org.ID
}

func TestUserCreate(t *testing.T) {
	svc, orgID := newUserFixture(t)

	user, err := svc.Create(orgID, &service.CreateUserRequest{
		Username:    "manager",
		Password:    "secret123",
		FullName:    "Сидорова Анна Павловна",
		Position:    "Менеджер",
		Role:        "manager",
		Permissions: []models.Permission{models.PermissionManageEmployees, models.PermissionViewEmployeeData},
	})
	require.NoError(t, err)

	assert.Equal(t, models.UserRoleManager, user.Role)
	assert.True(t, auth.CheckPassword(user.Password, "secret123"))
	assert.True(t, models.HasPermission(user.Permissions, models.PermissionManageEmployees))
	assert.False(t, models.HasPermission(user.Permissions, models.PermissionManageLiability))
}

func TestUserCreateRejectsUnknownPermission(t *testing.T) {
	svc, orgID := newUserFixture(t)

	_, err := svc.Create(orgID, &service.CreateUserRequest{
		Username:    "rogue",
		Password:    "secret123",
		FullName:    "Кто-то",
		Permissions: []models.Permission{"superuser"},
	})
	assert.True(t, apperrors.IsValidation(err))
}

func TestUserCreateDuplicateUsername(t *testing.T) {
	svc, orgID := newUserFixture(t)

	req := &service.CreateUserRequest{
		Username: "manager",
		Password: "secret123",
		FullName: "Первый",
	}
	_, err := svc.Create(orgID, req)
	require.NoError(t, err)

	_, err = svc.Create(orgID, req)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
}

func TestUserUpdate(t *testing.T) {
	svc, orgID := newUserFixture(t)

	user, err := svc.Create(orgID, &service.CreateUserRequest{
		Username: "viewer",
		Password: "secret123",
		FullName: "Наблюдатель",
	})
	require.NoError(t, err)

	perms := []models.Permission{models.PermissionManageDepartments}
	password := "newsecret"
	updated, err := svc.Update(orgID, user.ID, &service.UpdateUserRequest{
		Permissions: &perms,
		Password:    &password,
	})
	require.NoError(t, err)
	assert.True(t, models.HasPermission(updated.Permissions, models.PermissionManageDepartments))
	assert.True(t, auth.CheckPassword(updated.Password, "newsecret"))

	t.Run("unknown permission rejected", func(t *testing.T) {
		bad := []models.Permission{"root"}
		_, err := svc.Update(orgID, user.ID, &service.UpdateUserRequest{Permissions: &bad})
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("cross-tenant update rejected", func(t *testing.T) {
		_, err := svc.Update(orgID+1, user.ID, &service.UpdateUserRequest{})
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

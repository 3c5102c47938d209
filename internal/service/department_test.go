package service_test

import (
	"testing"

	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/service"
	"github.com/KarlovS28/uchettest/internal/storage"
	"github.com/KarlovS28/uchettest/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDepartmentFixture(t *testing.T) (*service.DepartmentService, storage.Storage, uint) {
	t.Helper()
	store := storage.NewMemory()
	org := testutils.NewOrganizationFactory().Create()
	require.NoError(t, store.CreateOrganization(org))
	return service.NewDepartmentService(store, validator.New()), store, org.ID
}

func TestDepartmentCreateAndStats(t *testing.T) {
	svc, _, orgID := newDepartmentFixture(t)

	department, err := svc.Create(orgID, &service.DepartmentRequest{Name: "Sales"})
	require.NoError(t, err)
	assert.Equal(t, "Sales", department.Name)

	stats, err := svc.Stats(orgID)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Sales", stats[0].DepartmentName)
	assert.Equal(t, 0, stats[0].EmployeeCount)
	assert.Equal(t, 0, stats[0].InventoryCount)
}

func TestDepartmentCreateRequiresName(t *testing.T) {
	svc, _, orgID := newDepartmentFixture(t)

	_, err := svc.Create(orgID, &service.DepartmentRequest{})
	assert.True(t, apperrors.IsValidation(err))
}

func TestDepartmentDeleteRejectedWhileInUse(t *testing.T) {
	svc, store, orgID := newDepartmentFixture(t)

	department, err := svc.Create(orgID, &service.DepartmentRequest{Name: "Sales"})
	require.NoError(t, err)

	employee := testutils.NewEmployeeFactory().Create(orgID, department.ID)
	require.NoError(t, store.CreateEmployee(employee))

	err = svc.Delete(orgID, department.ID)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentInUse)

	// Department without references can go; inventory also blocks deletion
	empty, err := svc.Create(orgID, &service.DepartmentRequest{Name: "Archive"})
	require.NoError(t, err)
	item := testutils.NewInventoryItemFactory().Create(orgID, empty.ID, employee.ID, "INV-500")
	require.NoError(t, store.CreateInventoryItem(item))
	assert.ErrorIs(t, svc.Delete(orgID, empty.ID), apperrors.ErrDepartmentInUse)

	require.NoError(t, store.DeleteInventoryItem(orgID, item.ID))
	assert.NoError(t, svc.Delete(orgID, empty.ID))
}

func TestDepartmentTenantScoping(t *testing.T) {
	svc, store, orgID := newDepartmentFixture(t)

	other := testutils.NewOrganizationFactory().WithName("Other")
	require.NoError(t, store.CreateOrganization(other))

	department, err := svc.Create(orgID, &service.DepartmentRequest{Name: "Sales"})
	require.NoError(t, err)

	_, err = svc.Get(other.ID, department.ID)
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)

	_, err = svc.Update(other.ID, department.ID, &service.DepartmentRequest{Name: "Hidden"})
	assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
}

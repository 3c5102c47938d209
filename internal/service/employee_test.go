package service_test

import (
	"testing"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/service"
	"github.com/KarlovS28/uchettest/internal/storage"
	"github.com/KarlovS28/uchettest/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeFixture(t *testing.T) (*service.EmployeeService, storage.Storage, uint, uint) {
	t.Helper()
	store := storage.NewMemory()
	org := testutils.NewOrganizationFactory().Create()
	require.NoError(t, store.CreateOrganization(org))
	department := testutils.NewDepartmentFactory().Create(org.ID)
	require.NoError(t, store.CreateDepartment(department))
	return service.NewEmployeeService(store, validator.New()), store, org.ID, department.ID
}

func createRequest(departmentID uint) *service.CreateEmployeeRequest {
	return &service.CreateEmployeeRequest{
		FullName:     "Иванов Иван Иванович",
		DepartmentID: departmentID,
		Position:     "Инженер",
		HireDate:     "2023-03-01",
		BirthDate:    "15.06.1985",
	}
}

func TestEmployeeCreate(t *testing.T) {
	svc, _, orgID, departmentID := newEmployeeFixture(t)

	employee, err := svc.Create(orgID, createRequest(departmentID))
	require.NoError(t, err)

	assert.Equal(t, "Иванов Иван Иванович", employee.FullName)
	assert.Equal(t, 2023, employee.HireDate.Year())
	// Dotted dates are accepted too
	assert.Equal(t, 1985, employee.BirthDate.Year())
	assert.Equal(t, models.LiabilityNone, employee.MaterialLiabilityType)
	assert.False(t, employee.Dismissed)
}

func TestEmployeeCreateValidation(t *testing.T) {
	svc, _, orgID, departmentID := newEmployeeFixture(t)

	t.Run("unknown department", func(t *testing.T) {
		req := createRequest(999)
		_, err := svc.Create(orgID, req)
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})

	t.Run("malformed hire date", func(t *testing.T) {
		req := createRequest(departmentID)
		req.HireDate = "yesterday"
		_, err := svc.Create(orgID, req)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("invalid liability type", func(t *testing.T) {
		req := createRequest(departmentID)
		req.MaterialLiabilityType = "partial"
		_, err := svc.Create(orgID, req)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestEmployeeDismissIsFinal(t *testing.T) {
	svc, _, orgID, departmentID := newEmployeeFixture(t)

	employee, err := svc.Create(orgID, createRequest(departmentID))
	require.NoError(t, err)

	t.Run("both fields required", func(t *testing.T) {
		_, err := svc.Dismiss(orgID, employee.ID, &service.DismissEmployeeRequest{DismissalDate: "2024-02-01"})
		assert.True(t, apperrors.IsValidation(err))
	})

	dismissed, err := svc.Dismiss(orgID, employee.ID, &service.DismissEmployeeRequest{
		DismissalDate:        "2024-02-01",
		DismissalOrderNumber: "У-7",
	})
	require.NoError(t, err)
	assert.True(t, dismissed.Dismissed)

	t.Run("second dismissal rejected", func(t *testing.T) {
		_, err := svc.Dismiss(orgID, employee.ID, &service.DismissEmployeeRequest{
			DismissalDate:        "2024-03-01",
			DismissalOrderNumber: "У-8",
		})
		assert.ErrorIs(t, err, apperrors.ErrAlreadyDismissed)
	})

	t.Run("dismissed employee is read-only", func(t *testing.T) {
		position := "Старший инженер"
		_, err := svc.Update(orgID, employee.ID, &service.UpdateEmployeeRequest{Position: &position})
		assert.ErrorIs(t, err, apperrors.ErrEmployeeDismissed)
	})
}

func TestEmployeePartialUpdate(t *testing.T) {
	svc, store, orgID, departmentID := newEmployeeFixture(t)

	employee, err := svc.Create(orgID, createRequest(departmentID))
	require.NoError(t, err)

	other := testutils.NewDepartmentFactory().WithName(orgID, "Support")
	require.NoError(t, store.CreateDepartment(other))

	phone := "+7 911 111-11-11"
	updated, err := svc.Update(orgID, employee.ID, &service.UpdateEmployeeRequest{
		Phone:        &phone,
		DepartmentID: &other.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, other.ID, updated.DepartmentID)
	assert.Equal(t, employee.FullName, updated.FullName)

	t.Run("move to unknown department rejected", func(t *testing.T) {
		bogus := uint(999)
		_, err := svc.Update(orgID, employee.ID, &service.UpdateEmployeeRequest{DepartmentID: &bogus})
		assert.ErrorIs(t, err, apperrors.ErrDepartmentNotFound)
	})
}

package service

import (
	"fmt"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/go-playground/validator/v10"
)

// DepartmentService provides department-related business logic
type DepartmentService struct {
	store     storage.Storage
	validator *validator.Validate
}

// NewDepartmentService creates a new DepartmentService
func NewDepartmentService(store storage.Storage, validator *validator.Validate) *DepartmentService {
	return &DepartmentService{store: store, validator: validator}
}

// DepartmentRequest represents the payload for creating or renaming a department
type DepartmentRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

// Create creates a department in the caller's organization.
func (s *DepartmentService) Create(organizationID uint, req *DepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	department := &models.Department{
		Name:           req.Name,
		OrganizationID: organizationID,
	}
	if err := s.store.CreateDepartment(department); err != nil {
		return nil, fmt.Errorf("failed to create department: %w", err)
	}
	return department, nil
}

// List returns all departments of the organization.
func (s *DepartmentService) List(organizationID uint) ([]models.Department, error) {
	return s.store.GetDepartments(organizationID)
}

// Get returns one department of the organization.
func (s *DepartmentService) Get(organizationID, id uint) (*models.Department, error) {
	return s.store.GetDepartment(organizationID, id)
}

// Stats returns employee and inventory counts per department.
func (s *DepartmentService) Stats(organizationID uint) ([]models.DepartmentStat, error) {
	return s.store.GetDepartmentStats(organizationID)
}

// Update renames a department.
func (s *DepartmentService) Update(organizationID, id uint, req *DepartmentRequest) (*models.Department, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	return s.store.UpdateDepartment(organizationID, id, storage.DepartmentPatch{Name: &req.Name})
}

// Delete removes a department. Departments still referenced by employees or
// inventory cannot be deleted.
func (s *DepartmentService) Delete(organizationID, id uint) error {
	if _, err := s.store.GetDepartment(organizationID, id); err != nil {
		return err
	}

	employees, err := s.store.GetEmployees(organizationID, &id)
	if err != nil {
		return fmt.Errorf("failed to check department employees: %w", err)
	}
	if len(employees) > 0 {
		return apperrors.ErrDepartmentInUse
	}

	items, err := s.store.GetInventoryItemsByDepartment(organizationID, id)
	if err != nil {
		return fmt.Errorf("failed to check department inventory: %w", err)
	}
	if len(items) > 0 {
		return apperrors.ErrDepartmentInUse
	}

	return s.store.DeleteDepartment(organizationID, id)
}

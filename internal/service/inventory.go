package service

import (
	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/go-playground/validator/v10"
)

// InventoryService provides inventory-related business logic
type InventoryService struct {
	store     storage.Storage
	validator *validator.Validate
}

// NewInventoryService creates a new InventoryService
func NewInventoryService(store storage.Storage, validator *validator.Validate) *InventoryService {
	return &InventoryService{store: store, validator: validator}
}

// CreateInventoryRequest represents the payload for registering an asset.
// Cost is in minor currency units.
type CreateInventoryRequest struct {
	Name            string `json:"name" validate:"required,max=200"`
	InventoryNumber string `json:"inventoryNumber" validate:"required,max=100"`
	Description     string `json:"description" validate:"max=500"`
	Cost            int    `json:"cost" validate:"min=0"`
	EmployeeID      uint   `json:"employeeId" validate:"required"`
	DepartmentID    uint   `json:"departmentId"`
}

// UpdateInventoryRequest represents a partial asset update
type UpdateInventoryRequest struct {
	Name            *string `json:"name" validate:"omitempty,max=200"`
	InventoryNumber *string `json:"inventoryNumber" validate:"omitempty,max=100"`
	Description     *string `json:"description" validate:"omitempty,max=500"`
	Cost            *int    `json:"cost" validate:"omitempty,min=0"`
	EmployeeID      *uint   `json:"employeeId"`
	DepartmentID    *uint   `json:"departmentId"`
}

// Create registers an inventory item on an employee. When departmentId is
// omitted the employee's department is used.
func (s *InventoryService) Create(organizationID uint, req *CreateInventoryRequest) (*models.InventoryItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	employee, err := s.store.GetEmployee(organizationID, req.EmployeeID)
	if err != nil {
		return nil, err
	}

	departmentID := req.DepartmentID
	if departmentID == 0 {
		departmentID = employee.DepartmentID
	} else if _, err := s.store.GetDepartment(organizationID, departmentID); err != nil {
		return nil, err
	}

	item := &models.InventoryItem{
		Name:            req.Name,
		InventoryNumber: req.InventoryNumber,
		Description:     req.Description,
		Cost:            req.Cost,
		EmployeeID:      req.EmployeeID,
		DepartmentID:    departmentID,
		OrganizationID:  organizationID,
	}
	if err := s.store.CreateInventoryItem(item); err != nil {
		return nil, err
	}
	return item, nil
}

// List returns inventory items filtered by exactly one of employee or
// department.
func (s *InventoryService) List(organizationID uint, employeeID, departmentID *uint) ([]models.InventoryItem, error) {
	switch {
	case employeeID != nil && departmentID == nil:
		return s.store.GetInventoryItemsByEmployee(organizationID, *employeeID)
	case departmentID != nil && employeeID == nil:
		return s.store.GetInventoryItemsByDepartment(organizationID, *departmentID)
	default:
		return nil, apperrors.ErrInventoryFilter
	}
}

// Get returns one inventory item of the organization.
func (s *InventoryService) Get(organizationID, id uint) (*models.InventoryItem, error) {
	return s.store.GetInventoryItem(organizationID, id)
}

// Update applies a partial update to an inventory item.
func (s *InventoryService) Update(organizationID, id uint, req *UpdateInventoryRequest) (*models.InventoryItem, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if req.EmployeeID != nil {
		if _, err := s.store.GetEmployee(organizationID, *req.EmployeeID); err != nil {
			return nil, err
		}
	}
	if req.DepartmentID != nil {
		if _, err := s.store.GetDepartment(organizationID, *req.DepartmentID); err != nil {
			return nil, err
		}
	}

	patch := storage.InventoryItemPatch{
		Name:            req.Name,
		InventoryNumber: req.InventoryNumber,
		Description:     req.Description,
		Cost:            req.Cost,
		EmployeeID:      req.EmployeeID,
		DepartmentID:    req.DepartmentID,
	}
	item, err := s.store.UpdateInventoryItem(organizationID, id, patch)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// Delete removes an inventory item.
func (s *InventoryService) Delete(organizationID, id uint) error {
	return s.store.DeleteInventoryItem(organizationID, id)
}

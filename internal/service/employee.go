package service

import (
	"fmt"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/go-playground/validator/v10"
)

// EmployeeService provides employee-related business logic
type EmployeeService struct {
	store     storage.Storage
	validator *validator.Validate
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(store storage.Storage, validator *validator.Validate) *EmployeeService {
	return &EmployeeService{store: store, validator: validator}
}

// CreateEmployeeRequest represents the payload for hiring an employee.
// Dates are accepted as 2006-01-02 or 02.01.2006.
type CreateEmployeeRequest struct {
	FullName              string `json:"fullName" validate:"required,max=200"`
	DepartmentID          uint   `json:"departmentId" validate:"required"`
	Position              string `json:"position" validate:"required,max=200"`
	HireDate              string `json:"hireDate" validate:"required"`
	HireOrderNumber       string `json:"hireOrderNumber" validate:"max=100"`
	Passport              string `json:"passport" validate:"max=100"`
	BirthDate             string `json:"birthDate" validate:"required"`
	Address               string `json:"address" validate:"max=500"`
	Phone                 string `json:"phone" validate:"max=50"`
	MaterialLiabilityType string `json:"materialLiabilityType"`
}

// UpdateEmployeeRequest represents a partial employee update. Dismissal fields
// are deliberately absent; dismissal has its own endpoint.
type UpdateEmployeeRequest struct {
	FullName                  *string `json:"fullName" validate:"omitempty,max=200"`
	DepartmentID              *uint   `json:"departmentId"`
	Position                  *string `json:"position" validate:"omitempty,max=200"`
	HireDate                  *string `json:"hireDate"`
	HireOrderNumber           *string `json:"hireOrderNumber" validate:"omitempty,max=100"`
	Passport                  *string `json:"passport" validate:"omitempty,max=100"`
	BirthDate                 *string `json:"birthDate"`
	Address                   *string `json:"address" validate:"omitempty,max=500"`
	Phone                     *string `json:"phone" validate:"omitempty,max=50"`
	MaterialLiabilityType     *string `json:"materialLiabilityType"`
	MaterialLiabilityDocument *string `json:"materialLiabilityDocument" validate:"omitempty,max=500"`
}

// DismissEmployeeRequest represents the dismissal payload. Both fields are
// mandatory.
type DismissEmployeeRequest struct {
	DismissalDate        string `json:"dismissalDate" validate:"required"`
	DismissalOrderNumber string `json:"dismissalOrderNumber" validate:"required,max=100"`
}

// Create hires an employee into a department of the caller's organization.
func (s *EmployeeService) Create(organizationID uint, req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	if _, err := s.store.GetDepartment(organizationID, req.DepartmentID); err != nil {
		return nil, err
	}

	hireDate, err := parseDate(req.HireDate)
	if err != nil {
		return nil, apperrors.NewValidationError("hireDate", "invalid date")
	}
	birthDate, err := parseDate(req.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birthDate", "invalid date")
	}

	liability := models.MaterialLiabilityType(req.MaterialLiabilityType)
	if liability == "" {
		liability = models.LiabilityNone
	}
	if !liability.IsValid() {
		return nil, apperrors.NewValidationError("materialLiabilityType", apperrors.ErrInvalidLiabilityType.Error())
	}

	employee := &models.Employee{
		FullName:              req.FullName,
		DepartmentID:          req.DepartmentID,
		Position:              req.Position,
		HireDate:              hireDate,
		HireOrderNumber:       req.HireOrderNumber,
		Passport:              req.Passport,
		BirthDate:             birthDate,
		Address:               req.Address,
		Phone:                 req.Phone,
		MaterialLiabilityType: liability,
		OrganizationID:        organizationID,
	}
	if err := s.store.CreateEmployee(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// List returns employees of the organization, optionally of one department.
func (s *EmployeeService) List(organizationID uint, departmentID *uint) ([]models.Employee, error) {
	return s.store.GetEmployees(organizationID, departmentID)
}

// Get returns one employee of the organization.
func (s *EmployeeService) Get(organizationID, id uint) (*models.Employee, error) {
	return s.store.GetEmployee(organizationID, id)
}

// Update applies a partial update. Dismissed employees are read-only.
func (s *EmployeeService) Update(organizationID, id uint, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	employee, err := s.store.GetEmployee(organizationID, id)
	if err != nil {
		return nil, err
	}
	if employee.Dismissed {
		return nil, apperrors.ErrEmployeeDismissed
	}

	patch := storage.EmployeePatch{
		FullName:                  req.FullName,
		Position:                  req.Position,
		HireOrderNumber:           req.HireOrderNumber,
		Passport:                  req.Passport,
		Address:                   req.Address,
		Phone:                     req.Phone,
		MaterialLiabilityDocument: req.MaterialLiabilityDocument,
	}

	if req.DepartmentID != nil {
		if _, err := s.store.GetDepartment(organizationID, *req.DepartmentID); err != nil {
			return nil, err
		}
		patch.DepartmentID = req.DepartmentID
	}
	if req.HireDate != nil {
		hireDate, err := parseDate(*req.HireDate)
		if err != nil {
			return nil, apperrors.NewValidationError("hireDate", "invalid date")
		}
		patch.HireDate = &hireDate
	}
	if req.BirthDate != nil {
		birthDate, err := parseDate(*req.BirthDate)
		if err != nil {
			return nil, apperrors.NewValidationError("birthDate", "invalid date")
		}
		patch.BirthDate = &birthDate
	}
	if req.MaterialLiabilityType != nil {
		liability := models.MaterialLiabilityType(*req.MaterialLiabilityType)
		if !liability.IsValid() {
			return nil, apperrors.NewValidationError("materialLiabilityType", apperrors.ErrInvalidLiabilityType.Error())
		}
		patch.MaterialLiabilityType = &liability
	}

	return s.store.UpdateEmployee(organizationID, id, patch)
}

// SetPhoto records the stored photo path on an employee.
func (s *EmployeeService) SetPhoto(organizationID, id uint, path string) (*models.Employee, error) {
	if _, err := s.store.GetEmployee(organizationID, id); err != nil {
		return nil, err
	}
	return s.store.UpdateEmployee(organizationID, id, storage.EmployeePatch{Photo: &path})
}

// Dismiss performs the one-way dismissal transition.
func (s *EmployeeService) Dismiss(organizationID, id uint, req *DismissEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	date, err := parseDate(req.DismissalDate)
	if err != nil {
		return nil, apperrors.NewValidationError("dismissalDate", "invalid date")
	}
	return s.store.DismissEmployee(organizationID, id, date, req.DismissalOrderNumber)
}

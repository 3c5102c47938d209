package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this username"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound = &NotFoundError{Entity: "organization"}
	ErrUserNotFound         = &NotFoundError{Entity: "user"}
	ErrDepartmentNotFound   = &NotFoundError{Entity: "department"}
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
	ErrDocumentNotFound     = &NotFoundError{Entity: "document"}
	ErrInventoryNotFound    = &NotFoundError{Entity: "inventory item"}
	ErrSettingNotFound      = &NotFoundError{Entity: "setting"}
)

// Already Exists Errors
var (
	ErrUsernameTaken        = &AlreadyExistsError{Entity: "user", Context: "with this username"}
	ErrInventoryNumberTaken = &AlreadyExistsError{Entity: "inventory item", Context: "with this inventory number"}
)

// Business Logic Errors
var (
	ErrSystemAlreadySetUp   = errors.New("system is already set up")
	ErrEmployeeDismissed    = errors.New("employee is dismissed")
	ErrAlreadyDismissed     = errors.New("employee is already dismissed")
	ErrDepartmentInUse      = errors.New("department still has employees or inventory")
	ErrInventoryFilter      = errors.New("either employeeId or departmentId is required")
	ErrUnknownPermission    = errors.New("unknown permission in permission set")
	ErrInvalidLiabilityType = errors.New("invalid material liability type")
)

// Authentication Errors
var (
	ErrInvalidCredentials = &AuthenticationError{Message: "invalid username or password"}
	ErrNotAuthenticated   = &AuthenticationError{Message: "authentication required"}
)

// Authorization Errors
var (
	ErrPermissionDenied = &AuthorizationError{Message: "insufficient permissions"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

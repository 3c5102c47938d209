package service

import (
	"fmt"

	"github.com/KarlovS28/uchettest/internal/auth"
	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/go-playground/validator/v10"
)

// UserService provides account management for an organization's users
type UserService struct {
	store     storage.Storage
	validator *validator.Validate
}

// NewUserService creates a new UserService
func NewUserService(store storage.Storage, validator *validator.Validate) *UserService {
	return &UserService{store: store, validator: validator}
}

// CreateUserRequest represents the payload for creating an account
type CreateUserRequest struct {
	Username    string              `json:"username" validate:"required,min=3,max=100"`
	Password    string              `json:"password" validate:"required,min=6"`
	FullName    string              `json:"fullName" validate:"required,max=200"`
	Position    string              `json:"position" validate:"max=200"`
	Role        string              `json:"role" validate:"omitempty,oneof=admin manager viewer"`
	Permissions []models.Permission `json:"permissions"`
}

// UpdateUserRequest represents a partial account update
type UpdateUserRequest struct {
	FullName    *string              `json:"fullName" validate:"omitempty,max=200"`
	Position    *string              `json:"position" validate:"omitempty,max=200"`
	Role        *string              `json:"role" validate:"omitempty,oneof=admin manager viewer"`
	Permissions *[]models.Permission `json:"permissions"`
	Password    *string              `json:"password" validate:"omitempty,min=6"`
}

// List returns all accounts of the organization. Password hashes never leave
// the model's JSON encoding.
func (s *UserService) List(organizationID uint) ([]models.User, error) {
	return s.store.GetUsers(organizationID)
}

// Create adds an account to the caller's organization. The permission set is
// checked against the known enumeration before it is granted.
func (s *UserService) Create(organizationID uint, req *CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if unknown, ok := models.ValidatePermissions(req.Permissions); !ok {
		return nil, apperrors.NewValidationError("permissions", fmt.Sprintf("unknown permission %q", unknown))
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleViewer
	}

	user := &models.User{
		Username:       req.Username,
		Password:       hash,
		FullName:       req.FullName,
		Position:       req.Position,
		OrganizationID: organizationID,
		Role:           role,
		Permissions:    models.PermissionList(req.Permissions),
	}
	if err := s.store.CreateUser(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial update to an account of the organization.
func (s *UserService) Update(organizationID, id uint, req *UpdateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	user, err := s.store.GetUser(id)
	if err != nil {
		return nil, err
	}
	if user.OrganizationID != organizationID {
		return nil, apperrors.ErrUserNotFound
	}

	patch := storage.UserPatch{
		FullName: req.FullName,
		Position: req.Position,
	}
	if req.Role != nil {
		role := models.UserRole(*req.Role)
		patch.Role = &role
	}
	if req.Permissions != nil {
		if unknown, ok := models.ValidatePermissions(*req.Permissions); !ok {
			return nil, apperrors.NewValidationError("permissions", fmt.Sprintf("unknown permission %q", unknown))
		}
		perms := models.PermissionList(*req.Permissions)
		patch.Permissions = &perms
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		patch.Password = &hash
	}

	return s.store.UpdateUser(id, patch)
}

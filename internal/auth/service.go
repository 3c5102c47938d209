package auth

import (
	"fmt"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// Service implements authentication and the one-time system bootstrap.
type Service struct {
	store storage.Storage
	log   *logrus.Logger
}

// NewService creates a new authentication service backed by the given storage.
func NewService(store storage.Storage, log *logrus.Logger) *Service {
	return &Service{store: store, log: log}
}

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// SetupInput carries the bootstrap payload.
type SetupInput struct {
	OrganizationName string
	FullName         string
	Position         string
	Username         string
	Password         string
}

// SetupResult is what the bootstrap produced.
type SetupResult struct {
	Organization *models.Organization `json:"organization"`
	User         *models.User         `json:"user"`
}

// IsInitialized reports whether the system bootstrap has already run.
func (s *Service) IsInitialized() (bool, error) {
	setting, err := s.store.GetSetting(models.SettingSystemInitialized)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return setting.Value == "true", nil
}

// Setup creates the organization and its administrator in one transaction and
// marks the system initialized. A second call fails with ErrSystemAlreadySetUp
// regardless of payload.
func (s *Service) Setup(input SetupInput) (*SetupResult, error) {
	initialized, err := s.IsInitialized()
	if err != nil {
		return nil, err
	}
	if initialized {
		return nil, apperrors.ErrSystemAlreadySetUp
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	result := &SetupResult{}
	err = s.store.RunInTransaction(func(tx storage.Storage) error {
		org := &models.Organization{Name: input.OrganizationName}
		if err := tx.CreateOrganization(org); err != nil {
			return err
		}

		admin := &models.User{
			Username:       input.Username,
			Password:       hash,
			FullName:       input.FullName,
			Position:       input.Position,
			OrganizationID: org.ID,
			Role:           models.UserRoleAdmin,
			Permissions:    models.PermissionList{models.PermissionFullAccess},
		}
		if err := tx.CreateUser(admin); err != nil {
			return err
		}

		if err := tx.PutSetting(models.SettingSystemInitialized, "true"); err != nil {
			return err
		}

		result.Organization = org
		result.User = admin
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"organization": result.Organization.Name,
		"admin":        result.User.Username,
	}).Info("System bootstrap completed")

	return result, nil
}

// Login verifies credentials and returns the user. Unknown usernames and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Login(username, password string) (*models.User, error) {
	user, err := s.store.GetUserByUsername(username)
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

// GetUser loads a user by id, for restoring a session principal.
func (s *Service) GetUser(id uint) (*models.User, error) {
	return s.store.GetUser(id)
}

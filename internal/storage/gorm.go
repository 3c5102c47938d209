package storage

import (
	"errors"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm is the relational Storage implementation. It runs against Postgres in
// production and sqlite in tests; uniqueness of usernames and inventory
// numbers is enforced by schema constraints (pre-checked for friendlier
// errors, with the constraint as the concurrent-write backstop).
type Gorm struct {
	db *gorm.DB
}

// NewGorm creates a relational store on top of an initialized *gorm.DB.
func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

// RunInTransaction executes fn inside a database transaction.
func (g *Gorm) RunInTransaction(fn func(Storage) error) error {
	return g.db.Transaction(func(tx *gorm.DB) error {
		return fn(&Gorm{db: tx})
	})
}

// notFound translates gorm's record-not-found into the typed sentinel.
func notFound(err error, sentinel *apperrors.NotFoundError) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}

// Organizations

func (g *Gorm) CreateOrganization(org *models.Organization) error {
	return g.db.Create(org).Error
}

func (g *Gorm) GetOrganization(id uint) (*models.Organization, error) {
	var org models.Organization
	if err := g.db.First(&org, "id = ?", id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrOrganizationNotFound)
	}
	return &org, nil
}

// Settings

func (g *Gorm) GetSetting(key string) (*models.Setting, error) {
	var setting models.Setting
	if err := g.db.First(&setting, "key = ?", key).Error; err != nil {
		return nil, notFound(err, apperrors.ErrSettingNotFound)
	}
	return &setting, nil
}

func (g *Gorm) PutSetting(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return g.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&setting).Error
}

// Users

func (g *Gorm) CreateUser(user *models.User) error {
	var count int64
	if err := g.db.Model(&models.User{}).Where("username = ?", user.Username).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrUsernameTaken
	}
	if err := g.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrUsernameTaken
		}
		return err
	}
	return nil
}

func (g *Gorm) GetUser(id uint) (*models.User, error) {
	var user models.User
	if err := g.db.First(&user, "id = ?", id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

func (g *Gorm) GetUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := g.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, notFound(err, apperrors.ErrUserNotFound)
	}
	return &user, nil
}

func (g *Gorm) GetUsers(organizationID uint) ([]models.User, error) {
	users := make([]models.User, 0)
	if err := g.db.Where("organization_id = ?", organizationID).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (g *Gorm) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	user, err := g.GetUser(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.Position != nil {
		updates["position"] = *patch.Position
	}
	if patch.Role != nil {
		updates["role"] = *patch.Role
	}
	if patch.Permissions != nil {
		updates["permissions"] = *patch.Permissions
	}
	if patch.Password != nil {
		updates["password"] = *patch.Password
	}
	if len(updates) > 0 {
		if err := g.db.Model(user).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return g.GetUser(id)
}

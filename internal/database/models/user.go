package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// UserRole is a coarse tag carried alongside the permission set; access
// decisions are made on permissions only.
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleManager UserRole = "manager"
	UserRoleViewer  UserRole = "viewer"
)

// User is an account that can log in. Password holds a bcrypt hash and is
// never serialized to JSON.
type User struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Username       string         `json:"username" gorm:"uniqueIndex;not null;size:100" validate:"required,min=3,max=100"`
	Password       string         `json:"-" gorm:"not null;size:100" validate:"required"`
	FullName       string         `json:"fullName" gorm:"not null;size:200" validate:"required,max=200"`
	Position       string         `json:"position" gorm:"not null;size:200" validate:"required,max=200"`
	OrganizationID uint           `json:"organizationId" gorm:"not null;index"`
	Role           UserRole       `json:"role" gorm:"type:varchar(20);not null;default:'viewer'"`
	Permissions    PermissionList `json:"permissions" gorm:"type:jsonb;not null"`
	CreatedAt      time.Time      `json:"createdAt"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// PermissionList stores a user's permission set as a JSON array column.
type PermissionList []Permission

// Value implements driver.Valuer for database serialization.
func (p PermissionList) Value() (driver.Value, error) {
	if p == nil {
		p = PermissionList{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database deserialization.
func (p *PermissionList) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported permissions column type %T", value)
	}
	return json.Unmarshal(data, p)
}

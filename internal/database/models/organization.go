package models

import "time"

// Organization is the root entity for multi-tenancy. Every other entity except
// Setting carries an OrganizationID. Organizations are never deleted.
type Organization struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}

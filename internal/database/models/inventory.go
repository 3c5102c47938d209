package models

import "time"

// InventoryItem is an asset assigned to an employee. DepartmentID duplicates
// the employee's department so department-level aggregation needs no join.
// InventoryNumber is unique across the whole store, not per organization.
// Cost is in minor currency units; no fractional handling.
type InventoryItem struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"not null;size:200" validate:"required,max=200"`
	InventoryNumber string    `json:"inventoryNumber" gorm:"uniqueIndex;not null;size:100" validate:"required,max=100"`
	Description     string    `json:"description" gorm:"not null;size:1000"`
	Cost            int       `json:"cost" gorm:"not null"`
	EmployeeID      uint      `json:"employeeId" gorm:"not null;index"`
	DepartmentID    uint      `json:"departmentId" gorm:"not null;index"`
	OrganizationID  uint      `json:"organizationId" gorm:"not null;index"`
	CreatedAt       time.Time `json:"createdAt"`
}

// TableName returns the table name for InventoryItem
func (InventoryItem) TableName() string {
	return "inventory_items"
}

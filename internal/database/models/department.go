package models

import "time"

// Department groups employees and inventory inside an organization.
type Department struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Name           string    `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	OrganizationID uint      `json:"organizationId" gorm:"not null;index"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName returns the table name for Department
func (Department) TableName() string {
	return "departments"
}

// DepartmentStat is the per-department aggregation returned by
// GET /api/departments?stats=true.
type DepartmentStat struct {
	DepartmentID   uint   `json:"departmentId"`
	DepartmentName string `json:"departmentName"`
	EmployeeCount  int    `json:"employeeCount"`
	InventoryCount int    `json:"inventoryCount"`
}

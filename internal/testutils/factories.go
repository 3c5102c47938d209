package testutils

import (
	"time"

	"github.com/KarlovS28/uchettest/internal/database/models"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		Name: "Test Organization",
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values. The password field holds a
// placeholder hash; use the auth service when a real login is needed.
func (f *UserFactory) Create(organizationID uint) *models.User {
	return &models.User{
		Username:       "testuser",
		Password:       "$2a$10$unusable.test.hash.value.0000000000000000000000000000",
		FullName:       "Test User",
		Position:       "Specialist",
		OrganizationID: organizationID,
		Role:           models.UserRoleViewer,
		Permissions:    models.PermissionList{models.PermissionViewEmployeeData},
	}
}

// WithUsername sets a custom username
func (f *UserFactory) WithUsername(organizationID uint, username string) *models.User {
	user := f.Create(organizationID)
	user.Username = username
	return user
}

// WithPermissions sets a custom permission set
func (f *UserFactory) WithPermissions(organizationID uint, permissions ...models.Permission) *models.User {
	user := f.Create(organizationID)
	user.Permissions = models.PermissionList(permissions)
	return user
}

// DepartmentFactory provides methods to create test Department data
type DepartmentFactory struct{}

// NewDepartmentFactory creates a new DepartmentFactory
func NewDepartmentFactory() *DepartmentFactory {
	return &DepartmentFactory{}
}

// Create creates a test Department with default values
func (f *DepartmentFactory) Create(organizationID uint) *models.Department {
	return &models.Department{
		Name:           "Test Department",
		OrganizationID: organizationID,
	}
}

// WithName sets a custom name
func (f *DepartmentFactory) WithName(organizationID uint, name string) *models.Department {
	department := f.Create(organizationID)
	department.Name = name
	return department
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create(organizationID, departmentID uint) *models.Employee {
	return &models.Employee{
		FullName:              "Иванов Иван Иванович",
		DepartmentID:          departmentID,
		Position:              "Инженер",
		HireDate:              time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
		HireOrderNumber:       "П-42",
		Passport:              "4510 123456",
		BirthDate:             time.Date(1985, 6, 15, 0, 0, 0, 0, time.UTC),
		Address:               "г. Москва, ул. Ленина, д. 1",
		Phone:                 "+7 900 000-00-00",
		MaterialLiabilityType: models.LiabilityNone,
		OrganizationID:        organizationID,
	}
}

// WithFullName sets a custom full name
func (f *EmployeeFactory) WithFullName(organizationID, departmentID uint, fullName string) *models.Employee {
	employee := f.Create(organizationID, departmentID)
	employee.FullName = fullName
	return employee
}

// InventoryItemFactory provides methods to create test InventoryItem data
type InventoryItemFactory struct{}

// NewInventoryItemFactory creates a new InventoryItemFactory
func NewInventoryItemFactory() *InventoryItemFactory {
	return &InventoryItemFactory{}
}

// Create creates a test InventoryItem with default values
func (f *InventoryItemFactory) Create(organizationID, departmentID, employeeID uint, inventoryNumber string) *models.InventoryItem {
	return &models.InventoryItem{
		Name:            "Ноутбук",
		InventoryNumber: inventoryNumber,
		Description:     "Рабочий ноутбук",
		Cost:            7500000,
		EmployeeID:      employeeID,
		DepartmentID:    departmentID,
		OrganizationID:  organizationID,
	}
}

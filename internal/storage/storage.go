package storage

import (
	"time"

	"github.com/KarlovS28/uchettest/internal/database/models"
)

// Storage is the single point of truth for persistence. Two implementations
// satisfy the identical contract: Memory (map-backed, for tests and ephemeral
// mode) and Gorm (relational). Lookups report absence with a typed
// NotFoundError, never a panic; creates assign an id and stamp CreatedAt;
// updates merge a partial patch and return the merged entity.
//
// Tenant scoping is centralized here: every organization-owned query takes the
// organization id as a mandatory parameter. Employee documents carry no
// organization id in the schema; callers scope document access through the
// owning employee.
type Storage interface {
	// RunInTransaction executes fn atomically when the backend supports it.
	// The Memory implementation runs fn directly (single-process, mutex-guarded).
	RunInTransaction(fn func(Storage) error) error

	// Organizations
	CreateOrganization(org *models.Organization) error
	GetOrganization(id uint) (*models.Organization, error)

	// Settings
	GetSetting(key string) (*models.Setting, error)
	PutSetting(key, value string) error

	// Users
	CreateUser(user *models.User) error
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUsers(organizationID uint) ([]models.User, error)
	UpdateUser(id uint, patch UserPatch) (*models.User, error)

	// Departments
	CreateDepartment(department *models.Department) error
	GetDepartment(organizationID, id uint) (*models.Department, error)
	GetDepartments(organizationID uint) ([]models.Department, error)
	UpdateDepartment(organizationID, id uint, patch DepartmentPatch) (*models.Department, error)
	DeleteDepartment(organizationID, id uint) error

	// Employees
	CreateEmployee(employee *models.Employee) error
	GetEmployee(organizationID, id uint) (*models.Employee, error)
	GetEmployees(organizationID uint, departmentID *uint) ([]models.Employee, error)
	UpdateEmployee(organizationID, id uint, patch EmployeePatch) (*models.Employee, error)
	DismissEmployee(organizationID, id uint, dismissalDate time.Time, orderNumber string) (*models.Employee, error)

	// Employee documents
	AddEmployeeDocument(document *models.EmployeeDocument) error
	GetEmployeeDocuments(employeeID uint) ([]models.EmployeeDocument, error)
	GetEmployeeDocument(id uint) (*models.EmployeeDocument, error)
	DeleteEmployeeDocument(id uint) error

	// Inventory
	CreateInventoryItem(item *models.InventoryItem) error
	GetInventoryItem(organizationID, id uint) (*models.InventoryItem, error)
	GetInventoryItemsByEmployee(organizationID, employeeID uint) ([]models.InventoryItem, error)
	GetInventoryItemsByDepartment(organizationID, departmentID uint) ([]models.InventoryItem, error)
	UpdateInventoryItem(organizationID, id uint, patch InventoryItemPatch) (*models.InventoryItem, error)
	DeleteInventoryItem(organizationID, id uint) error

	// Stats
	GetDepartmentStats(organizationID uint) ([]models.DepartmentStat, error)
}

// UserPatch is a partial update for a user. Nil fields are left untouched.
type UserPatch struct {
	FullName    *string
	Position    *string
	Role        *models.UserRole
	Permissions *models.PermissionList
	Password    *string
}

// DepartmentPatch is a partial update for a department.
type DepartmentPatch struct {
	Name *string
}

// EmployeePatch is a partial update for an employee. Dismissal fields are
// deliberately absent; the status flip goes through DismissEmployee only.
type EmployeePatch struct {
	FullName                  *string
	DepartmentID              *uint
	Position                  *string
	HireDate                  *time.Time
	HireOrderNumber           *string
	Passport                  *string
	BirthDate                 *time.Time
	Address                   *string
	Phone                     *string
	Photo                     *string
	MaterialLiabilityType     *models.MaterialLiabilityType
	MaterialLiabilityDocument *string
}

// InventoryItemPatch is a partial update for an inventory item.
type InventoryItemPatch struct {
	Name            *string
	InventoryNumber *string
	Description     *string
	Cost            *int
	EmployeeID      *uint
	DepartmentID    *uint
}

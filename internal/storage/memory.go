package storage

import (
	"sync"
	"time"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
)

// Memory is the map-backed Storage implementation. Identifiers are monotonic
// counters starting at 1 so they line up with database autoincrement ids.
// All data is lost on process restart.
type Memory struct {
	mu sync.RWMutex

	settings      map[string]models.Setting
	organizations map[uint]models.Organization
	users         map[uint]models.User
	departments   map[uint]models.Department
	employees     map[uint]models.Employee
	documents     map[uint]models.EmployeeDocument
	inventory     map[uint]models.InventoryItem

	organizationID uint
	userID         uint
	departmentID   uint
	employeeID     uint
	documentID     uint
	inventoryID    uint
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		settings:      make(map[string]models.Setting),
		organizations: make(map[uint]models.Organization),
		users:         make(map[uint]models.User),
		departments:   make(map[uint]models.Department),
		employees:     make(map[uint]models.Employee),
		documents:     make(map[uint]models.EmployeeDocument),
		inventory:     make(map[uint]models.InventoryItem),
	}
}

// RunInTransaction runs fn directly. The store is single-process and guarded
// by its own mutex per operation; partial failures are not rolled back.
func (m *Memory) RunInTransaction(fn func(Storage) error) error {
	return fn(m)
}

// Organizations

func (m *Memory) CreateOrganization(org *models.Organization) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.organizationID++
	org.ID = m.organizationID
	org.CreatedAt = time.Now()
	m.organizations[org.ID] = *org
	return nil
}

func (m *Memory) GetOrganization(id uint) (*models.Organization, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	org, ok := m.organizations[id]
	if !ok {
		return nil, apperrors.ErrOrganizationNotFound
	}
	return &org, nil
}

// Settings

func (m *Memory) GetSetting(key string) (*models.Setting, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	setting, ok := m.settings[key]
	if !ok {
		return nil, apperrors.ErrSettingNotFound
	}
	return &setting, nil
}

func (m *Memory) PutSetting(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.settings[key] = models.Setting{Key: key, Value: value, UpdatedAt: time.Now()}
	return nil
}

// Users

func (m *Memory) CreateUser(user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Username == user.Username {
			return apperrors.ErrUsernameTaken
		}
	}

	m.userID++
	user.ID = m.userID
	user.CreatedAt = time.Now()
	m.users[user.ID] = *user
	return nil
}

func (m *Memory) GetUser(id uint) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &user, nil
}

func (m *Memory) GetUserByUsername(username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (m *Memory) GetUsers(organizationID uint) ([]models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	users := make([]models.User, 0)
	for id := uint(1); id <= m.userID; id++ {
		if user, ok := m.users[id]; ok && user.OrganizationID == organizationID {
			users = append(users, user)
		}
	}
	return users, nil
}

func (m *Memory) UpdateUser(id uint, patch UserPatch) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	if patch.FullName != nil {
		user.FullName = *patch.FullName
	}
	if patch.Position != nil {
		user.Position = *patch.Position
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	if patch.Permissions != nil {
		user.Permissions = *patch.Permissions
	}
	if patch.Password != nil {
		user.Password = *patch.Password
	}
	m.users[id] = user
	return &user, nil
}

// Departments

func (m *Memory) CreateDepartment(department *models.Department) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.departmentID++
	department.ID = m.departmentID
	department.CreatedAt = time.Now()
	m.departments[department.ID] = *department
	return nil
}

func (m *Memory) GetDepartment(organizationID, id uint) (*models.Department, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	department, ok := m.departments[id]
	if !ok || department.OrganizationID != organizationID {
		return nil, apperrors.ErrDepartmentNotFound
	}
	return &department, nil
}

func (m *Memory) GetDepartments(organizationID uint) ([]models.Department, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	departments := make([]models.Department, 0)
	for id := uint(1); id <= m.departmentID; id++ {
		if department, ok := m.departments[id]; ok && department.OrganizationID == organizationID {
			departments = append(departments, department)
		}
	}
	return departments, nil
}

func (m *Memory) UpdateDepartment(organizationID, id uint, patch DepartmentPatch) (*models.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	department, ok := m.departments[id]
	if !ok || department.OrganizationID != organizationID {
		return nil, apperrors.ErrDepartmentNotFound
	}
	if patch.Name != nil {
		department.Name = *patch.Name
	}
	m.departments[id] = department
	return &department, nil
}

func (m *Memory) DeleteDepartment(organizationID, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	department, ok := m.departments[id]
	if !ok || department.OrganizationID != organizationID {
		return apperrors.ErrDepartmentNotFound
	}
	delete(m.departments, id)
	return nil
}

// Employees

func (m *Memory) CreateEmployee(employee *models.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.employeeID++
	employee.ID = m.employeeID
	employee.Dismissed = false
	employee.DismissalDate = nil
	employee.DismissalOrderNumber = ""
	employee.CreatedAt = time.Now()
	m.employees[employee.ID] = *employee
	return nil
}

func (m *Memory) GetEmployee(organizationID, id uint) (*models.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	employee, ok := m.employees[id]
	if !ok || employee.OrganizationID != organizationID {
		return nil, apperrors.ErrEmployeeNotFound
	}
	return &employee, nil
}

func (m *Memory) GetEmployees(organizationID uint, departmentID *uint) ([]models.Employee, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	employees := make([]models.Employee, 0)
	for id := uint(1); id <= m.employeeID; id++ {
		employee, ok := m.employees[id]
		if !ok || employee.OrganizationID != organizationID {
			continue
		}
		if departmentID != nil && employee.DepartmentID != *departmentID {
			continue
		}
		employees = append(employees, employee)
	}
	return employees, nil
}

func (m *Memory) UpdateEmployee(organizationID, id uint, patch EmployeePatch) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	employee, ok := m.employees[id]
	if !ok || employee.OrganizationID != organizationID {
		return nil, apperrors.ErrEmployeeNotFound
	}
	if patch.FullName != nil {
		employee.FullName = *patch.FullName
	}
	if patch.DepartmentID != nil {
		employee.DepartmentID = *patch.DepartmentID
	}
	if patch.Position != nil {
		employee.Position = *patch.Position
	}
	if patch.HireDate != nil {
		employee.HireDate = *patch.HireDate
	}
	if patch.HireOrderNumber != nil {
		employee.HireOrderNumber = *patch.HireOrderNumber
	}
	if patch.Passport != nil {
		employee.Passport = *patch.Passport
	}
	if patch.BirthDate != nil {
		employee.BirthDate = *patch.BirthDate
	}
	if patch.Address != nil {
		employee.Address = *patch.Address
	}
	if patch.Phone != nil {
		employee.Phone = *patch.Phone
	}
	if patch.Photo != nil {
		employee.Photo = *patch.Photo
	}
	if patch.MaterialLiabilityType != nil {
		employee.MaterialLiabilityType = *patch.MaterialLiabilityType
	}
	if patch.MaterialLiabilityDocument != nil {
		employee.MaterialLiabilityDocument = *patch.MaterialLiabilityDocument
	}
	m.employees[id] = employee
	return &employee, nil
}

func (m *Memory) DismissEmployee(organizationID, id uint, dismissalDate time.Time, orderNumber string) (*models.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	employee, ok := m.employees[id]
	if !ok || employee.OrganizationID != organizationID {
		return nil, apperrors.ErrEmployeeNotFound
	}
	if employee.Dismissed {
		return nil, apperrors.ErrAlreadyDismissed
	}
	employee.Dismissed = true
	employee.DismissalDate = &dismissalDate
	employee.DismissalOrderNumber = orderNumber
	m.employees[id] = employee
	return &employee, nil
}

// Employee documents

func (m *Memory) AddEmployeeDocument(document *models.EmployeeDocument) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.documentID++
	document.ID = m.documentID
	document.UploadDate = time.Now()
	m.documents[document.ID] = *document
	return nil
}

func (m *Memory) GetEmployeeDocuments(employeeID uint) ([]models.EmployeeDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	documents := make([]models.EmployeeDocument, 0)
	for id := uint(1); id <= m.documentID; id++ {
		if doc, ok := m.documents[id]; ok && doc.EmployeeID == employeeID {
			documents = append(documents, doc)
		}
	}
	return documents, nil
}

func (m *Memory) GetEmployeeDocument(id uint) (*models.EmployeeDocument, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	document, ok := m.documents[id]
	if !ok {
		return nil, apperrors.ErrDocumentNotFound
	}
	return &document, nil
}

func (m *Memory) DeleteEmployeeDocument(id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.documents[id]; !ok {
		return apperrors.ErrDocumentNotFound
	}
	delete(m.documents, id)
	return nil
}

// Inventory

func (m *Memory) CreateInventoryItem(item *models.InventoryItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.inventory {
		if existing.InventoryNumber == item.InventoryNumber {
			return apperrors.ErrInventoryNumberTaken
		}
	}

	m.inventoryID++
	item.ID = m.inventoryID
	item.CreatedAt = time.Now()
	m.inventory[item.ID] = *item
	return nil
}

func (m *Memory) GetInventoryItem(organizationID, id uint) (*models.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.inventory[id]
	if !ok || item.OrganizationID != organizationID {
		return nil, apperrors.ErrInventoryNotFound
	}
	return &item, nil
}

func (m *Memory) GetInventoryItemsByEmployee(organizationID, employeeID uint) ([]models.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.InventoryItem, 0)
	for id := uint(1); id <= m.inventoryID; id++ {
		if item, ok := m.inventory[id]; ok && item.OrganizationID == organizationID && item.EmployeeID == employeeID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *Memory) GetInventoryItemsByDepartment(organizationID, departmentID uint) ([]models.InventoryItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	items := make([]models.InventoryItem, 0)
	for id := uint(1); id <= m.inventoryID; id++ {
		if item, ok := m.inventory[id]; ok && item.OrganizationID == organizationID && item.DepartmentID == departmentID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (m *Memory) UpdateInventoryItem(organizationID, id uint, patch InventoryItemPatch) (*models.InventoryItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.inventory[id]
	if !ok || item.OrganizationID != organizationID {
		return nil, apperrors.ErrInventoryNotFound
	}
	if patch.InventoryNumber != nil && *patch.InventoryNumber != item.InventoryNumber {
		for _, existing := range m.inventory {
			if existing.InventoryNumber == *patch.InventoryNumber {
				return nil, apperrors.ErrInventoryNumberTaken
			}
		}
		item.InventoryNumber = *patch.InventoryNumber
	}
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Cost != nil {
		item.Cost = *patch.Cost
	}
	if patch.EmployeeID != nil {
		item.EmployeeID = *patch.EmployeeID
	}
	if patch.DepartmentID != nil {
		item.DepartmentID = *patch.DepartmentID
	}
	m.inventory[id] = item
	return &item, nil
}

func (m *Memory) DeleteInventoryItem(organizationID, id uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	item, ok := m.inventory[id]
	if !ok || item.OrganizationID != organizationID {
		return apperrors.ErrInventoryNotFound
	}
	delete(m.inventory, id)
	return nil
}

// Stats

func (m *Memory) GetDepartmentStats(organizationID uint) ([]models.DepartmentStat, error) {
	departments, err := m.GetDepartments(organizationID)
	if err != nil {
		return nil, err
	}

	stats := make([]models.DepartmentStat, 0, len(departments))
	for _, department := range departments {
		deptID := department.ID
		employees, err := m.GetEmployees(organizationID, &deptID)
		if err != nil {
			return nil, err
		}
		items, err := m.GetInventoryItemsByDepartment(organizationID, deptID)
		if err != nil {
			return nil, err
		}
		stats = append(stats, models.DepartmentStat{
			DepartmentID:   deptID,
			DepartmentName: department.Name,
			EmployeeCount:  len(employees),
			InventoryCount: len(items),
		})
	}
	return stats, nil
}

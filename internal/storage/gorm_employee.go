package storage

import (
	"time"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
)

// Employees

func (g *Gorm) CreateEmployee(employee *models.Employee) error {
	employee.Dismissed = false
	employee.DismissalDate = nil
	employee.DismissalOrderNumber = ""
	return g.db.Create(employee).Error
}

func (g *Gorm) GetEmployee(organizationID, id uint) (*models.Employee, error) {
	var employee models.Employee
	err := g.db.First(&employee, "id = ? AND organization_id = ?", id, organizationID).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrEmployeeNotFound)
	}
	return &employee, nil
}

func (g *Gorm) GetEmployees(organizationID uint, departmentID *uint) ([]models.Employee, error) {
	query := g.db.Where("organization_id = ?", organizationID)
	if departmentID != nil {
		query = query.Where("department_id = ?", *departmentID)
	}

	employees := make([]models.Employee, 0)
	if err := query.Order("id").Find(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (g *Gorm) UpdateEmployee(organizationID, id uint, patch EmployeePatch) (*models.Employee, error) {
	employee, err := g.GetEmployee(organizationID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.FullName != nil {
		updates["full_name"] = *patch.FullName
	}
	if patch.DepartmentID != nil {
		updates["department_id"] = *patch.DepartmentID
	}
	if patch.Position != nil {
		updates["position"] = *patch.Position
	}
	if patch.HireDate != nil {
		updates["hire_date"] = *patch.HireDate
	}
	if patch.HireOrderNumber != nil {
		updates["hire_order_number"] = *patch.HireOrderNumber
	}
	if patch.Passport != nil {
		updates["passport"] = *patch.Passport
	}
	if patch.BirthDate != nil {
		updates["birth_date"] = *patch.BirthDate
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Phone != nil {
		updates["phone"] = *patch.Phone
	}
	if patch.Photo != nil {
		updates["photo"] = *patch.Photo
	}
	if patch.MaterialLiabilityType != nil {
		updates["material_liability_type"] = *patch.MaterialLiabilityType
	}
	if patch.MaterialLiabilityDocument != nil {
		updates["material_liability_document"] = *patch.MaterialLiabilityDocument
	}
	if len(updates) > 0 {
		if err := g.db.Model(employee).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return g.GetEmployee(organizationID, id)
}

func (g *Gorm) DismissEmployee(organizationID, id uint, dismissalDate time.Time, orderNumber string) (*models.Employee, error) {
	employee, err := g.GetEmployee(organizationID, id)
	if err != nil {
		return nil, err
	}
	if employee.Dismissed {
		return nil, apperrors.ErrAlreadyDismissed
	}

	updates := map[string]interface{}{
		"dismissed":              true,
		"dismissal_date":         dismissalDate,
		"dismissal_order_number": orderNumber,
	}
	if err := g.db.Model(employee).Updates(updates).Error; err != nil {
		return nil, err
	}
	return g.GetEmployee(organizationID, id)
}

// Employee documents

func (g *Gorm) AddEmployeeDocument(document *models.EmployeeDocument) error {
	return g.db.Create(document).Error
}

func (g *Gorm) GetEmployeeDocuments(employeeID uint) ([]models.EmployeeDocument, error) {
	documents := make([]models.EmployeeDocument, 0)
	err := g.db.Where("employee_id = ?", employeeID).Order("id").Find(&documents).Error
	if err != nil {
		return nil, err
	}
	return documents, nil
}

func (g *Gorm) GetEmployeeDocument(id uint) (*models.EmployeeDocument, error) {
	var document models.EmployeeDocument
	if err := g.db.First(&document, "id = ?", id).Error; err != nil {
		return nil, notFound(err, apperrors.ErrDocumentNotFound)
	}
	return &document, nil
}

func (g *Gorm) DeleteEmployeeDocument(id uint) error {
	result := g.db.Delete(&models.EmployeeDocument{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDocumentNotFound
	}
	return nil
}

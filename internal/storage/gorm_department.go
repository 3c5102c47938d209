package storage

import (
	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
)

// Departments

func (g *Gorm) CreateDepartment(department *models.Department) error {
	return g.db.Create(department).Error
}

func (g *Gorm) GetDepartment(organizationID, id uint) (*models.Department, error) {
	var department models.Department
	err := g.db.First(&department, "id = ? AND organization_id = ?", id, organizationID).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrDepartmentNotFound)
	}
	return &department, nil
}

func (g *Gorm) GetDepartments(organizationID uint) ([]models.Department, error) {
	departments := make([]models.Department, 0)
	err := g.db.Where("organization_id = ?", organizationID).Order("id").Find(&departments).Error
	if err != nil {
		return nil, err
	}
	return departments, nil
}

func (g *Gorm) UpdateDepartment(organizationID, id uint, patch DepartmentPatch) (*models.Department, error) {
	department, err := g.GetDepartment(organizationID, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		if err := g.db.Model(department).Update("name", *patch.Name).Error; err != nil {
			return nil, err
		}
	}
	return g.GetDepartment(organizationID, id)
}

func (g *Gorm) DeleteDepartment(organizationID, id uint) error {
	result := g.db.Where("id = ? AND organization_id = ?", id, organizationID).Delete(&models.Department{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrDepartmentNotFound
	}
	return nil
}

// Stats

// GetDepartmentStats aggregates one query pair per department. O(departments)
// round trips, fine at the expected scale.
func (g *Gorm) GetDepartmentStats(organizationID uint) ([]models.DepartmentStat, error) {
	departments, err := g.GetDepartments(organizationID)
	if err != nil {
		return nil, err
	}

	stats := make([]models.DepartmentStat, 0, len(departments))
	for _, department := range departments {
		var employeeCount int64
		err := g.db.Model(&models.Employee{}).
			Where("organization_id = ? AND department_id = ?", organizationID, department.ID).
			Count(&employeeCount).Error
		if err != nil {
			return nil, err
		}

		var inventoryCount int64
		err = g.db.Model(&models.InventoryItem{}).
			Where("organization_id = ? AND department_id = ?", organizationID, department.ID).
			Count(&inventoryCount).Error
		if err != nil {
			return nil, err
		}

		stats = append(stats, models.DepartmentStat{
			DepartmentID:   department.ID,
			DepartmentName: department.Name,
			EmployeeCount:  int(employeeCount),
			InventoryCount: int(inventoryCount),
		})
	}
	return stats, nil
}

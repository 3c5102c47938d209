package storage

import (
	"errors"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"

	"gorm.io/gorm"
)

// Inventory

func (g *Gorm) CreateInventoryItem(item *models.InventoryItem) error {
	var count int64
	err := g.db.Model(&models.InventoryItem{}).
		Where("inventory_number = ?", item.InventoryNumber).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.ErrInventoryNumberTaken
	}
	if err := g.db.Create(item).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrInventoryNumberTaken
		}
		return err
	}
	return nil
}

func (g *Gorm) GetInventoryItem(organizationID, id uint) (*models.InventoryItem, error) {
	var item models.InventoryItem
	err := g.db.First(&item, "id = ? AND organization_id = ?", id, organizationID).Error
	if err != nil {
		return nil, notFound(err, apperrors.ErrInventoryNotFound)
	}
	return &item, nil
}

func (g *Gorm) GetInventoryItemsByEmployee(organizationID, employeeID uint) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0)
	err := g.db.Where("organization_id = ? AND employee_id = ?", organizationID, employeeID).
		Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (g *Gorm) GetInventoryItemsByDepartment(organizationID, departmentID uint) ([]models.InventoryItem, error) {
	items := make([]models.InventoryItem, 0)
	err := g.db.Where("organization_id = ? AND department_id = ?", organizationID, departmentID).
		Order("id").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (g *Gorm) UpdateInventoryItem(organizationID, id uint, patch InventoryItemPatch) (*models.InventoryItem, error) {
	item, err := g.GetInventoryItem(organizationID, id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if patch.InventoryNumber != nil && *patch.InventoryNumber != item.InventoryNumber {
		var count int64
		err := g.db.Model(&models.InventoryItem{}).
			Where("inventory_number = ?", *patch.InventoryNumber).
			Count(&count).Error
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.ErrInventoryNumberTaken
		}
		updates["inventory_number"] = *patch.InventoryNumber
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Cost != nil {
		updates["cost"] = *patch.Cost
	}
	if patch.EmployeeID != nil {
		updates["employee_id"] = *patch.EmployeeID
	}
	if patch.DepartmentID != nil {
		updates["department_id"] = *patch.DepartmentID
	}
	if len(updates) > 0 {
		if err := g.db.Model(item).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, apperrors.ErrInventoryNumberTaken
			}
			return nil, err
		}
	}
	return g.GetInventoryItem(organizationID, id)
}

func (g *Gorm) DeleteInventoryItem(organizationID, id uint) error {
	result := g.db.Where("id = ? AND organization_id = ?", id, organizationID).Delete(&models.InventoryItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrInventoryNotFound
	}
	return nil
}

package service

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/KarlovS28/uchettest/internal/database/models"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExcelService implements bulk import from and export to xlsx workbooks.
// Imported rows are processed independently; a bad row is reported and skipped,
// never aborting the batch.
type ExcelService struct {
	store storage.Storage
	log   *logrus.Logger
}

// NewExcelService creates a new ExcelService
func NewExcelService(store storage.Storage, log *logrus.Logger) *ExcelService {
	return &ExcelService{store: store, log: log}
}

// ImportResult summarizes a bulk import. Errors are human-readable per-row
// messages in Russian, matching the office documents this trafficks in.
type ImportResult struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors"`
}

// Header labels recognized during import, keyed by canonical field name. Each
// column may be titled with either the English field name or the Russian label;
// export emits the Russian labels so exported files re-import cleanly.
var employeeColumns = []importColumn{
	{"fullName", "ФИО"},
	{"position", "Должность"},
	{"departmentId", "ID отдела"},
	{"hireDate", "Дата приема"},
	{"hireOrderNumber", "Номер приказа о приеме"},
	{"passport", "Паспорт"},
	{"birthDate", "Дата рождения"},
	{"address", "Адрес"},
	{"phone", "Телефон"},
	{"materialLiabilityType", "Материальная ответственность"},
}

var inventoryColumns = []importColumn{
	{"name", "Наименование"},
	{"inventoryNumber", "Инвентарный номер"},
	{"description", "Описание"},
	{"cost", "Стоимость"},
	{"employeeId", "ID сотрудника"},
	{"departmentId", "ID отдела"},
}

type importColumn struct {
	field string
	label string
}

// readSheet opens the workbook and returns the first sheet's rows.
func readSheet(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.NewValidationError("file", "not a valid xlsx workbook")
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewValidationError("file", "workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}

// columnIndex maps each canonical field to its column position using the
// header row. Unrecognized headers are ignored.
func columnIndex(header []string, columns []importColumn) map[string]int {
	index := make(map[string]int, len(columns))
	for i, cell := range header {
		title := strings.TrimSpace(cell)
		for _, col := range columns {
			if strings.EqualFold(title, col.field) || strings.EqualFold(title, col.label) {
				index[col.field] = i
				break
			}
		}
	}
	return index
}

// cell returns the trimmed value of a mapped column, or "" when the column is
// absent or the row is short.
func cell(row []string, index map[string]int, field string) string {
	i, ok := index[field]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func rowError(result *ImportResult, dataRow int, message string) {
	result.Failed++
	result.Errors = append(result.Errors, fmt.Sprintf("Строка %d: %s", dataRow, message))
}

// ImportEmployees loads employees from an xlsx workbook. fullName, position and
// departmentId are mandatory per row; malformed dates fall back to defaults so
// sloppy spreadsheets still import.
func (s *ExcelService) ImportEmployees(organizationID uint, r io.Reader) (*ImportResult, error) {
	rows, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	if len(rows) < 2 {
		return result, nil
	}

	index := columnIndex(rows[0], employeeColumns)
	for n, row := range rows[1:] {
		dataRow := n + 1

		fullName := cell(row, index, "fullName")
		if fullName == "" {
			rowError(result, dataRow, "не указано ФИО")
			continue
		}
		position := cell(row, index, "position")
		if position == "" {
			rowError(result, dataRow, "не указана должность")
			continue
		}
		departmentRaw := cell(row, index, "departmentId")
		if departmentRaw == "" {
			rowError(result, dataRow, "не указан отдел")
			continue
		}
		departmentID, err := strconv.ParseUint(departmentRaw, 10, 32)
		if err != nil {
			rowError(result, dataRow, "некорректный ID отдела")
			continue
		}
		if _, err := s.store.GetDepartment(organizationID, uint(departmentID)); err != nil {
			rowError(result, dataRow, "отдел не найден")
			continue
		}

		hireDate, err := parseDate(cell(row, index, "hireDate"))
		if err != nil {
			hireDate = time.Now()
		}
		birthDate, err := parseDate(cell(row, index, "birthDate"))
		if err != nil {
			birthDate = time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
		}

		liability := models.MaterialLiabilityType(cell(row, index, "materialLiabilityType"))
		if !liability.IsValid() {
			liability = models.LiabilityNone
		}

		employee := &models.Employee{
			FullName:              fullName,
			DepartmentID:          uint(departmentID),
			Position:              position,
			HireDate:              hireDate,
			HireOrderNumber:       cell(row, index, "hireOrderNumber"),
			Passport:              cell(row, index, "passport"),
			BirthDate:             birthDate,
			Address:               cell(row, index, "address"),
			Phone:                 cell(row, index, "phone"),
			MaterialLiabilityType: liability,
			OrganizationID:        organizationID,
		}
		if err := s.store.CreateEmployee(employee); err != nil {
			s.log.WithError(err).Warn("Employee import row failed")
			rowError(result, dataRow, "не удалось сохранить сотрудника")
			continue
		}
		result.Success++
	}
	return result, nil
}

// ImportInventory loads inventory items from an xlsx workbook. A row must name
// the item and reference an employee or a department; a referenced employee
// fills in a missing department.
func (s *ExcelService) ImportInventory(organizationID uint, r io.Reader) (*ImportResult, error) {
	rows, err := readSheet(r)
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []string{}}
	if len(rows) < 2 {
		return result, nil
	}

	index := columnIndex(rows[0], inventoryColumns)
	for n, row := range rows[1:] {
		dataRow := n + 1

		name := cell(row, index, "name")
		if name == "" {
			rowError(result, dataRow, "не указано наименование")
			continue
		}
		inventoryNumber := cell(row, index, "inventoryNumber")
		if inventoryNumber == "" {
			rowError(result, dataRow, "не указан инвентарный номер")
			continue
		}

		var employeeID, departmentID uint
		if raw := cell(row, index, "employeeId"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				rowError(result, dataRow, "некорректный ID сотрудника")
				continue
			}
			employee, err := s.store.GetEmployee(organizationID, uint(id))
			if err != nil {
				rowError(result, dataRow, "сотрудник не найден")
				continue
			}
			employeeID = employee.ID
			departmentID = employee.DepartmentID
		}
		if raw := cell(row, index, "departmentId"); raw != "" {
			id, err := strconv.ParseUint(raw, 10, 32)
			if err != nil {
				rowError(result, dataRow, "некорректный ID отдела")
				continue
			}
			if _, err := s.store.GetDepartment(organizationID, uint(id)); err != nil {
				rowError(result, dataRow, "отдел не найден")
				continue
			}
			departmentID = uint(id)
		}
		if employeeID == 0 && departmentID == 0 {
			rowError(result, dataRow, "не указан сотрудник или отдел")
			continue
		}

		cost := 0
		if raw := cell(row, index, "cost"); raw != "" {
			if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 0 {
				cost = parsed
			}
		}

		item := &models.InventoryItem{
			Name:            name,
			InventoryNumber: inventoryNumber,
			Description:     cell(row, index, "description"),
			Cost:            cost,
			EmployeeID:      employeeID,
			DepartmentID:    departmentID,
			OrganizationID:  organizationID,
		}
		if err := s.store.CreateInventoryItem(item); err != nil {
			if apperrors.IsAlreadyExists(err) {
				rowError(result, dataRow, "инвентарный номер уже используется")
			} else {
				s.log.WithError(err).Warn("Inventory import row failed")
				rowError(result, dataRow, "не удалось сохранить позицию")
			}
			continue
		}
		result.Success++
	}
	return result, nil
}

// ExportEmployees serializes employees, optionally of one department, into an
// xlsx workbook whose columns are the Russian import labels.
func (s *ExcelService) ExportEmployees(organizationID uint, departmentID *uint) (*excelize.File, error) {
	employees, err := s.store.GetEmployees(organizationID, departmentID)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeHeader(f, sheet, employeeColumns); err != nil {
		return nil, err
	}
	for i, e := range employees {
		row := []interface{}{
			e.FullName,
			e.Position,
			e.DepartmentID,
			formatDate(e.HireDate),
			e.HireOrderNumber,
			e.Passport,
			formatDate(e.BirthDate),
			e.Address,
			e.Phone,
			string(e.MaterialLiabilityType),
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ExportInventory serializes one employee's or one department's inventory into
// an xlsx workbook.
func (s *ExcelService) ExportInventory(organizationID uint, employeeID, departmentID *uint) (*excelize.File, error) {
	var (
		items []models.InventoryItem
		err   error
	)
	switch {
	case employeeID != nil && departmentID == nil:
		items, err = s.store.GetInventoryItemsByEmployee(organizationID, *employeeID)
	case departmentID != nil && employeeID == nil:
		items, err = s.store.GetInventoryItemsByDepartment(organizationID, *departmentID)
	default:
		return nil, apperrors.ErrInventoryFilter
	}
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)

	if err := writeHeader(f, sheet, inventoryColumns); err != nil {
		return nil, err
	}
	for i, item := range items {
		row := []interface{}{
			item.Name,
			item.InventoryNumber,
			item.Description,
			item.Cost,
			item.EmployeeID,
			item.DepartmentID,
		}
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

func writeHeader(f *excelize.File, sheet string, columns []importColumn) error {
	labels := make([]interface{}, len(columns))
	for i, col := range columns {
		labels[i] = col.label
	}
	return writeRow(f, sheet, 1, labels)
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cellName, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cellName, &values)
}

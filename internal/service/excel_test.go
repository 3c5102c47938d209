package service_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/KarlovS28/uchettest/internal/database/models"
	"github.com/KarlovS28/uchettest/internal/service"
	"github.com/KarlovS28/uchettest/internal/storage"
	"github.com/KarlovS28/uchettest/internal/testutils"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newExcelFixture(t *testing.T) (*service.ExcelService, storage.Storage, uint, uint) {
	t.Helper()
	store := storage.NewMemory()
	org := testutils.NewOrganizationFactory().Create()
	require.NoError(t, store.CreateOrganization(org))
	department := testutils.NewDepartmentFactory().Create(org.ID)
	require.NoError(t, store.CreateDepartment(department))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return service.NewExcelService(store, log), store, org.ID, department.ID
}

// workbook builds an in-memory xlsx with a header row and data rows.
func workbook(t *testing.T, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &rows[i]))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())
	return bytes.NewReader(buf.Bytes())
}

func TestImportEmployeesRussianHeaders(t *testing.T) {
	svc, store, orgID, departmentID := newExcelFixture(t)

	r := workbook(t, [][]interface{}{
		{"ФИО", "Должность", "ID отдела", "Дата приема", "Дата рождения"},
		{"Иванов Иван Иванович", "Инженер", strconv.Itoa(int(departmentID)), "01.03.2023", "1985-06-15"},
		{"Петрова Мария Сергеевна", "Бухгалтер", strconv.Itoa(int(departmentID)), "2024-01-10", "20.02.1990"},
	})

	result, err := svc.ImportEmployees(orgID, r)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 0, result.Failed)
	assert.Empty(t, result.Errors)

	employees, err := store.GetEmployees(orgID, nil)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, "Иванов Иван Иванович", employees[0].FullName)
	assert.Equal(t, 2023, employees[0].HireDate.Year())
	assert.Equal(t, 1990, employees[1].BirthDate.Year())
}

func TestImportEmployeesEnglishHeadersAndFallbacks(t *testing.T) {
	svc, store, orgID, departmentID := newExcelFixture(t)

	r := workbook(t, [][]interface{}{
		{"fullName", "position", "departmentId", "hireDate", "birthDate", "materialLiabilityType"},
		{"Смирнов Олег", "Кладовщик", strconv.Itoa(int(departmentID)), "not-a-date", "", "individual"},
	})

	result, err := svc.ImportEmployees(orgID, r)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)

	employees, err := store.GetEmployees(orgID, nil)
	require.NoError(t, err)
	require.Len(t, employees, 1)
	// Malformed dates fall back instead of failing the row
	assert.False(t, employees[0].HireDate.IsZero())
	assert.Equal(t, 1980, employees[0].BirthDate.Year())
	assert.Equal(t, models.LiabilityIndividual, employees[0].MaterialLiabilityType)
}

func TestImportEmployeesRowErrors(t *testing.T) {
	svc, _, orgID, departmentID := newExcelFixture(t)

	r := workbook(t, [][]interface{}{
		{"ФИО", "Должность", "ID отдела"},
		{"", "Инженер", strconv.Itoa(int(departmentID))},
	})

	result, err := svc.ImportEmployees(orgID, r)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Success)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Строка 1")

	t.Run("unknown department fails the row only", func(t *testing.T) {
		r := workbook(t, [][]interface{}{
			{"ФИО", "Должность", "ID отдела"},
			{"Первый Годный", "Инженер", strconv.Itoa(int(departmentID))},
			{"Второй Негодный", "Инженер", "999"},
		})
		result, err := svc.ImportEmployees(orgID, r)
		require.NoError(t, err)
		assert.Equal(t, 1, result.Success)
		assert.Equal(t, 1, result.Failed)
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0], "Строка 2")
	})
}

func TestImportInventory(t *testing.T) {
	svc, store, orgID, departmentID := newExcelFixture(t)

	employee := testutils.NewEmployeeFactory().Create(orgID, departmentID)
	require.NoError(t, store.CreateEmployee(employee))

	r := workbook(t, [][]interface{}{
		{"Наименование", "Инвентарный номер", "Стоимость", "ID сотрудника"},
		{"Ноутбук", "INV-001", "7500000", strconv.Itoa(int(employee.ID))},
		{"Монитор", "INV-002", "дорого", strconv.Itoa(int(employee.ID))},
		{"Стол", "INV-001", "1000", strconv.Itoa(int(employee.ID))},
		{"Ничей принтер", "INV-003", "500", ""},
	})

	result, err := svc.ImportInventory(orgID, r)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Success)
	assert.Equal(t, 2, result.Failed)

	items, err := store.GetInventoryItemsByEmployee(orgID, employee.ID)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, 7500000, items[0].Cost)
	// Employee reference fills in the department
	assert.Equal(t, departmentID, items[0].DepartmentID)
	// Malformed cost falls back to zero
	assert.Equal(t, 0, items[1].Cost)
}

func TestExportImportRoundTrip(t *testing.T) {
	svc, store, orgID, departmentID := newExcelFixture(t)

	employee := testutils.NewEmployeeFactory().Create(orgID, departmentID)
	require.NoError(t, store.CreateEmployee(employee))

	f, err := svc.ExportEmployees(orgID, nil)
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	require.NoError(t, f.Close())

	// Re-importing the exported file yields an equivalent second record
	result, err := svc.ImportEmployees(orgID, bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 1, result.Success)
	assert.Equal(t, 0, result.Failed)

	employees, err := store.GetEmployees(orgID, nil)
	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Equal(t, employees[0].FullName, employees[1].FullName)
	assert.Equal(t, employees[0].Position, employees[1].Position)
	assert.True(t, employees[0].HireDate.Equal(employees[1].HireDate))
	assert.Equal(t, employees[0].MaterialLiabilityType, employees[1].MaterialLiabilityType)
}

func TestExportInventoryRequiresExactlyOneFilter(t *testing.T) {
	svc, _, orgID, _ := newExcelFixture(t)

	_, err := svc.ExportInventory(orgID, nil, nil)
	assert.Error(t, err)
}

package handlers

import (
	"fmt"
	"net/http"

	"github.com/KarlovS28/uchettest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExcelHandler handles bulk xlsx import and export
type ExcelHandler struct {
	service *service.ExcelService
	log     *logrus.Logger
}

// NewExcelHandler creates a new excel handler
func NewExcelHandler(service *service.ExcelService, log *logrus.Logger) *ExcelHandler {
	return &ExcelHandler{service: service, log: log}
}

// ImportEmployees handles POST /api/import/employees
func (h *ExcelHandler) ImportEmployees(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	result, err := h.service.ImportEmployees(orgID, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ImportInventory handles POST /api/import/inventory
func (h *ExcelHandler) ImportInventory(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		badRequest(c, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		respondError(c, err)
		return
	}
	defer f.Close()

	result, err := h.service.ImportInventory(orgID, f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// ExportEmployees handles GET /api/export/employees with an optional
// ?departmentId= filter.
func (h *ExcelHandler) ExportEmployees(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	departmentID, ok := uintQuery(c, "departmentId")
	if !ok {
		return
	}

	f, err := h.service.ExportEmployees(orgID, departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendWorkbook(c, f, "employees.xlsx")
}

// ExportInventory handles GET /api/export/inventory with exactly one of
// ?employeeId= and ?departmentId=.
func (h *ExcelHandler) ExportInventory(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	employeeID, ok := uintQuery(c, "employeeId")
	if !ok {
		return
	}
	departmentID, ok := uintQuery(c, "departmentId")
	if !ok {
		return
	}

	f, err := h.service.ExportInventory(orgID, employeeID, departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.sendWorkbook(c, f, "inventory.xlsx")
}

func (h *ExcelHandler) sendWorkbook(c *gin.Context, f *excelize.File, filename string) {
	defer f.Close()
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		h.log.WithError(err).Error("failed to stream workbook")
	}
}

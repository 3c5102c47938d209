package handlers

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// EmployeeHandler handles HTTP requests for employee operations
type EmployeeHandler struct {
	service *service.EmployeeService
	log     *logrus.Logger
}

// NewEmployeeHandler creates a new employee handler
func NewEmployeeHandler(service *service.EmployeeService, log *logrus.Logger) *EmployeeHandler {
	return &EmployeeHandler{service: service, log: log}
}

// List handles GET /api/employees with an optional ?departmentId= filter.
func (h *EmployeeHandler) List(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	departmentID, ok := uintQuery(c, "departmentId")
	if !ok {
		return
	}

	employees, err := h.service.List(orgID, departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

// Get handles GET /api/employees/:id
func (h *EmployeeHandler) Get(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	employee, err := h.service.Get(orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Create handles POST /api/employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	employee, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// Update handles PUT /api/employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	employee, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Dismiss handles POST /api/employees/:id/dismiss
func (h *EmployeeHandler) Dismiss(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req service.DismissEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	employee, err := h.service.Dismiss(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

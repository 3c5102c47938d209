package handlers

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/auth"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// currentOrganization returns the organization of the authenticated user.
func currentOrganization(c *gin.Context) (uint, bool) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return 0, false
	}
	return user.OrganizationID, true
}

// DepartmentHandler handles HTTP requests for department operations
type DepartmentHandler struct {
	service *service.DepartmentService
	log     *logrus.Logger
}

// NewDepartmentHandler creates a new department handler
func NewDepartmentHandler(service *service.DepartmentService, log *logrus.Logger) *DepartmentHandler {
	return &DepartmentHandler{service: service, log: log}
}

// List handles GET /api/departments. With ?stats=true it returns per-department
// employee and inventory counts instead of the plain list.
func (h *DepartmentHandler) List(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	if c.Query("stats") == "true" {
		stats, err := h.service.Stats(orgID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, stats)
		return
	}

	departments, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, departments)
}

// Get handles GET /api/departments/:id
func (h *DepartmentHandler) Get(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	department, err := h.service.Get(orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// Create handles POST /api/departments
func (h *DepartmentHandler) Create(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	var req service.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	department, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, department)
}

// Update handles PUT /api/departments/:id
func (h *DepartmentHandler) Update(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req service.DepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	department, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, department)
}

// Delete handles DELETE /api/departments/:id
func (h *DepartmentHandler) Delete(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(orgID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "department deleted"})
}

package handlers

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// InventoryHandler handles HTTP requests for inventory operations
type InventoryHandler struct {
	service *service.InventoryService
	log     *logrus.Logger
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(service *service.InventoryService, log *logrus.Logger) *InventoryHandler {
	return &InventoryHandler{service: service, log: log}
}

// List handles GET /api/inventory. Exactly one of ?employeeId= and
// ?departmentId= must be given.
func (h *InventoryHandler) List(c *gin.Context) {
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

	items, err := h.service.List(orgID, employeeID, departmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// Get handles GET /api/inventory/:id
func (h *InventoryHandler) Get(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Get(orgID, id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Create handles POST /api/inventory
func (h *InventoryHandler) Create(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	var req service.CreateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// Update handles PUT /api/inventory/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateInventoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/inventory/:id
func (h *InventoryHandler) Delete(c *gin.Context) {
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
	c.JSON(http.StatusOK, gin.H{"message": "inventory item deleted"})
}

package handlers

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UserHandler handles HTTP requests for account management
type UserHandler struct {
	service *service.UserService
	log     *logrus.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{service: service, log: log}
}

// List handles GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	users, err := h.service.List(orgID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// Create handles POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Create(orgID, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update handles PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Update(orgID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

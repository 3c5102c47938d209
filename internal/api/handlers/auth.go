package handlers

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/auth"
	apperrors "github.com/KarlovS28/uchettest/internal/errors"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles the bootstrap and session endpoints
type AuthHandler struct {
	service *auth.Service
	log     *logrus.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service *auth.Service, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

type setupRequest struct {
	OrganizationName string `json:"organizationName" binding:"required"`
	AdminFullName    string `json:"adminFullName" binding:"required"`
	AdminPosition    string `json:"adminPosition" binding:"required"`
	AdminUsername    string `json:"adminUsername" binding:"required,min=3"`
	AdminPassword    string `json:"adminPassword" binding:"required,min=6"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Setup handles POST /api/setup. It runs once on an empty system and signs the
// created administrator in.
func (h *AuthHandler) Setup(c *gin.Context) {
	var req setupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	result, err := h.service.Setup(auth.SetupInput{
		OrganizationName: req.OrganizationName,
		FullName:         req.AdminFullName,
		Position:         req.AdminPosition,
		Username:         req.AdminUsername,
		Password:         req.AdminPassword,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if err := auth.SaveSessionUser(sessions.Default(c), result.User.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// SystemStatus handles GET /api/system-status.
func (h *AuthHandler) SystemStatus(c *gin.Context) {
	initialized, err := h.service.IsInitialized()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isSetup": initialized})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body: "+err.Error())
		return
	}

	user, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	if err := auth.SaveSessionUser(sessions.Default(c), user.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := auth.ClearSession(sessions.Default(c)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// CurrentUser handles GET /api/user.
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	user, ok := auth.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrNotAuthenticated.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps domain errors onto HTTP statuses. Anything outside the
// taxonomy becomes a generic 500; the detail stays in the server log only.
func respondError(c *gin.Context, err error) {
	switch {
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case apperrors.IsAlreadyExists(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case apperrors.IsAuthentication(err):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case apperrors.IsAuthorization(err):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSystemAlreadySetUp),
		errors.Is(err, apperrors.ErrEmployeeDismissed),
		errors.Is(err, apperrors.ErrAlreadyDismissed),
		errors.Is(err, apperrors.ErrDepartmentInUse):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInventoryFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logger.WithContext(c).WithField("path", c.Request.URL.Path).WithError(err).Error("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// badRequest reports a malformed request body or parameter.
func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": message})
}

// idParam parses a numeric path parameter.
func idParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}

// uintQuery parses an optional numeric query parameter.
func uintQuery(c *gin.Context, name string) (*uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		badRequest(c, "invalid "+name)
		return nil, false
	}
	id := uint(value)
	return &id, true
}

package handlers

import (
	"net/http"

	apperrors "github.com/KarlovS28/uchettest/internal/errors"
	"github.com/KarlovS28/uchettest/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// OrganizationHandler handles HTTP requests for organization lookups
type OrganizationHandler struct {
	store storage.Storage
	log   *logrus.Logger
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(store storage.Storage, log *logrus.Logger) *OrganizationHandler {
	return &OrganizationHandler{store: store, log: log}
}

// Get handles GET /api/organizations/:id. Users may only read their own
// organization.
func (h *OrganizationHandler) Get(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if id != orgID {
		respondError(c, apperrors.ErrOrganizationNotFound)
		return
	}

	organization, err := h.store.GetOrganization(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, organization)
}

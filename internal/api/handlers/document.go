package handlers

import (
	"net/http"

	"github.com/KarlovS28/uchettest/internal/files"
	"github.com/KarlovS28/uchettest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// DocumentHandler handles HTTP requests for employee document attachments
type DocumentHandler struct {
	service *service.DocumentService
	store   *files.Store
	log     *logrus.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(service *service.DocumentService, store *files.Store, log *logrus.Logger) *DocumentHandler {
	return &DocumentHandler{service: service, store: store, log: log}
}

// List handles GET /api/employees/:id/documents
func (h *DocumentHandler) List(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "id")
	if !ok {
		return
	}

	documents, err := h.service.List(orgID, employeeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, documents)
}

// Delete handles DELETE /api/employees/documents/:id. The stored file is
// removed best-effort after the row.
func (h *DocumentHandler) Delete(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	documentID, ok := idParam(c, "id")
	if !ok {
		return
	}

	document, err := h.service.Delete(orgID, documentID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.store.Remove(document.Path); err != nil {
		h.log.WithError(err).WithField("path", document.Path).Warn("failed to remove stored file")
	}
	c.JSON(http.StatusOK, gin.H{"message": "document deleted"})
}

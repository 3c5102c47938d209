package handlers

import (
	"errors"
	"net/http"

	"github.com/KarlovS28/uchettest/internal/files"
	"github.com/KarlovS28/uchettest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// UploadHandler handles photo and document uploads for employees
type UploadHandler struct {
	employees *service.EmployeeService
	documents *service.DocumentService
	store     *files.Store
	log       *logrus.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(employees *service.EmployeeService, documents *service.DocumentService, store *files.Store, log *logrus.Logger) *UploadHandler {
	return &UploadHandler{employees: employees, documents: documents, store: store, log: log}
}

// Photo handles POST /api/upload/photo/:employeeId. The uploaded image replaces
// the employee's photo reference.
func (h *UploadHandler) Photo(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeId")
	if !ok {
		return
	}

	fh, err := c.FormFile("photo")
	if err != nil {
		badRequest(c, "photo is required")
		return
	}

	// Reject unknown employees before touching the disk
	if _, err := h.employees.Get(orgID, employeeID); err != nil {
		respondError(c, err)
		return
	}

	path, err := h.store.SavePhoto(fh)
	if err != nil {
		h.respondUploadError(c, err)
		return
	}

	employee, err := h.employees.SetPhoto(orgID, employeeID, path)
	if err != nil {
		_ = h.store.Remove(path)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

// Document handles POST /api/upload/document/:employeeId. The upload becomes a
// document attachment on the employee.
func (h *UploadHandler) Document(c *gin.Context) {
	orgID, ok := currentOrganization(c)
	if !ok {
		return
	}
	employeeID, ok := idParam(c, "employeeId")
	if !ok {
		return
	}

	fh, err := c.FormFile("document")
	if err != nil {
		badRequest(c, "document is required")
		return
	}

	if _, err := h.employees.Get(orgID, employeeID); err != nil {
		respondError(c, err)
		return
	}

	path, err := h.store.SaveDocument(fh)
	if err != nil {
		h.respondUploadError(c, err)
		return
	}

	document, err := h.documents.Attach(orgID, employeeID, fh.Filename, path)
	if err != nil {
		_ = h.store.Remove(path)
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, document)
}

func (h *UploadHandler) respondUploadError(c *gin.Context, err error) {
	if errors.Is(err, files.ErrFileTooLarge) || errors.Is(err, files.ErrUnsupportedType) {
		badRequest(c, err.Error())
		return
	}
	respondError(c, err)
}

package service

import (
	"fmt"

	"github.com/KarlovS28/uchettest/internal/database/models"
	"github.com/KarlovS28/uchettest/internal/storage"
)

// DocumentService manages document attachments on employees. Access is always
// scoped through the owning employee's organization.
type DocumentService struct {
	store storage.Storage
}

// NewDocumentService creates a new DocumentService
func NewDocumentService(store storage.Storage) *DocumentService {
	return &DocumentService{store: store}
}

// Attach records an uploaded document on an employee.
func (s *DocumentService) Attach(organizationID, employeeID uint, filename, path string) (*models.EmployeeDocument, error) {
	if _, err := s.store.GetEmployee(organizationID, employeeID); err != nil {
		return nil, err
	}

	document := &models.EmployeeDocument{
		EmployeeID: employeeID,
		Filename:   filename,
		Path:       path,
	}
	if err := s.store.AddEmployeeDocument(document); err != nil {
		return nil, fmt.Errorf("failed to attach document: %w", err)
	}
	return document, nil
}

// List returns an employee's documents.
func (s *DocumentService) List(organizationID, employeeID uint) ([]models.EmployeeDocument, error) {
	if _, err := s.store.GetEmployee(organizationID, employeeID); err != nil {
		return nil, err
	}
	return s.store.GetEmployeeDocuments(employeeID)
}

// Delete removes a document row and returns it so the caller can remove the
// stored file.
func (s *DocumentService) Delete(organizationID, documentID uint) (*models.EmployeeDocument, error) {
	document, err := s.store.GetEmployeeDocument(documentID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.GetEmployee(organizationID, document.EmployeeID); err != nil {
		return nil, err
	}
	if err := s.store.DeleteEmployeeDocument(documentID); err != nil {
		return nil, err
	}
	return document, nil
}

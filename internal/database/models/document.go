package models

import "time"

// EmployeeDocument is an uploaded file attached to an employee. Filename keeps
// the name the client sent; Path points at the stored copy under the upload
// directory. Documents are independently deletable, many per employee.
type EmployeeDocument struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	EmployeeID uint      `json:"employeeId" gorm:"not null;index"`
	Filename   string    `json:"filename" gorm:"not null;size:500"`
	Path       string    `json:"path" gorm:"not null;size:500"`
	UploadDate time.Time `json:"uploadDate" gorm:"autoCreateTime"`
}

// TableName returns the table name for EmployeeDocument
func (EmployeeDocument) TableName() string {
	return "employee_documents"
}

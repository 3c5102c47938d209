package models

import "time"

// MaterialLiabilityType classifies how an employee answers for assigned assets.
type MaterialLiabilityType string

const (
	LiabilityIndividual MaterialLiabilityType = "individual"
	LiabilityCollective MaterialLiabilityType = "collective"
	LiabilityNone       MaterialLiabilityType = "none"
)

// IsValid reports whether t is one of the known liability types.
func (t MaterialLiabilityType) IsValid() bool {
	switch t {
	case LiabilityIndividual, LiabilityCollective, LiabilityNone:
		return true
	}
	return false
}

// Employee is a personnel record. Employees are created active and are never
// physically deleted; the only lifecycle transition is the one-way dismissal,
// which stamps DismissalDate and DismissalOrderNumber.
type Employee struct {
	ID                        uint                  `json:"id" gorm:"primaryKey"`
	FullName                  string                `json:"fullName" gorm:"not null;size:200" validate:"required,max=200"`
	DepartmentID              uint                  `json:"departmentId" gorm:"not null;index"`
	Position                  string                `json:"position" gorm:"not null;size:200" validate:"required,max=200"`
	HireDate                  time.Time             `json:"hireDate" gorm:"not null"`
	HireOrderNumber           string                `json:"hireOrderNumber" gorm:"not null;size:100"`
	Passport                  string                `json:"passport" gorm:"not null;size:100"`
	BirthDate                 time.Time             `json:"birthDate" gorm:"not null"`
	Address                   string                `json:"address" gorm:"not null;size:500"`
	Phone                     string                `json:"phone" gorm:"not null;size:50"`
	Photo                     string                `json:"photo,omitempty" gorm:"size:500"`
	MaterialLiabilityType     MaterialLiabilityType `json:"materialLiabilityType" gorm:"type:varchar(20);not null;default:'none'"`
	MaterialLiabilityDocument string                `json:"materialLiabilityDocument,omitempty" gorm:"size:500"`
	Dismissed                 bool                  `json:"dismissed" gorm:"not null;default:false"`
	DismissalDate             *time.Time            `json:"dismissalDate,omitempty"`
	DismissalOrderNumber      string                `json:"dismissalOrderNumber,omitempty" gorm:"size:100"`
	OrganizationID            uint                  `json:"organizationId" gorm:"not null;index"`
	CreatedAt                 time.Time             `json:"createdAt"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

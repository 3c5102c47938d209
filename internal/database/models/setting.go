package models

import "time"

// Keys used in the settings table.
const (
	SettingSystemInitialized = "system_initialized"
)

// Setting is a named key/value row. The system bootstrap state lives here as
// an explicit sentinel instead of being inferred from autoincrement ids.
type Setting struct {
	Key       string    `json:"key" gorm:"primaryKey;size:100"`
	Value     string    `json:"value" gorm:"not null;size:500"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the table name for Setting
func (Setting) TableName() string {
	return "settings"
}

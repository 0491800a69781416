package models

import "time"

// SystemSetup is a singleton flag record. Once IsSetupComplete is true the
// bootstrap endpoint is permanently disabled; no reset path is exposed.
type SystemSetup struct {
	ID              uint      `json:"-" gorm:"primaryKey"`
	IsSetupComplete bool      `json:"is_setup_complete"`
	CreatedAt       time.Time `json:"created_at"`
}

package models

import "time"

// CoachInfo is a singleton record; updates replace the stored row.
type CoachInfo struct {
	ID           uint      `json:"-" gorm:"primaryKey"`
	Name         string    `json:"name"`
	Bio          string    `json:"bio"`
	Achievements string    `json:"achievements"`
	ImageURL     *string   `json:"image_url"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package models

import "time"

// HomepageContent is keyed by section name; updates upsert by section.
type HomepageContent struct {
	Section   string    `json:"section" gorm:"primaryKey"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updated_at"`
}

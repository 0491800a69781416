package models

import "time"

type Announcement struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	ImageURL  *string   `json:"image_url"`
	Archived  bool      `json:"archived" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}

package models

import "time"

type LeadershipMember struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Position    string    `json:"position"`
	PhotoURL    *string   `json:"photo_url"`
	OrderNumber int       `json:"order_number"`
	Archived    bool      `json:"archived" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

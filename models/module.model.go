package models

import "time"

type Module struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	CourseID    string    `json:"course_id" gorm:"index;not null"`
	Title       string    `json:"title"`
	Duration    *string   `json:"duration"`
	VideoLink   *string   `json:"video_link"`
	PdfLink     *string   `json:"pdf_link"`
	OrderNumber int       `json:"order_number"`
	Archived    bool      `json:"archived" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

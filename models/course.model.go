package models

import "time"

// Course types. Mentorship courses require the caller's mentorship entitlement
// before their modules can be listed.
const (
	CourseTypeBeginner   = "beginner"
	CourseTypeAdvanced   = "advanced"
	CourseTypeMentorship = "mentorship"
)

type Course struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Outline     string    `json:"outline"`
	CourseType  string    `json:"course_type"`
	OrderNumber int       `json:"order_number"`
	Archived    bool      `json:"archived" gorm:"default:false"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import "time"

// Role gates administrative capability, Status gates member-only content, and
// MentorshipAccess is a separate entitlement on top of both.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"

	StatusPending  = "pending"
	StatusApproved = "approved"
)

type User struct {
	ID               string     `json:"id" gorm:"primaryKey"`
	FullName         string     `json:"full_name"`
	Email            string     `json:"email" gorm:"unique;not null"`
	PasswordHash     string     `json:"-" gorm:"not null"`
	Role             string     `json:"role" gorm:"default:'student'"`
	Status           string     `json:"status" gorm:"default:'pending'"`
	MentorshipAccess bool       `json:"mentorship_access" gorm:"default:false"`
	Batch            *string    `json:"batch"`
	Reason           *string    `json:"reason,omitempty"`
	LastLogin        *time.Time `json:"last_login"`
	Archived         bool       `json:"-" gorm:"default:false"`
	CreatedAt        time.Time  `json:"created_at"`
}

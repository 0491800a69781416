package models

import "time"

// Progress records completion per (user, module). The unique composite index
// backs the upsert guarantee: at most one record per pair.
type Progress struct {
	ID          string     `json:"id" gorm:"primaryKey"`
	UserID      string     `json:"user_id" gorm:"uniqueIndex:idx_user_module;not null"`
	ModuleID    string     `json:"module_id" gorm:"uniqueIndex:idx_user_module;not null"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
}

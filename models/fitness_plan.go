package models

import (
	"time"
)

// FitnessPlan is either a system preset (UserID nil, read-only template) or
// a user-owned plan created from scratch or copied from a preset.
type FitnessPlan struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      *uint     `gorm:"index" json:"user_id,omitempty"`
	PlanName    string    `gorm:"size:100;not null" json:"plan_name"`
	Description string    `gorm:"type:text" json:"description"`
	Content     string    `gorm:"type:text" json:"content"` // JSON plan details
	IsPreset    bool      `gorm:"default:false" json:"is_preset"`
	CreatedAt   time.Time `json:"created_at"`
}

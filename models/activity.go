package models

import (
	"time"
)

// Activity is one logged workout. Rows are immutable after creation and
// owned exclusively by their user.
type Activity struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"user_id"`
	User            User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	ActivityType    string    `gorm:"size:50;not null" json:"activity_type"`
	DurationMinutes int       `gorm:"not null" json:"duration_minutes"`
	CaloriesBurned  int       `gorm:"not null" json:"calories_burned"`
	DistanceKm      float64   `json:"distance_km,omitempty"`
	ActivityDate    time.Time `gorm:"index" json:"activity_date"`
}

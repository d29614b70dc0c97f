package models

import (
	"time"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;size:120;not null" json:"email"`
	PasswordHash string    `gorm:"not null" json:"-"`
	Height       float64   `json:"height"` // cm
	Weight       float64   `json:"weight"` // kg
	Age          int       `json:"age"`
	FitnessGoal  string    `gorm:"size:50" json:"fitness_goal"` // weight_loss | muscle_gain | maintenance
	Location     string    `gorm:"size:100" json:"location"`    // for weather-based recommendations
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

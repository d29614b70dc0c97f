package models

import (
	"time"
)

// Achievement rule types.
const (
	RuleFirstActivity = "first_activity"
	RuleStreak        = "streak"
	RuleTotalCalories = "total_calories"
)

// Achievement is a badge definition, seeded once at startup.
type Achievement struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"uniqueIndex;size:100;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"size:200" json:"icon"`
	RuleType    string `gorm:"size:50" json:"rule_type"`
	Threshold   int    `json:"threshold"`
}

// UserAchievement records a granted badge. The composite unique index makes
// the grant atomic: concurrent evaluations for the same user can never
// produce two rows for one achievement.
type UserAchievement struct {
	ID            uint        `gorm:"primaryKey" json:"id"`
	UserID        uint        `gorm:"not null;uniqueIndex:idx_user_achievement" json:"user_id"`
	AchievementID uint        `gorm:"not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	Achievement   Achievement `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	EarnedDate    time.Time   `json:"earned_date"`
}

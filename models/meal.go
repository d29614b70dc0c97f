package models

import (
	"time"
)

type Meal struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	User     User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Name     string    `gorm:"size:100;not null" json:"name"`
	Calories int       `json:"calories"`
	Protein  float64   `json:"protein"` // grams
	Carbs    float64   `json:"carbs"`   // grams
	Fat      float64   `json:"fat"`     // grams
	MealType string    `gorm:"size:20" json:"meal_type"` // breakfast/lunch/dinner/snack/other
	MealTime time.Time `gorm:"index" json:"meal_time"`
}

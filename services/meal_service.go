package services

import (
	"time"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"gorm.io/gorm"
)

type MealService struct {
	db *gorm.DB
}

func NewMealService(db *gorm.DB) *MealService {
	return &MealService{db: db}
}

type MealInput struct {
	UserID   uint
	Name     string
	Calories int
	Protein  float64
	Carbs    float64
	Fat      float64
	MealType string
	MealTime time.Time
}

func (s *MealService) LogMeal(input MealInput) (*models.Meal, error) {
	meal := models.Meal{
		UserID:   input.UserID,
		Name:     input.Name,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		MealType: input.MealType,
		MealTime: input.MealTime,
	}
	if meal.MealType == "" {
		meal.MealType = "other"
	}
	if meal.MealTime.IsZero() {
		meal.MealTime = time.Now().UTC()
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&meal).Error
	})
	if err != nil {
		return nil, err
	}
	return &meal, nil
}

func (s *MealService) UserMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	if err := s.db.Where("user_id = ?", userID).Order("meal_time ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

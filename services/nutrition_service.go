package services

import (
	"time"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"gorm.io/gorm"
)

// Daily thresholds the tip rules compare against.
const (
	weightLossCalorieCeiling = 1800 // kcal
	muscleGainProteinFloor   = 120  // grams
	minMealsPerDay           = 3
)

type NutritionService struct {
	db *gorm.DB
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db}
}

// DailyTips builds advisory strings from the user's stated goal and today's
// meals (today in UTC). Pure read-and-compute, nothing is persisted.
func (s *NutritionService) DailyTips(userID uint) ([]string, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrNotFound
	}

	dayStart := time.Now().UTC().Truncate(24 * time.Hour)
	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND meal_time >= ? AND meal_time < ?", userID, dayStart, dayStart.Add(24*time.Hour)).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	totalCalories := 0
	totalProtein := 0.0
	for _, m := range meals {
		totalCalories += m.Calories
		totalProtein += m.Protein
	}

	tips := []string{}

	if user.FitnessGoal == "weight_loss" && totalCalories > weightLossCalorieCeiling {
		tips = append(tips, "You have exceeded today's weight-loss calorie target; consider adding some exercise")
	}
	if user.FitnessGoal == "muscle_gain" && totalProtein < muscleGainProteinFloor {
		tips = append(tips, "Protein intake is low for muscle gain; add a high-protein food")
	}

	if len(meals) == 0 {
		tips = append(tips, "No meals logged today yet")
	} else if len(meals) < minMealsPerDay {
		tips = append(tips, "Fewer than three meals logged; try to eat at regular intervals")
	}

	return tips, nil
}

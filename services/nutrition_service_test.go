package services

import (
	"testing"
	"time"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func logTestMeal(t *testing.T, db *gorm.DB, userID uint, calories int, protein float64, when time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.Meal{
		UserID:   userID,
		Name:     "meal",
		Calories: calories,
		Protein:  protein,
		MealType: "other",
		MealTime: when,
	}).Error)
}

func TestDailyTipsWeightLossCalorieCeiling(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "heidi")
	require.NoError(t, db.Model(user).Update("fitness_goal", "weight_loss").Error)

	now := time.Now().UTC()
	logTestMeal(t, db, user.ID, 900, 30, now)
	logTestMeal(t, db, user.ID, 600, 20, now)
	logTestMeal(t, db, user.ID, 400, 25, now)

	tips, err := svc.DailyTips(user.ID)
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "weight-loss calorie target")
}

func TestDailyTipsMuscleGainProteinFloor(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "ivan")
	require.NoError(t, db.Model(user).Update("fitness_goal", "muscle_gain").Error)

	now := time.Now().UTC()
	logTestMeal(t, db, user.ID, 500, 30, now)
	logTestMeal(t, db, user.ID, 500, 30, now)
	logTestMeal(t, db, user.ID, 500, 30, now)

	tips, err := svc.DailyTips(user.ID)
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "Protein intake is low")
}

func TestDailyTipsNoMealsLogged(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "judy")

	tips, err := svc.DailyTips(user.ID)
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "No meals logged")
}

func TestDailyTipsFewMealsReminderExcludesNoMeals(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "kate")

	now := time.Now().UTC()
	logTestMeal(t, db, user.ID, 400, 20, now)
	logTestMeal(t, db, user.ID, 400, 20, now)

	tips, err := svc.DailyTips(user.ID)
	require.NoError(t, err)
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0], "Fewer than three meals")
}

func TestDailyTipsIgnoreOtherDaysAndUsers(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)
	user := createTestUser(t, db, "liam")
	other := createTestUser(t, db, "mallory")
	require.NoError(t, db.Model(user).Update("fitness_goal", "weight_loss").Error)

	yesterday := time.Now().UTC().Add(-36 * time.Hour)
	logTestMeal(t, db, user.ID, 5000, 10, yesterday)     // yesterday, huge
	logTestMeal(t, db, other.ID, 5000, 10, time.Now().UTC()) // someone else

	tips, err := svc.DailyTips(user.ID)
	require.NoError(t, err)
	require.Len(t, tips, 1, "only the no-meals reminder should fire")
	assert.Contains(t, tips[0], "No meals logged")
}

func TestDailyTipsUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionService(db)

	_, err := svc.DailyTips(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

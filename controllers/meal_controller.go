package controllers

import (
	"net/http"
	"time"

	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	meals     *services.MealService
	nutrition *services.NutritionService
}

func NewMealController(meals *services.MealService, nutrition *services.NutritionService) *MealController {
	return &MealController{meals: meals, nutrition: nutrition}
}

type MealInput struct {
	UserID   uint       `json:"user_id" binding:"required"`
	Name     string     `json:"name" binding:"required"`
	Calories *int       `json:"calories" binding:"required"`
	Protein  float64    `json:"protein"`
	Carbs    float64    `json:"carbs"`
	Fat      float64    `json:"fat"`
	MealType string     `json:"meal_type"`
	MealTime *time.Time `json:"meal_time"`
}

func (ctl *MealController) Create(c *gin.Context) {
	var input MealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.Calories < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "calories must be non-negative"})
		return
	}

	in := services.MealInput{
		UserID:   input.UserID,
		Name:     input.Name,
		Calories: *input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		MealType: input.MealType,
	}
	if input.MealTime != nil {
		in.MealTime = *input.MealTime
	}

	meal, err := ctl.meals.LogMeal(in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "meal recorded",
		"meal_id": meal.ID,
	})
}

func (ctl *MealController) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	meals, err := ctl.meals.UserMeals(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(meals),
		"meals": meals,
	})
}

func (ctl *MealController) NutritionTips(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tips, err := ctl.nutrition.DailyTips(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tips": tips})
}

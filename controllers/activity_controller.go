package controllers

import (
	"net/http"
	"time"

	"github.com/weijinqqq/smart-fitness-backend/middlewares"
	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	activities *services.ActivityService
}

func NewActivityController(activities *services.ActivityService) *ActivityController {
	return &ActivityController{activities: activities}
}

// Pointer fields so a literal zero still counts as present.
type ActivityInput struct {
	ActivityType    string     `json:"activity_type" binding:"required"`
	DurationMinutes *int       `json:"duration_minutes" binding:"required"`
	CaloriesBurned  *int       `json:"calories_burned" binding:"required"`
	DistanceKm      float64    `json:"distance_km"`
	ActivityDate    *time.Time `json:"activity_date"`
}

func (ctl *ActivityController) Create(c *gin.Context) {
	var input ActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if *input.DurationMinutes < 0 || *input.CaloriesBurned < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "duration_minutes and calories_burned must be non-negative"})
		return
	}

	in := services.ActivityInput{
		ActivityType:    input.ActivityType,
		DurationMinutes: *input.DurationMinutes,
		CaloriesBurned:  *input.CaloriesBurned,
		DistanceKm:      input.DistanceKm,
	}
	if input.ActivityDate != nil {
		in.ActivityDate = *input.ActivityDate
	}

	activity, err := ctl.activities.LogActivity(middlewares.CurrentUserID(c), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "activity recorded successfully",
		"activity_id": activity.ID,
	})
}

func (ctl *ActivityController) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	activities, err := ctl.activities.ListActivities(
		id,
		c.Query("type"),
		c.Query("start_date"),
		c.Query("end_date"),
	)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":      len(activities),
		"activities": activities,
	})
}

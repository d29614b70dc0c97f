package controllers

import (
	"net/http"

	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type AchievementController struct {
	achievements *services.AchievementService
}

func NewAchievementController(achievements *services.AchievementService) *AchievementController {
	return &AchievementController{achievements: achievements}
}

func (ctl *AchievementController) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	earned, err := ctl.achievements.ListUserAchievements(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":        len(earned),
		"achievements": earned,
	})
}

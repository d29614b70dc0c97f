package controllers

import (
	"net/http"
	"time"

	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type RecommendationController struct {
	users           *services.UserService
	recommendations *services.RecommendationService
}

func NewRecommendationController(users *services.UserService, recommendations *services.RecommendationService) *RecommendationController {
	return &RecommendationController{users: users, recommendations: recommendations}
}

func (ctl *RecommendationController) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := ctl.users.GetUser(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	if user.Location == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location not set"})
		return
	}

	now := time.Now().UTC()
	recommendation := ctl.recommendations.Recommend(user.Location, now)

	c.JSON(http.StatusOK, gin.H{
		"recommendation": recommendation,
		"timestamp":      now.Format(time.RFC3339),
	})
}

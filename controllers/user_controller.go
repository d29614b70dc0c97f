package controllers

import (
	"net/http"

	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := ctl.users.GetUser(id)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

type ProfileInput struct {
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Height      float64 `json:"height"`
	Weight      float64 `json:"weight"`
	Age         int     `json:"age"`
	FitnessGoal string  `json:"fitness_goal"`
	Location    string  `json:"location"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := ctl.users.UpdateProfile(id, services.ProfileUpdate{
		Username:    input.Username,
		Email:       input.Email,
		Height:      input.Height,
		Weight:      input.Weight,
		Age:         input.Age,
		FitnessGoal: input.FitnessGoal,
		Location:    input.Location,
	})
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, user)
}

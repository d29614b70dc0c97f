package controllers

import (
	"net/http"

	"github.com/weijinqqq/smart-fitness-backend/models"
	"github.com/weijinqqq/smart-fitness-backend/services"

	"github.com/gin-gonic/gin"
)

type PlanController struct {
	plans *services.PlanService
}

func NewPlanController(plans *services.PlanService) *PlanController {
	return &PlanController{plans: plans}
}

func (ctl *PlanController) Presets(c *gin.Context) {
	plans, err := ctl.plans.PresetPlans()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(plans),
		"plans": plans,
	})
}

// PlanInput takes either plan_id (copy an existing plan) or
// plan_name + content (create a custom one).
type PlanInput struct {
	PlanID      *uint  `json:"plan_id"`
	PlanName    string `json:"plan_name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

func (ctl *PlanController) Create(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var input PlanInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.PlanID == nil && (input.PlanName == "" || input.Content == "") {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "either provide plan_id to copy an existing plan, or plan_name and content to create a new one",
		})
		return
	}

	var created *models.FitnessPlan
	var err error
	if input.PlanID != nil {
		created, err = ctl.plans.CopyPlan(id, *input.PlanID)
	} else {
		created, err = ctl.plans.CreatePlan(id, input.PlanName, input.Description, input.Content)
	}
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "fitness plan created",
		"plan_id": created.ID,
	})
}

func (ctl *PlanController) List(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	plans, err := ctl.plans.UserPlans(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(plans),
		"plans": plans,
	})
}

package services

import (
	"errors"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"gorm.io/gorm"
)

type PlanService struct {
	db *gorm.DB
}

func NewPlanService(db *gorm.DB) *PlanService {
	return &PlanService{db: db}
}

// PresetPlans lists the system templates. Unauthenticated read.
func (s *PlanService) PresetPlans() ([]models.FitnessPlan, error) {
	var plans []models.FitnessPlan
	if err := s.db.Where("is_preset = ?", true).Order("id ASC").Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

// CopyPlan creates the user's own non-preset copy of an existing plan.
func (s *PlanService) CopyPlan(userID uint, planID uint) (*models.FitnessPlan, error) {
	var source models.FitnessPlan
	if err := s.db.First(&source, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	plan := models.FitnessPlan{
		UserID:      &userID,
		PlanName:    source.PlanName,
		Description: source.Description,
		Content:     source.Content,
		IsPreset:    false,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// CreatePlan stores a fully custom plan for the user.
func (s *PlanService) CreatePlan(userID uint, name, description, content string) (*models.FitnessPlan, error) {
	plan := models.FitnessPlan{
		UserID:      &userID,
		PlanName:    name,
		Description: description,
		Content:     content,
		IsPreset:    false,
	}
	if err := s.db.Create(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

// UserPlans lists the user's own (non-preset) plans.
func (s *PlanService) UserPlans(userID uint) ([]models.FitnessPlan, error) {
	var plans []models.FitnessPlan
	if err := s.db.
		Where("user_id = ? AND is_preset = ?", userID, false).
		Order("created_at ASC").
		Find(&plans).Error; err != nil {
		return nil, err
	}
	return plans, nil
}

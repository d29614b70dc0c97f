package services

import (
	"fmt"
	"log"
	"time"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"gorm.io/gorm"
)

type ActivityService struct {
	db           *gorm.DB
	achievements *AchievementService
}

func NewActivityService(db *gorm.DB, achievements *AchievementService) *ActivityService {
	return &ActivityService{db: db, achievements: achievements}
}

type ActivityInput struct {
	ActivityType    string
	DurationMinutes int
	CaloriesBurned  int
	DistanceKm      float64
	ActivityDate    time.Time
}

// LogActivity persists the workout and then runs the achievement evaluator.
// The evaluator runs after commit; its failures are logged and never surface
// to the caller or undo the activity.
func (s *ActivityService) LogActivity(userID uint, input ActivityInput) (*models.Activity, error) {
	activity := models.Activity{
		UserID:          userID,
		ActivityType:    input.ActivityType,
		DurationMinutes: input.DurationMinutes,
		CaloriesBurned:  input.CaloriesBurned,
		DistanceKm:      input.DistanceKm,
		ActivityDate:    input.ActivityDate,
	}
	if activity.ActivityDate.IsZero() {
		activity.ActivityDate = time.Now().UTC()
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&activity).Error
	})
	if err != nil {
		return nil, err
	}

	if err := s.achievements.Evaluate(userID); err != nil {
		log.Printf("achievement evaluation for user %d failed: %v", userID, err)
	}
	return &activity, nil
}

// ListActivities returns the user's history, optionally filtered by type and
// an inclusive YYYY-MM-DD date range.
func (s *ActivityService) ListActivities(userID uint, activityType, startDate, endDate string) ([]models.Activity, error) {
	query := s.db.Where("user_id = ?", userID)

	if activityType != "" {
		query = query.Where("activity_type = ?", activityType)
	}
	if startDate != "" {
		start, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return nil, fmt.Errorf("invalid start_date: %w", err)
		}
		query = query.Where("activity_date >= ?", start)
	}
	if endDate != "" {
		end, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return nil, fmt.Errorf("invalid end_date: %w", err)
		}
		// Inclusive: anything before the end of that day.
		query = query.Where("activity_date < ?", end.Add(24*time.Hour))
	}

	var activities []models.Activity
	if err := query.Order("activity_date ASC").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

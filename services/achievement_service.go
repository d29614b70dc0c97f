package services

import (
	"time"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementService struct {
	db       *gorm.DB
	notifier *Notifier
}

func NewAchievementService(db *gorm.DB, notifier *Notifier) *AchievementService {
	return &AchievementService{db: db, notifier: notifier}
}

// Evaluate runs every achievement rule against the user's full activity
// history and grants whatever newly matches. It is called right after an
// activity commits, outside that transaction: a failure here must never
// roll back or fail the activity that triggered it, so callers only log
// the returned error.
func (s *AchievementService) Evaluate(userID uint) error {
	var achievements []models.Achievement
	if err := s.db.Find(&achievements).Error; err != nil {
		return err
	}

	var activities []models.Activity
	if err := s.db.
		Where("user_id = ?", userID).
		Order("activity_date ASC").
		Find(&activities).Error; err != nil {
		return err
	}

	for _, ach := range achievements {
		matched := false
		switch ach.RuleType {
		case models.RuleFirstActivity:
			matched = len(activities) == 1
		case models.RuleStreak:
			matched = hasStreak(activities, ach.Threshold)
		case models.RuleTotalCalories:
			total := 0
			for _, a := range activities {
				total += a.CaloriesBurned
			}
			matched = total >= ach.Threshold
		}
		if !matched {
			continue
		}
		if err := s.grant(userID, ach); err != nil {
			return err
		}
	}
	return nil
}

// grant inserts the award if the user does not hold it yet. The conditional
// insert rides on the (user_id, achievement_id) unique index, so concurrent
// evaluations for the same user cannot produce a duplicate row.
func (s *AchievementService) grant(userID uint, ach models.Achievement) error {
	award := models.UserAchievement{
		UserID:        userID,
		AchievementID: ach.ID,
		EarnedDate:    time.Now().UTC(),
	}
	res := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&award)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 && s.notifier != nil {
		s.notifier.AchievementEarned(userID, ach)
	}
	return nil
}

// hasStreak reports whether some run of at least `days` consecutive calendar
// days (UTC) each contains an activity. Multiple activities on one day count
// once; a gap day breaks the run.
func hasStreak(activities []models.Activity, days int) bool {
	if days <= 0 || len(activities) == 0 {
		return false
	}

	seen := make(map[time.Time]bool, len(activities))
	var dates []time.Time
	for _, a := range activities {
		d := a.ActivityDate.UTC().Truncate(24 * time.Hour)
		if !seen[d] {
			seen[d] = true
			dates = append(dates, d)
		}
	}
	// Activities arrive ordered by date, so dates is already ascending.

	run := 1
	for i := 1; i < len(dates); i++ {
		if dates[i].Sub(dates[i-1]) == 24*time.Hour {
			run++
			if run >= days {
				return true
			}
		} else {
			run = 1
		}
	}
	return run >= days
}

// EarnedAchievement is the list-endpoint projection of an earned badge.
type EarnedAchievement struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	EarnedDate  time.Time `json:"earned_date"`
}

func (s *AchievementService) ListUserAchievements(userID uint) ([]EarnedAchievement, error) {
	var earned []EarnedAchievement
	err := s.db.Model(&models.UserAchievement{}).
		Select("achievements.name, achievements.description, achievements.icon, user_achievements.earned_date").
		Joins("JOIN achievements ON achievements.id = user_achievements.achievement_id").
		Where("user_achievements.user_id = ?", userID).
		Order("user_achievements.earned_date ASC").
		Scan(&earned).Error
	if err != nil {
		return nil, err
	}
	return earned, nil
}

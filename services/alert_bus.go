package services

import (
	"fmt"
	"time"

	"github.com/weijinqqq/smart-fitness-backend/models"

	"gorm.io/gorm"
)

// Notifier fans an event out to the durable alert table and to any connected
// websocket clients. Safe to call from anywhere; delivery failures are
// swallowed so notification can never break the operation that raised it.
type Notifier struct {
	db  *gorm.DB
	hub *RealtimeHub
}

func NewNotifier(db *gorm.DB, hub *RealtimeHub) *Notifier {
	return &Notifier{db: db, hub: hub}
}

func (n *Notifier) AchievementEarned(userID uint, ach models.Achievement) {
	if n.db == nil {
		return
	}
	alert := &models.Alert{
		UserID:    userID,
		Type:      "achievement",
		Message:   fmt.Sprintf("Achievement unlocked: %s (%s)", ach.Name, ach.Description),
		CreatedAt: time.Now().UTC(),
	}
	_ = n.db.Create(alert).Error

	if n.hub != nil {
		n.hub.BroadcastToUser(userID, map[string]any{
			"kind":        "achievement.earned",
			"achievement": ach,
			"alert_id":    alert.ID,
		})
	}
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyMotivationLog marks that a motivation message was generated for a
// user on a given calendar day. At most one row per (user, day).
type DailyMotivationLog struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_motivation_user_date,priority:1;not null" json:"user_id"`
	Date           string    `gorm:"size:10;uniqueIndex:idx_motivation_user_date,priority:2;not null" json:"date"` // YYYY-MM-DD
	NotificationID uuid.UUID `gorm:"type:uuid;not null" json:"notification_id"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

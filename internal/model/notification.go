package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types used by this backend.
const (
	NotificationHealthRecovery      = "HEALTH_RECOVERY"
	NotificationHealthRecoveryReset = "HEALTH_RECOVERY_RESET"
	NotificationMotivation          = "motivation"
)

type Notification struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index;not null" json:"user_id"`
	Title       string     `gorm:"size:150;not null" json:"title"`
	Message     string     `gorm:"type:text" json:"message"`
	Type        string     `gorm:"size:50;not null" json:"type"`
	ReferenceID *uuid.UUID `gorm:"type:uuid" json:"reference_id,omitempty"`
	IsRead      bool       `gorm:"default:false" json:"is_read"`

	// XPReward and ViewedAt back the claimable motivation notifications:
	// claiming marks ViewedAt and awards XPReward exactly once.
	XPReward int        `gorm:"default:0" json:"xp_reward,omitempty"`
	ViewedAt *time.Time `json:"viewed_at,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"created_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

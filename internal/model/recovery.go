package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HealthRecovery is a predefined day-count milestone of physiological
// recovery. The catalog is seeded at startup and read-only at runtime.
type HealthRecovery struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	DaysToAchieve int       `gorm:"not null" json:"days_to_achieve"`
	XPReward      int       `gorm:"not null;default:0" json:"xp_reward"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (r *HealthRecovery) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// UserHealthRecovery records a crossed milestone. At most one row per
// (user_id, recovery_id); all rows for a user are deleted when a new smoking
// event resets the streak.
type UserHealthRecovery struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_user_recovery,priority:1;not null" json:"user_id"`
	RecoveryID uuid.UUID      `gorm:"type:uuid;uniqueIndex:idx_user_recovery,priority:2;not null" json:"recovery_id"`
	Recovery   HealthRecovery `gorm:"foreignKey:RecoveryID" json:"recovery,omitempty"`
	AchievedAt time.Time      `gorm:"not null" json:"achieved_at"`
	IsViewed   bool           `gorm:"default:false" json:"is_viewed"`
}

func (r *UserHealthRecovery) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

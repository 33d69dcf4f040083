package model

import (
	"time"

	"github.com/google/uuid"
)

// XP sources recognised by the ledger.
const (
	XPSourceHealthRecovery = "HEALTH_RECOVERY"
	XPSourceMotivation     = "DAILY_MOTIVATION"
)

// XPLog is one experience award in the ledger. Insert-only.
type XPLog struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;index:idx_xp_user_date,priority:1;not null" json:"user_id"`
	Amount      int        `gorm:"not null" json:"amount"`
	Source      string     `gorm:"size:50;not null" json:"source"`
	ReferenceID *uuid.UUID `gorm:"type:uuid" json:"reference_id,omitempty"`
	CreatedAt   time.Time  `gorm:"index:idx_xp_user_date,priority:2" json:"created_at"`
}

// UserXP is the per-user running total, maintained with an incremental
// upsert alongside each ledger insert.
type UserXP struct {
	UserID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	TotalXP       int       `gorm:"default:0" json:"total_xp"`
	LastUpdatedAt time.Time `gorm:"autoUpdateTime" json:"last_updated_at"`
}

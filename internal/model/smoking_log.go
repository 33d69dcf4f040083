package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SmokingLog is one logged smoking event. Append-only: rows are inserted or
// deleted, never mutated.
type SmokingLog struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	Amount    int       `gorm:"not null;default:1" json:"amount"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *SmokingLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

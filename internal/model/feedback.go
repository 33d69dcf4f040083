package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Feedback is the user's in-app satisfaction answer. One row per user,
// overwritten on resubmission.
type Feedback struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID           uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	IsSatisfied      bool      `gorm:"not null" json:"is_satisfied"`
	Rating           *string   `gorm:"size:20" json:"rating,omitempty"`
	FeedbackText     *string   `gorm:"type:text" json:"feedback_text,omitempty"`
	FeedbackCategory *string   `gorm:"size:50" json:"feedback_category,omitempty"`
	HasReviewedApp   bool      `gorm:"default:false" json:"has_reviewed_app"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

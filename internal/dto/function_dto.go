package dto

import (
	"encoding/json"

	"github.com/google/uuid"
)

type RecalculateStatsRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

type CheckRecoveriesRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
	// Defaults to true when omitted.
	UpdateAchievements *bool `json:"updateAchievements"`
}

// NewAchievement is one milestone crossed during a recovery check.
type NewAchievement struct {
	ID            uuid.UUID `json:"id"`
	RecoveryID    uuid.UUID `json:"recovery_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	XPReward      int       `json:"xp_reward"`
	DaysToAchieve int       `json:"days_to_achieve"`
}

// RecoveryCheckResult summarizes one milestone evaluation pass.
type RecoveryCheckResult struct {
	DaysSmokeFree     int              `json:"days_smoke_free"`
	NewAchievements   []NewAchievement `json:"new_achievements"`
	TotalAchievements int              `json:"total_achievements"`
}

type ClaimMotivationRequest struct {
	NotificationID string `json:"notificationId" binding:"required,uuid"`
}

type GenerateMotivationRequest struct {
	UserID string `json:"userId" binding:"required,uuid"`
}

type StoreFCMTokenRequest struct {
	Token      string          `json:"token" binding:"required"`
	UserID     string          `json:"user_id" binding:"required,uuid"`
	DeviceInfo json.RawMessage `json:"device_info"`
}

type FeedbackRequest struct {
	IsSatisfied      *bool   `json:"is_satisfied" binding:"required"`
	Rating           *string `json:"rating"`
	FeedbackText     *string `json:"feedback_text"`
	FeedbackCategory *string `json:"feedback_category"`
	HasReviewedApp   *bool   `json:"has_reviewed_app"`
}

type DeleteAccountRequest struct {
	Password string `json:"password" binding:"required"`
}

type NotificationFilter struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}

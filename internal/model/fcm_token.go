package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FCMToken is a push-notification token for one device. Tokens are unique
// across users: a device changing owners re-binds its token row.
type FCMToken struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	UserID     uuid.UUID       `gorm:"type:uuid;index;not null" json:"user_id"`
	Token      string          `gorm:"size:255;uniqueIndex;not null" json:"fcm_token"`
	DeviceInfo json.RawMessage `gorm:"type:jsonb" json:"device_info,omitempty"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`
	LastUsedAt time.Time       `json:"last_used_at"`
}

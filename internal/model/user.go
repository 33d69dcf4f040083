package model

import (
	"time"

	"github.com/google/uuid"
)

// User mirrors the auth provider's record. The ID matches the subject of the
// bearer token; the password hash is kept so destructive operations can
// re-verify the password before acting.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"size:255;not null" json:"-"`
	Locale       string    `gorm:"size:10;default:pt_BR" json:"locale"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
}

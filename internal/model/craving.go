package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Outcome is the result of a craving. Old clients wrote a numeric code
// (0 = resisted) while newer ones write a string enum ("RESISTED",
// "SMOKED"), so the type accepts both on the wire and in the database.
// Resisted is the only place the two encodings are reconciled.
type Outcome string

const (
	OutcomeResisted Outcome = "RESISTED"
	OutcomeSmoked   Outcome = "SMOKED"
)

func (o Outcome) Resisted() bool {
	if strings.EqualFold(string(o), string(OutcomeResisted)) {
		return true
	}
	return strings.TrimSpace(string(o)) == "0"
}

func (o *Outcome) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*o = Outcome(s)
		return nil
	}

	var n int64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("outcome must be a string or a number: %s", data)
	}
	*o = Outcome(strconv.FormatInt(n, 10))
	return nil
}

func (o *Outcome) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*o = ""
	case string:
		*o = Outcome(v)
	case []byte:
		*o = Outcome(v)
	case int64:
		*o = Outcome(strconv.FormatInt(v, 10))
	default:
		return fmt.Errorf("unsupported outcome column type %T", value)
	}
	return nil
}

func (o Outcome) Value() (driver.Value, error) {
	return string(o), nil
}

// Craving is one logged craving event. Append-only.
type Craving struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null" json:"user_id"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
	Trigger   *string   `gorm:"size:100" json:"trigger,omitempty"`
	Outcome   Outcome   `gorm:"type:text;not null" json:"outcome"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (c *Craving) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserStats is the derived statistics row, one per user. It is a pure
// function of the user's logs plus the previous longest streak and is fully
// recomputed (not patched) on every recalculation.
type UserStats struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`

	CigarettesAvoided   int        `gorm:"default:0" json:"cigarettes_avoided"`
	MoneySaved          int64      `gorm:"default:0" json:"money_saved"` // minor currency units
	CravingsResisted    int        `gorm:"default:0" json:"cravings_resisted"`
	CurrentStreakDays   int        `gorm:"default:0" json:"current_streak_days"`
	LongestStreakDays   int        `gorm:"default:0" json:"longest_streak_days"`
	LastSmokeDate       *time.Time `json:"last_smoke_date,omitempty"`
	CigarettesSmoked    int        `gorm:"default:0" json:"cigarettes_smoked"`
	SmokingRecordsCount int        `gorm:"default:0" json:"smoking_records_count"`
	TotalSmokeFreeDays  int        `gorm:"default:0" json:"total_smoke_free_days"`

	MinutesGainedToday int `gorm:"default:0" json:"minutes_gained_today"`
	TotalMinutesGained int `gorm:"default:0" json:"total_minutes_gained"`

	// Pricing configuration echoed from onboarding so the client can render
	// amounts without a second lookup.
	CigarettesPerDay  int    `gorm:"default:20" json:"cigarettes_per_day"`
	CigarettesPerPack int    `gorm:"default:20" json:"cigarettes_per_pack"`
	PackPrice         int64  `gorm:"default:1000" json:"pack_price"`
	ProductType       string `gorm:"size:30;default:cigarette" json:"product_type"`
	CurrencyCode      string `gorm:"size:3;default:BRL" json:"currency_code"`

	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (s *UserStats) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

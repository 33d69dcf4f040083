package model

import (
	"time"

	"github.com/google/uuid"
)

// Pricing defaults applied when a user has no onboarding row or left a
// field unset. PackPrice is in minor currency units (R$10,00).
const (
	DefaultCigarettesPerDay  = 20
	DefaultCigarettesPerPack = 20
	DefaultPackPrice         = 1000
	DefaultProductType       = "cigarette"
	DefaultCurrencyCode      = "BRL"
)

// OnboardingData holds the consumption and pricing answers collected when
// the user set up the app.
type OnboardingData struct {
	UserID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CigarettesPerDay  int       `gorm:"default:0" json:"cigarettes_per_day"`
	CigarettesPerPack int       `gorm:"default:0" json:"cigarettes_per_pack"`
	PackPrice         int64     `gorm:"default:0" json:"pack_price"`
	ProductType       string    `gorm:"size:30" json:"product_type"`
	CurrencyCode      string    `gorm:"size:3" json:"currency_code"`
	CreatedAt         time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// Pricing resolves the effective configuration, falling back to the
// documented defaults for any missing field.
func (o *OnboardingData) Pricing() (perDay, perPack int, packPrice int64, productType, currency string) {
	perDay = DefaultCigarettesPerDay
	perPack = DefaultCigarettesPerPack
	packPrice = DefaultPackPrice
	productType = DefaultProductType
	currency = DefaultCurrencyCode

	if o == nil {
		return
	}
	if o.CigarettesPerDay > 0 {
		perDay = o.CigarettesPerDay
	}
	if o.CigarettesPerPack > 0 {
		perPack = o.CigarettesPerPack
	}
	if o.PackPrice > 0 {
		packPrice = o.PackPrice
	}
	if o.ProductType != "" {
		productType = o.ProductType
	}
	if o.CurrencyCode != "" {
		currency = o.CurrencyCode
	}
	return
}

package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
)

// MinutesPerCigarette is the fixed life-time-gained constant: every avoided
// cigarette is counted as 6 minutes of life recovered.
const MinutesPerCigarette = 6

// MaxFallbackAvoided caps the cigarettes-avoided fallback when the user has
// no smoking log to anchor the streak on.
const MaxFallbackAvoided = 5

type StatsService interface {
	// Recalculate recomputes the user's derived stats row from the raw
	// event logs and persists it. Safe to call repeatedly: with unchanged
	// logs the result is identical.
	Recalculate(ctx context.Context, userID uuid.UUID) (*model.UserStats, error)
}

type statsService struct {
	smokingLogs repository.SmokingLogRepository
	cravings    repository.CravingRepository
	stats       repository.StatsRepository
	onboarding  repository.OnboardingRepository
	now         func() time.Time
}

func NewStatsService(
	smokingLogs repository.SmokingLogRepository,
	cravings repository.CravingRepository,
	stats repository.StatsRepository,
	onboarding repository.OnboardingRepository,
) StatsService {
	return &statsService{
		smokingLogs: smokingLogs,
		cravings:    cravings,
		stats:       stats,
		onboarding:  onboarding,
		now:         time.Now,
	}
}

func (s *statsService) Recalculate(ctx context.Context, userID uuid.UUID) (*model.UserStats, error) {
	logs, err := s.smokingLogs.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch smoking logs: %w", err)
	}

	allCravings, err := s.cravings.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cravings: %w", err)
	}

	onboardingData, err := s.onboarding.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch onboarding data: %w", err)
	}

	existing, err := s.stats.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing stats: %w", err)
	}

	perDay, perPack, packPrice, productType, currency := onboardingData.Pricing()
	pricePerCigarette := float64(packPrice) / float64(perPack)

	var lastSmokeDate *time.Time
	cigarettesSmoked := 0
	if len(logs) > 0 {
		// Logs come newest first.
		ts := logs[0].Timestamp
		lastSmokeDate = &ts
		for _, l := range logs {
			cigarettesSmoked += l.Amount
		}
	}

	cravingsResisted := 0
	for _, c := range allCravings {
		if c.Outcome.Resisted() {
			cravingsResisted++
		}
	}

	now := s.now()

	// Streak is measured in whole calendar days, midnight to midnight, not
	// elapsed hours.
	currentStreakDays := 0
	if lastSmokeDate != nil {
		lastDay := startOfDay(*lastSmokeDate)
		today := startOfDay(now)
		currentStreakDays = int(today.Sub(lastDay).Hours() / 24)
	}

	longestStreakDays := currentStreakDays
	if existing != nil && existing.LongestStreakDays > longestStreakDays {
		longestStreakDays = existing.LongestStreakDays
	}

	cigarettesAvoided := 0
	if lastSmokeDate != nil {
		cigarettesAvoided = currentStreakDays * perDay
	} else {
		// No baseline to measure against: use resisted cravings, capped so
		// progress is not overstated.
		cigarettesAvoided = cravingsResisted
		if cigarettesAvoided > MaxFallbackAvoided {
			cigarettesAvoided = MaxFallbackAvoided
		}
		log.Printf("no last smoke date for user %s, using cravings resisted as fallback: %d", userID, cigarettesAvoided)
	}

	moneySaved := int64(math.Round(float64(cigarettesAvoided) * pricePerCigarette))
	totalMinutesGained := cigarettesAvoided * MinutesPerCigarette

	todayResisted := 0
	todayStart := startOfDay(now)
	for _, c := range allCravings {
		if c.Outcome.Resisted() && !c.Timestamp.Before(todayStart) {
			todayResisted++
		}
	}

	minutesGainedToday := 0
	if todayResisted > 0 {
		minutesGainedToday = todayResisted * MinutesPerCigarette
	} else if perDay > 0 {
		// No resisted craving yet today: estimate from the daily average.
		minutesGainedToday = MinutesPerCigarette * perDay / 24
	}

	stats := &model.UserStats{
		UserID:              userID,
		CigarettesAvoided:   cigarettesAvoided,
		MoneySaved:          moneySaved,
		CravingsResisted:    cravingsResisted,
		CurrentStreakDays:   currentStreakDays,
		LongestStreakDays:   longestStreakDays,
		LastSmokeDate:       lastSmokeDate,
		CigarettesSmoked:    cigarettesSmoked,
		SmokingRecordsCount: len(logs),
		TotalSmokeFreeDays:  currentStreakDays,
		MinutesGainedToday:  minutesGainedToday,
		TotalMinutesGained:  totalMinutesGained,
		CigarettesPerDay:    perDay,
		CigarettesPerPack:   perPack,
		PackPrice:           packPrice,
		ProductType:         productType,
		CurrencyCode:        currency,
	}
	if existing != nil {
		// Keep the primary key stable across recalculations.
		stats.ID = existing.ID
	}

	if err := s.stats.Save(stats); err != nil {
		return nil, fmt.Errorf("failed to save user stats: %w", err)
	}

	return stats, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/dto"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/pkg/apperror"
)

// relapseWindow is how recent a last-smoke timestamp must be to count as a
// freshly registered smoking event, which resets recovery progress.
const relapseWindow = time.Hour

type RecoveryService interface {
	// Check evaluates which health recovery milestones the user has newly
	// crossed. When updateAchievements is true the XP award and the
	// notification are applied as well; failures in those side effects are
	// logged and never abort the pass, since the achievement row itself is
	// the source of truth.
	Check(ctx context.Context, userID uuid.UUID, updateAchievements bool) (*dto.RecoveryCheckResult, error)
}

type recoveryService struct {
	recoveries    repository.RecoveryRepository
	stats         repository.StatsRepository
	cravings      repository.CravingRepository
	experience    ExperienceService
	notifications NotificationService
	now           func() time.Time
}

func NewRecoveryService(
	recoveries repository.RecoveryRepository,
	stats repository.StatsRepository,
	cravings repository.CravingRepository,
	experience ExperienceService,
	notifications NotificationService,
) RecoveryService {
	return &recoveryService{
		recoveries:    recoveries,
		stats:         stats,
		cravings:      cravings,
		experience:    experience,
		notifications: notifications,
		now:           time.Now,
	}
}

func (s *recoveryService) Check(ctx context.Context, userID uuid.UUID, updateAchievements bool) (*dto.RecoveryCheckResult, error) {
	now := s.now()

	lastSmokeDate, err := s.resolveLastSmokeDate(userID, now)
	if err != nil {
		return nil, err
	}

	daysSinceLastSmoke := int(now.Sub(lastSmokeDate).Hours() / 24)

	definitions, err := s.recoveries.FindAllDefinitions()
	if err != nil {
		return nil, fmt.Errorf("unable to fetch health recoveries: %w", err)
	}

	// A last-smoke timestamp within the last hour at day zero means the
	// user just logged a new smoking event: recovery progress restarts.
	if now.Sub(lastSmokeDate) < relapseWindow && daysSinceLastSmoke == 0 {
		s.resetRecoveries(ctx, userID, updateAchievements)
	}

	achieved, err := s.recoveries.FindAchievedByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("unable to fetch user health recoveries: %w", err)
	}

	achievedIDs := make(map[uuid.UUID]bool, len(achieved))
	for _, a := range achieved {
		achievedIDs[a.RecoveryID] = true
	}

	newAchievements := []dto.NewAchievement{}
	for _, recovery := range definitions {
		if daysSinceLastSmoke < recovery.DaysToAchieve || achievedIDs[recovery.ID] {
			continue
		}

		row := &model.UserHealthRecovery{
			UserID:     userID,
			RecoveryID: recovery.ID,
			AchievedAt: now,
			IsViewed:   false,
		}
		if err := s.recoveries.CreateAchievement(row); err != nil {
			// Likely a concurrent check inserted the same pair first; the
			// unique index keeps the invariant either way.
			log.Printf("failed to record recovery %s for user %s: %v", recovery.Name, userID, err)
			continue
		}

		newAchievements = append(newAchievements, dto.NewAchievement{
			ID:            row.ID,
			RecoveryID:    recovery.ID,
			Name:          recovery.Name,
			Description:   recovery.Description,
			XPReward:      recovery.XPReward,
			DaysToAchieve: recovery.DaysToAchieve,
		})

		if !updateAchievements {
			continue
		}

		recoveryID := recovery.ID
		if err := s.experience.AwardXP(ctx, userID, recovery.XPReward, model.XPSourceHealthRecovery, &recoveryID); err != nil {
			log.Printf("failed to award XP for recovery %s: %v", recovery.Name, err)
		}

		rowID := row.ID
		notification := &model.Notification{
			UserID:      userID,
			Title:       fmt.Sprintf("Health Recovery: %s", recovery.Name),
			Message:     fmt.Sprintf("Your %s has improved after %d days without smoking.", lowerFirst(recovery.Name), recovery.DaysToAchieve),
			Type:        model.NotificationHealthRecovery,
			ReferenceID: &rowID,
		}
		if err := s.notifications.Create(ctx, notification); err != nil {
			log.Printf("failed to create notification for recovery %s: %v", recovery.Name, err)
		}
	}

	return &dto.RecoveryCheckResult{
		DaysSmokeFree:     daysSinceLastSmoke,
		NewAchievements:   newAchievements,
		TotalAchievements: len(achieved) + len(newAchievements),
	}, nil
}

// resolveLastSmokeDate loads the user's baseline, bootstrapping a stats row
// when the only evidence of quitting is a logged craving.
func (s *recoveryService) resolveLastSmokeDate(userID uuid.UUID, now time.Time) (time.Time, error) {
	stats, err := s.stats.FindByUserID(userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to fetch user stats: %w", err)
	}
	if stats != nil && stats.LastSmokeDate != nil {
		return *stats.LastSmokeDate, nil
	}

	hasCravings, err := s.cravings.HasAny(userID)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to check cravings: %w", err)
	}
	if !hasCravings {
		return time.Time{}, fmt.Errorf("%w: user has no smoking history or cravings to establish a baseline", apperror.ErrNotFound)
	}

	// The user has started logging cravings but never recorded a smoking
	// event: seed the baseline at the current moment.
	seeded := &model.UserStats{
		UserID:        userID,
		LastSmokeDate: &now,
	}
	if stats != nil {
		seeded = stats
		seeded.LastSmokeDate = &now
	}
	if err := s.stats.Save(seeded); err != nil {
		return time.Time{}, fmt.Errorf("failed to initialize user stats: %w", err)
	}
	log.Printf("initialized user_stats for user %s with current date as last_smoke_date", userID)

	return now, nil
}

func (s *recoveryService) resetRecoveries(ctx context.Context, userID uuid.UUID, updateAchievements bool) {
	existing, err := s.recoveries.FindAchievedByUserID(userID)
	if err != nil {
		log.Printf("failed to fetch recoveries to reset for user %s: %v", userID, err)
		return
	}
	if len(existing) == 0 {
		return
	}

	if err := s.recoveries.DeleteAchievementsByUserID(userID); err != nil {
		log.Printf("failed to reset health recoveries for user %s: %v", userID, err)
		return
	}
	log.Printf("reset %d health recoveries for user %s due to new smoking event", len(existing), userID)

	if !updateAchievements {
		return
	}

	notification := &model.Notification{
		UserID:  userID,
		Title:   "Health Recovery Reset",
		Message: "Your health recovery progress has been reset due to a new smoking event.",
		Type:    model.NotificationHealthRecoveryReset,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		log.Printf("failed to create reset notification for user %s: %v", userID, err)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'A' && r[0] <= 'Z' {
		r[0] = r[0] - 'A' + 'a'
	}
	return string(r)
}

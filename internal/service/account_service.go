package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/pkg/apperror"
	"golang.org/x/crypto/bcrypt"
)

// AccountService handles full account deletion: the password is
// re-verified, then every table holding the user's data is cleared before
// the user row itself goes.
type AccountService interface {
	DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error
}

type accountService struct {
	users         repository.UserRepository
	smokingLogs   repository.SmokingLogRepository
	cravings      repository.CravingRepository
	stats         repository.StatsRepository
	onboarding    repository.OnboardingRepository
	recoveries    repository.RecoveryRepository
	notifications repository.NotificationRepository
	experience    repository.ExperienceRepository
	fcmTokens     repository.FCMTokenRepository
	feedback      repository.FeedbackRepository
	motivation    repository.MotivationRepository
}

func NewAccountService(
	users repository.UserRepository,
	smokingLogs repository.SmokingLogRepository,
	cravings repository.CravingRepository,
	stats repository.StatsRepository,
	onboarding repository.OnboardingRepository,
	recoveries repository.RecoveryRepository,
	notifications repository.NotificationRepository,
	experience repository.ExperienceRepository,
	fcmTokens repository.FCMTokenRepository,
	feedback repository.FeedbackRepository,
	motivation repository.MotivationRepository,
) AccountService {
	return &accountService{
		users:         users,
		smokingLogs:   smokingLogs,
		cravings:      cravings,
		stats:         stats,
		onboarding:    onboarding,
		recoveries:    recoveries,
		notifications: notifications,
		experience:    experience,
		fcmTokens:     fcmTokens,
		feedback:      feedback,
		motivation:    motivation,
	}
}

func (s *accountService) DeleteAccount(ctx context.Context, userID uuid.UUID, password string) error {
	user, err := s.users.FindByID(userID)
	if err != nil {
		return fmt.Errorf("%w: user not found", apperror.ErrNotFound)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("%w: invalid password", apperror.ErrBadRequest)
	}

	deletions := []struct {
		name string
		fn   func(uuid.UUID) error
	}{
		{"smoking logs", s.smokingLogs.DeleteByUserID},
		{"cravings", s.cravings.DeleteByUserID},
		{"user stats", s.stats.DeleteByUserID},
		{"onboarding data", s.onboarding.DeleteByUserID},
		{"health recoveries", s.recoveries.DeleteAchievementsByUserID},
		{"notifications", s.notifications.DeleteByUserID},
		{"experience", s.experience.DeleteByUserID},
		{"fcm tokens", s.fcmTokens.DeleteByUserID},
		{"feedback", s.feedback.DeleteByUserID},
		{"motivation logs", s.motivation.DeleteByUserID},
	}

	for _, d := range deletions {
		if err := d.fn(userID); err != nil {
			return fmt.Errorf("failed to delete %s: %w", d.name, err)
		}
	}

	if err := s.users.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user account: %w", err)
	}

	log.Printf("deleted account and all data for user %s", userID)
	return nil
}

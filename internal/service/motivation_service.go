package service

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/pkg/apperror"
)

// systemMessages holds the localized copy for the motivation flow.
type systemMessages struct {
	title                string
	fallbackMotivation   string
	notificationNotFound string
	alreadyViewed        string
	xpAwardedFormat      string
}

var messagesByLanguage = map[string]systemMessages{
	"pt": {
		title:                "Motivação do dia",
		fallbackMotivation:   "Cada dia sem fumar é uma vitória. Continue firme, seu corpo agradece.",
		notificationNotFound: "Notificação não encontrada ou não pertence a este usuário",
		alreadyViewed:        "Esta notificação já foi visualizada anteriormente",
		xpAwardedFormat:      "Você ganhou %d pontos de XP por ler sua motivação diária!",
	},
	"en": {
		title:                "Daily motivation",
		fallbackMotivation:   "Every smoke-free day is a win. Keep going, your body is thanking you.",
		notificationNotFound: "Notification not found or does not belong to this user",
		alreadyViewed:        "This notification has already been viewed",
		xpAwardedFormat:      "You earned %d XP points for reading your daily motivation!",
	},
	"es": {
		title:                "Motivación del día",
		fallbackMotivation:   "Cada día sin fumar es una victoria. Sigue así, tu cuerpo te lo agradece.",
		notificationNotFound: "Notificación no encontrada o no pertenece a este usuario",
		alreadyViewed:        "Esta notificación ya ha sido vista",
		xpAwardedFormat:      "¡Has ganado %d puntos de XP por leer tu motivación diaria!",
	},
}

// languageFromLocale narrows a locale like "en_US" to a supported language,
// defaulting to Portuguese.
func languageFromLocale(locale string) string {
	switch {
	case strings.HasPrefix(locale, "en"):
		return "en"
	case strings.HasPrefix(locale, "es"):
		return "es"
	default:
		return "pt"
	}
}

type ClaimResult struct {
	Message   string `json:"message"`
	XPAwarded int    `json:"xp_awarded"`
}

type MotivationService interface {
	// Generate creates the user's daily motivation notification. At most
	// one is generated per user per calendar day.
	Generate(ctx context.Context, userID uuid.UUID) (*model.Notification, error)
	// ClaimReward marks a motivation notification as viewed and awards its
	// XP. Claiming twice awards nothing the second time.
	ClaimReward(ctx context.Context, userID, notificationID uuid.UUID) (*ClaimResult, error)
}

type motivationService struct {
	users         repository.UserRepository
	stats         repository.StatsRepository
	notifications NotificationService
	notifRepo     repository.NotificationRepository
	logs          repository.MotivationRepository
	experience    ExperienceService
	llm           *LLMClient
	xpReward      int
	now           func() time.Time
}

// NewMotivationService builds the service. llm may be nil, in which case a
// static localized message is used instead of a generated one.
func NewMotivationService(
	users repository.UserRepository,
	stats repository.StatsRepository,
	notifications NotificationService,
	notifRepo repository.NotificationRepository,
	logs repository.MotivationRepository,
	experience ExperienceService,
	llm *LLMClient,
	xpReward int,
) MotivationService {
	return &motivationService{
		users:         users,
		stats:         stats,
		notifications: notifications,
		notifRepo:     notifRepo,
		logs:          logs,
		experience:    experience,
		llm:           llm,
		xpReward:      xpReward,
		now:           time.Now,
	}
}

func (s *motivationService) Generate(ctx context.Context, userID uuid.UUID) (*model.Notification, error) {
	today := s.now().Format("2006-01-02")

	exists, err := s.logs.ExistsForDate(userID, today)
	if err != nil {
		return nil, fmt.Errorf("failed to check motivation log: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: daily motivation already sent today for this user", apperror.ErrBadRequest)
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user profile: %w", err)
	}
	language := languageFromLocale(user.Locale)
	msgs := messagesByLanguage[language]

	userStats, err := s.stats.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user stats: %w", err)
	}

	message := msgs.fallbackMotivation
	if s.llm != nil && userStats != nil {
		generated, err := s.llm.GenerateMotivation(ctx, MotivationInput{
			Language:          language,
			StreakDays:        userStats.CurrentStreakDays,
			CigarettesAvoided: userStats.CigarettesAvoided,
			MoneySaved:        userStats.MoneySaved,
			CurrencyCode:      userStats.CurrencyCode,
			CravingsResisted:  userStats.CravingsResisted,
		})
		if err != nil {
			log.Printf("motivation generation failed for user %s, using fallback: %v", userID, err)
		} else {
			message = generated
		}
	}

	notification := &model.Notification{
		UserID:   userID,
		Title:    msgs.title,
		Message:  message,
		Type:     model.NotificationMotivation,
		XPReward: s.xpReward,
	}
	if err := s.notifications.Create(ctx, notification); err != nil {
		return nil, fmt.Errorf("failed to create motivation notification: %w", err)
	}

	motivationLog := &model.DailyMotivationLog{
		UserID:         userID,
		Date:           today,
		NotificationID: notification.ID,
	}
	if err := s.logs.Create(motivationLog); err != nil {
		return nil, fmt.Errorf("failed to record motivation log: %w", err)
	}

	return notification, nil
}

func (s *motivationService) ClaimReward(ctx context.Context, userID, notificationID uuid.UUID) (*ClaimResult, error) {
	language := "pt"
	if user, err := s.users.FindByID(userID); err == nil {
		language = languageFromLocale(user.Locale)
	}
	msgs := messagesByLanguage[language]

	notification, err := s.notifRepo.FindByIDAndUser(notificationID, userID, model.NotificationMotivation)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notification: %w", err)
	}
	if notification == nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrNotFound, msgs.notificationNotFound)
	}
	if notification.ViewedAt != nil {
		return nil, fmt.Errorf("%w: %s", apperror.ErrBadRequest, msgs.alreadyViewed)
	}

	xpReward := notification.XPReward
	if xpReward <= 0 {
		xpReward = s.xpReward
	}

	if err := s.notifRepo.MarkViewed(notification.ID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to update notification: %w", err)
	}

	// The notification is already marked viewed: an XP failure is logged
	// but does not undo the claim.
	if err := s.experience.AwardXP(ctx, userID, xpReward, model.XPSourceMotivation, &notification.ID); err != nil {
		log.Printf("failed to award motivation XP to user %s: %v", userID, err)
	}

	return &ClaimResult{
		Message:   fmt.Sprintf(msgs.xpAwardedFormat, xpReward),
		XPAwarded: xpReward,
	}, nil
}

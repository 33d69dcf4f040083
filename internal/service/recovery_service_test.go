package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/pkg/apperror"
	"gorm.io/gorm"
)

func newRecoveryServiceForTest(db *gorm.DB, now time.Time) *recoveryService {
	return &recoveryService{
		recoveries:    repository.NewRecoveryRepository(db),
		stats:         repository.NewStatsRepository(db),
		cravings:      repository.NewCravingRepository(db),
		experience:    NewExperienceService(repository.NewExperienceRepository(db)),
		notifications: NewNotificationService(repository.NewNotificationRepository(db), nil),
		now:           fixedNow(now),
	}
}

func seedRecoveryDefinitions(t *testing.T, db *gorm.DB) {
	t.Helper()
	defs := []model.HealthRecovery{
		{Name: "Nicotine Free", Description: "Nicotine eliminated.", DaysToAchieve: 3, XPReward: 20},
		{Name: "Taste and Smell", Description: "Senses sharpen.", DaysToAchieve: 7, XPReward: 30},
		{Name: "Breathing", Description: "Breathing easier.", DaysToAchieve: 14, XPReward: 40},
	}
	for i := range defs {
		if err := db.Create(&defs[i]).Error; err != nil {
			t.Fatalf("failed to seed recovery definition: %v", err)
		}
	}
}

func seedLastSmoke(t *testing.T, db *gorm.DB, userID uuid.UUID, lastSmoke time.Time) {
	t.Helper()
	if err := db.Create(&model.UserStats{
		UserID:        userID,
		LastSmokeDate: timePtr(lastSmoke),
	}).Error; err != nil {
		t.Fatalf("failed to seed user stats: %v", err)
	}
}

func TestCheckCrossesMilestones(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedLastSmoke(t, db, userID, now.AddDate(0, 0, -10))

	svc := newRecoveryServiceForTest(db, now)
	result, err := svc.Check(context.Background(), userID, true)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if result.DaysSmokeFree != 10 {
		t.Errorf("DaysSmokeFree = %d, want 10", result.DaysSmokeFree)
	}
	if len(result.NewAchievements) != 2 {
		t.Fatalf("NewAchievements = %d, want 2", len(result.NewAchievements))
	}
	// Milestones come back ascending by threshold.
	if result.NewAchievements[0].DaysToAchieve != 3 || result.NewAchievements[1].DaysToAchieve != 7 {
		t.Errorf("unexpected milestone order: %+v", result.NewAchievements)
	}
	if result.TotalAchievements != 2 {
		t.Errorf("TotalAchievements = %d, want 2", result.TotalAchievements)
	}
}

func TestCheckIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedLastSmoke(t, db, userID, now.AddDate(0, 0, -10))

	svc := newRecoveryServiceForTest(db, now)
	if _, err := svc.Check(context.Background(), userID, true); err != nil {
		t.Fatalf("first Check failed: %v", err)
	}

	result, err := svc.Check(context.Background(), userID, true)
	if err != nil {
		t.Fatalf("second Check failed: %v", err)
	}
	if len(result.NewAchievements) != 0 {
		t.Errorf("second Check produced %d new achievements, want 0", len(result.NewAchievements))
	}
	if result.TotalAchievements != 2 {
		t.Errorf("TotalAchievements = %d, want 2", result.TotalAchievements)
	}

	var count int64
	if err := db.Model(&model.UserHealthRecovery{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count achievements: %v", err)
	}
	if count != 2 {
		t.Errorf("achievement row count = %d, want 2", count)
	}
}

func TestCheckAwardsXPAndNotifications(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedLastSmoke(t, db, userID, now.AddDate(0, 0, -10))

	svc := newRecoveryServiceForTest(db, now)
	if _, err := svc.Check(context.Background(), userID, true); err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	total, err := svc.experience.GetTotal(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetTotal failed: %v", err)
	}
	if total != 50 { // 20 for day 3 + 30 for day 7
		t.Errorf("total XP = %d, want 50", total)
	}

	var notifCount int64
	err = db.Model(&model.Notification{}).
		Where("user_id = ? AND type = ?", userID, model.NotificationHealthRecovery).
		Count(&notifCount).Error
	if err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if notifCount != 2 {
		t.Errorf("notification count = %d, want 2", notifCount)
	}
}

func TestCheckWithoutSideEffects(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedLastSmoke(t, db, userID, now.AddDate(0, 0, -10))

	svc := newRecoveryServiceForTest(db, now)
	result, err := svc.Check(context.Background(), userID, false)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}
	if len(result.NewAchievements) != 2 {
		t.Fatalf("NewAchievements = %d, want 2", len(result.NewAchievements))
	}

	// Achievement rows exist, but no XP and no notifications.
	var rows int64
	if err := db.Model(&model.UserHealthRecovery{}).Where("user_id = ?", userID).Count(&rows).Error; err != nil {
		t.Fatalf("failed to count achievements: %v", err)
	}
	if rows != 2 {
		t.Errorf("achievement row count = %d, want 2", rows)
	}

	total, err := svc.experience.GetTotal(context.Background(), userID)
	if err != nil {
		t.Fatalf("GetTotal failed: %v", err)
	}
	if total != 0 {
		t.Errorf("total XP = %d, want 0", total)
	}

	var notifCount int64
	if err := db.Model(&model.Notification{}).Where("user_id = ?", userID).Count(&notifCount).Error; err != nil {
		t.Fatalf("failed to count notifications: %v", err)
	}
	if notifCount != 0 {
		t.Errorf("notification count = %d, want 0", notifCount)
	}
}

func TestCheckRelapseResetsProgress(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedLastSmoke(t, db, userID, now.AddDate(0, 0, -10))

	svc := newRecoveryServiceForTest(db, now)
	if _, err := svc.Check(context.Background(), userID, true); err != nil {
		t.Fatalf("initial Check failed: %v", err)
	}

	// The user just logged a new smoking event.
	relapse := now.Add(-30 * time.Minute)
	err := db.Model(&model.UserStats{}).
		Where("user_id = ?", userID).
		Update("last_smoke_date", relapse).Error
	if err != nil {
		t.Fatalf("failed to update last smoke date: %v", err)
	}

	result, err := svc.Check(context.Background(), userID, true)
	if err != nil {
		t.Fatalf("Check after relapse failed: %v", err)
	}

	if result.DaysSmokeFree != 0 {
		t.Errorf("DaysSmokeFree = %d, want 0", result.DaysSmokeFree)
	}
	if len(result.NewAchievements) != 0 {
		t.Errorf("NewAchievements = %d, want 0", len(result.NewAchievements))
	}
	if result.TotalAchievements != 0 {
		t.Errorf("TotalAchievements = %d, want 0", result.TotalAchievements)
	}

	var rows int64
	if err := db.Model(&model.UserHealthRecovery{}).Where("user_id = ?", userID).Count(&rows).Error; err != nil {
		t.Fatalf("failed to count achievements: %v", err)
	}
	if rows != 0 {
		t.Errorf("achievement rows after reset = %d, want 0", rows)
	}

	var resetCount int64
	err = db.Model(&model.Notification{}).
		Where("user_id = ? AND type = ?", userID, model.NotificationHealthRecoveryReset).
		Count(&resetCount).Error
	if err != nil {
		t.Fatalf("failed to count reset notifications: %v", err)
	}
	if resetCount != 1 {
		t.Errorf("reset notification count = %d, want 1", resetCount)
	}
}

func TestCheckOldLastSmokeDoesNotReset(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	seedLastSmoke(t, db, userID, now.AddDate(0, 0, -10))

	svc := newRecoveryServiceForTest(db, now)
	if _, err := svc.Check(context.Background(), userID, true); err != nil {
		t.Fatalf("first Check failed: %v", err)
	}
	if _, err := svc.Check(context.Background(), userID, true); err != nil {
		t.Fatalf("second Check failed: %v", err)
	}

	var rows int64
	if err := db.Model(&model.UserHealthRecovery{}).Where("user_id = ?", userID).Count(&rows).Error; err != nil {
		t.Fatalf("failed to count achievements: %v", err)
	}
	if rows != 2 {
		t.Errorf("achievement rows = %d, want 2 (reset must not trigger)", rows)
	}
}

func TestCheckBootstrapsFromCravings(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	// No stats row, but a logged craving: the baseline is seeded at now.
	if err := db.Create(&model.Craving{
		UserID:    userID,
		Timestamp: now.AddDate(0, 0, -2),
		Outcome:   "RESISTED",
	}).Error; err != nil {
		t.Fatalf("failed to seed craving: %v", err)
	}

	svc := newRecoveryServiceForTest(db, now)
	result, err := svc.Check(context.Background(), userID, true)
	if err != nil {
		t.Fatalf("Check failed: %v", err)
	}

	if result.DaysSmokeFree != 0 {
		t.Errorf("DaysSmokeFree = %d, want 0", result.DaysSmokeFree)
	}

	stats := &model.UserStats{}
	if err := db.Where("user_id = ?", userID).First(stats).Error; err != nil {
		t.Fatalf("expected a seeded stats row: %v", err)
	}
	if stats.LastSmokeDate == nil || !stats.LastSmokeDate.Equal(now) {
		t.Errorf("LastSmokeDate = %v, want %v", stats.LastSmokeDate, now)
	}
}

func TestCheckWithoutBaselineFails(t *testing.T) {
	db := newTestDB(t)
	seedRecoveryDefinitions(t, db)
	userID := uuid.New()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	svc := newRecoveryServiceForTest(db, now)
	_, err := svc.Check(context.Background(), userID, true)
	if !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Check error = %v, want ErrNotFound", err)
	}
}

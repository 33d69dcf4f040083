package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
)

func TestStoreTokenCreatesAndRebinds(t *testing.T) {
	db := newTestDB(t)
	now := time.Date(2026, 3, 15, 9, 0, 0, 0, time.UTC)
	svc := &fcmService{
		repo: repository.NewFCMTokenRepository(db),
		now:  fixedNow(now),
	}
	ctx := context.Background()

	firstUser := uuid.New()
	created, err := svc.StoreToken(ctx, firstUser, "token-abc", []byte(`{"os":"android"}`))
	if err != nil {
		t.Fatalf("StoreToken failed: %v", err)
	}
	if !created {
		t.Error("first StoreToken should report created")
	}

	// The same device logs in as a different user: the row re-binds
	// instead of duplicating.
	secondUser := uuid.New()
	created, err = svc.StoreToken(ctx, secondUser, "token-abc", []byte(`{"os":"ios"}`))
	if err != nil {
		t.Fatalf("second StoreToken failed: %v", err)
	}
	if created {
		t.Error("second StoreToken should report updated, not created")
	}

	var rows []model.FCMToken
	if err := db.Where("token = ?", "token-abc").Find(&rows).Error; err != nil {
		t.Fatalf("failed to load token rows: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("token rows = %d, want 1", len(rows))
	}
	if rows[0].UserID != secondUser {
		t.Errorf("token bound to %s, want %s", rows[0].UserID, secondUser)
	}
}

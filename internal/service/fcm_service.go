package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
)

type FCMService interface {
	// StoreToken upserts a push token keyed by the token value itself, so a
	// device that changes owners re-binds its row to the new user.
	StoreToken(ctx context.Context, userID uuid.UUID, token string, deviceInfo []byte) (created bool, err error)
}

type fcmService struct {
	repo repository.FCMTokenRepository
	now  func() time.Time
}

func NewFCMService(repo repository.FCMTokenRepository) FCMService {
	return &fcmService{repo: repo, now: time.Now}
}

func (s *fcmService) StoreToken(ctx context.Context, userID uuid.UUID, token string, deviceInfo []byte) (bool, error) {
	existing, err := s.repo.FindByToken(token)
	if err != nil {
		return false, fmt.Errorf("failed to check token: %w", err)
	}

	if existing != nil {
		existing.UserID = userID
		existing.DeviceInfo = deviceInfo
		existing.LastUsedAt = s.now()
		if err := s.repo.Update(existing); err != nil {
			return false, fmt.Errorf("failed to update token: %w", err)
		}
		return false, nil
	}

	row := &model.FCMToken{
		UserID:     userID,
		Token:      token,
		DeviceInfo: deviceInfo,
		LastUsedAt: s.now(),
	}
	if err := s.repo.Create(row); err != nil {
		return false, fmt.Errorf("failed to store token: %w", err)
	}
	return true, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
)

// ExperienceService is the XP ledger: every award appends a log row and
// bumps the per-user running total.
type ExperienceService interface {
	AwardXP(ctx context.Context, userID uuid.UUID, amount int, source string, referenceID *uuid.UUID) error
	GetTotal(ctx context.Context, userID uuid.UUID) (int, error)
}

type experienceService struct {
	repo repository.ExperienceRepository
}

func NewExperienceService(repo repository.ExperienceRepository) ExperienceService {
	return &experienceService{repo: repo}
}

func (s *experienceService) AwardXP(ctx context.Context, userID uuid.UUID, amount int, source string, referenceID *uuid.UUID) error {
	if amount <= 0 {
		return nil
	}

	entry := &model.XPLog{
		UserID:      userID,
		Amount:      amount,
		Source:      source,
		ReferenceID: referenceID,
	}
	if err := s.repo.CreateLog(entry); err != nil {
		return fmt.Errorf("failed to create xp log: %w", err)
	}

	if err := s.repo.AddToTotal(userID, amount); err != nil {
		return fmt.Errorf("failed to update xp total: %w", err)
	}

	return nil
}

func (s *experienceService) GetTotal(ctx context.Context, userID uuid.UUID) (int, error) {
	total, err := s.repo.GetTotal(userID)
	if err != nil {
		return 0, err
	}
	if total == nil {
		return 0, nil
	}
	return total.TotalXP, nil
}

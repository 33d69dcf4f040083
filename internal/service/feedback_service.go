package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/dto"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
)

type FeedbackService interface {
	// Submit stores the user's feedback, overwriting a previous submission.
	Submit(ctx context.Context, userID uuid.UUID, req dto.FeedbackRequest) (*model.Feedback, error)
}

type feedbackService struct {
	repo repository.FeedbackRepository
}

func NewFeedbackService(repo repository.FeedbackRepository) FeedbackService {
	return &feedbackService{repo: repo}
}

func (s *feedbackService) Submit(ctx context.Context, userID uuid.UUID, req dto.FeedbackRequest) (*model.Feedback, error) {
	existing, err := s.repo.FindByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("error checking existing feedback: %w", err)
	}

	hasReviewed := false
	if req.HasReviewedApp != nil {
		hasReviewed = *req.HasReviewedApp
	}

	if existing != nil {
		existing.IsSatisfied = *req.IsSatisfied
		existing.Rating = req.Rating
		existing.FeedbackText = req.FeedbackText
		existing.FeedbackCategory = req.FeedbackCategory
		existing.HasReviewedApp = hasReviewed
		if err := s.repo.Update(existing); err != nil {
			return nil, fmt.Errorf("failed to update feedback: %w", err)
		}
		return existing, nil
	}

	feedback := &model.Feedback{
		UserID:           userID,
		IsSatisfied:      *req.IsSatisfied,
		Rating:           req.Rating,
		FeedbackText:     req.FeedbackText,
		FeedbackCategory: req.FeedbackCategory,
		HasReviewedApp:   hasReviewed,
	}
	if err := s.repo.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to submit feedback: %w", err)
	}
	return feedback, nil
}

package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type FeedbackRepository interface {
	// FindByUserID returns nil (no error) when the user never gave feedback.
	FindByUserID(userID uuid.UUID) (*model.Feedback, error)
	Create(feedback *model.Feedback) error
	Update(feedback *model.Feedback) error
	DeleteByUserID(userID uuid.UUID) error
}

type feedbackRepository struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) FindByUserID(userID uuid.UUID) (*model.Feedback, error) {
	var feedback model.Feedback
	err := r.db.Where("user_id = ?", userID).First(&feedback).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *feedbackRepository) Create(feedback *model.Feedback) error {
	return r.db.Create(feedback).Error
}

func (r *feedbackRepository) Update(feedback *model.Feedback) error {
	return r.db.Save(feedback).Error
}

func (r *feedbackRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Feedback{}).Error
}

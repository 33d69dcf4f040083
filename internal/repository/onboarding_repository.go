package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type OnboardingRepository interface {
	// FindByUserID returns nil (no error) when the user never onboarded.
	FindByUserID(userID uuid.UUID) (*model.OnboardingData, error)
	Save(data *model.OnboardingData) error
	DeleteByUserID(userID uuid.UUID) error
}

type onboardingRepository struct {
	db *gorm.DB
}

func NewOnboardingRepository(db *gorm.DB) OnboardingRepository {
	return &onboardingRepository{db: db}
}

func (r *onboardingRepository) FindByUserID(userID uuid.UUID) (*model.OnboardingData, error) {
	var data model.OnboardingData
	err := r.db.Where("user_id = ?", userID).First(&data).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &data, nil
}

func (r *onboardingRepository) Save(data *model.OnboardingData) error {
	return r.db.Save(data).Error
}

func (r *onboardingRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.OnboardingData{}).Error
}

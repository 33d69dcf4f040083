package repository

import (
	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type MotivationRepository interface {
	ExistsForDate(userID uuid.UUID, date string) (bool, error)
	Create(log *model.DailyMotivationLog) error
	DeleteByUserID(userID uuid.UUID) error
}

type motivationRepository struct {
	db *gorm.DB
}

func NewMotivationRepository(db *gorm.DB) MotivationRepository {
	return &motivationRepository{db: db}
}

func (r *motivationRepository) ExistsForDate(userID uuid.UUID, date string) (bool, error) {
	var count int64
	err := r.db.Model(&model.DailyMotivationLog{}).
		Where("user_id = ? AND date = ?", userID, date).
		Count(&count).Error
	return count > 0, err
}

func (r *motivationRepository) Create(log *model.DailyMotivationLog) error {
	return r.db.Create(log).Error
}

func (r *motivationRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.DailyMotivationLog{}).Error
}

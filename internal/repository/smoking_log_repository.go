package repository

import (
	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type SmokingLogRepository interface {
	Create(log *model.SmokingLog) error
	FindByUserID(userID uuid.UUID) ([]model.SmokingLog, error)
	DeleteByUserID(userID uuid.UUID) error
}

type smokingLogRepository struct {
	db *gorm.DB
}

func NewSmokingLogRepository(db *gorm.DB) SmokingLogRepository {
	return &smokingLogRepository{db: db}
}

func (r *smokingLogRepository) Create(log *model.SmokingLog) error {
	return r.db.Create(log).Error
}

// FindByUserID returns the user's smoking logs newest first.
func (r *smokingLogRepository) FindByUserID(userID uuid.UUID) ([]model.SmokingLog, error) {
	var logs []model.SmokingLog
	err := r.db.Where("user_id = ?", userID).
		Order("timestamp desc").
		Find(&logs).Error
	return logs, err
}

func (r *smokingLogRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.SmokingLog{}).Error
}

package repository

import (
	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type CravingRepository interface {
	Create(craving *model.Craving) error
	FindByUserID(userID uuid.UUID) ([]model.Craving, error)
	HasAny(userID uuid.UUID) (bool, error)
	DeleteByUserID(userID uuid.UUID) error
}

type cravingRepository struct {
	db *gorm.DB
}

func NewCravingRepository(db *gorm.DB) CravingRepository {
	return &cravingRepository{db: db}
}

func (r *cravingRepository) Create(craving *model.Craving) error {
	return r.db.Create(craving).Error
}

func (r *cravingRepository) FindByUserID(userID uuid.UUID) ([]model.Craving, error) {
	var cravings []model.Craving
	err := r.db.Where("user_id = ?", userID).Find(&cravings).Error
	return cravings, err
}

func (r *cravingRepository) HasAny(userID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&model.Craving{}).Where("user_id = ?", userID).Limit(1).Count(&count).Error
	return count > 0, err
}

func (r *cravingRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.Craving{}).Error
}

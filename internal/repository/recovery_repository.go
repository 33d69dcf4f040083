package repository

import (
	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type RecoveryRepository interface {
	// FindAllDefinitions returns the milestone catalog ascending by
	// days_to_achieve.
	FindAllDefinitions() ([]model.HealthRecovery, error)
	CreateDefinition(def *model.HealthRecovery) error
	CountDefinitionsByName(name string) (int64, error)

	FindAchievedByUserID(userID uuid.UUID) ([]model.UserHealthRecovery, error)
	CreateAchievement(achievement *model.UserHealthRecovery) error
	DeleteAchievementsByUserID(userID uuid.UUID) error
}

type recoveryRepository struct {
	db *gorm.DB
}

func NewRecoveryRepository(db *gorm.DB) RecoveryRepository {
	return &recoveryRepository{db: db}
}

func (r *recoveryRepository) FindAllDefinitions() ([]model.HealthRecovery, error) {
	var defs []model.HealthRecovery
	err := r.db.Order("days_to_achieve asc").Find(&defs).Error
	return defs, err
}

func (r *recoveryRepository) CreateDefinition(def *model.HealthRecovery) error {
	return r.db.Create(def).Error
}

func (r *recoveryRepository) CountDefinitionsByName(name string) (int64, error) {
	var count int64
	err := r.db.Model(&model.HealthRecovery{}).Where("name = ?", name).Count(&count).Error
	return count, err
}

func (r *recoveryRepository) FindAchievedByUserID(userID uuid.UUID) ([]model.UserHealthRecovery, error) {
	var achieved []model.UserHealthRecovery
	err := r.db.Where("user_id = ?", userID).Find(&achieved).Error
	return achieved, err
}

func (r *recoveryRepository) CreateAchievement(achievement *model.UserHealthRecovery) error {
	return r.db.Create(achievement).Error
}

func (r *recoveryRepository) DeleteAchievementsByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.UserHealthRecovery{}).Error
}

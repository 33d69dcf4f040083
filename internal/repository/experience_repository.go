package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ExperienceRepository interface {
	CreateLog(log *model.XPLog) error
	AddToTotal(userID uuid.UUID, amount int) error
	GetTotal(userID uuid.UUID) (*model.UserXP, error)
	FindLogsByUserID(userID uuid.UUID) ([]model.XPLog, error)
	DeleteByUserID(userID uuid.UUID) error
}

type experienceRepository struct {
	db *gorm.DB
}

func NewExperienceRepository(db *gorm.DB) ExperienceRepository {
	return &experienceRepository{db: db}
}

func (r *experienceRepository) CreateLog(log *model.XPLog) error {
	return r.db.Create(log).Error
}

// AddToTotal increments the user's running total, creating the row on first
// award. Using GORM OnConflict for Upsert.
func (r *experienceRepository) AddToTotal(userID uuid.UUID, amount int) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"total_xp":        gorm.Expr("user_xps.total_xp + ?", amount),
			"last_updated_at": gorm.Expr("CURRENT_TIMESTAMP"),
		}),
	}).Create(&model.UserXP{
		UserID:  userID,
		TotalXP: amount,
	}).Error
}

func (r *experienceRepository) GetTotal(userID uuid.UUID) (*model.UserXP, error) {
	var total model.UserXP
	err := r.db.Where("user_id = ?", userID).First(&total).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &total, nil
}

func (r *experienceRepository) FindLogsByUserID(userID uuid.UUID) ([]model.XPLog, error) {
	var logs []model.XPLog
	err := r.db.Where("user_id = ?", userID).Order("created_at desc").Find(&logs).Error
	return logs, err
}

func (r *experienceRepository) DeleteByUserID(userID uuid.UUID) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.XPLog{}).Error; err != nil {
		return err
	}
	return r.db.Where("user_id = ?", userID).Delete(&model.UserXP{}).Error
}

package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type StatsRepository interface {
	// FindByUserID returns nil (no error) when the user has no stats row yet.
	FindByUserID(userID uuid.UUID) (*model.UserStats, error)
	Save(stats *model.UserStats) error
	DeleteByUserID(userID uuid.UUID) error
}

type statsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) FindByUserID(userID uuid.UUID) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.db.Where("user_id = ?", userID).First(&stats).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// Save upserts the row. Callers keep the ID of an existing row so the
// primary key stays stable across recalculations.
func (r *statsRepository) Save(stats *model.UserStats) error {
	return r.db.Save(stats).Error
}

func (r *statsRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.UserStats{}).Error
}

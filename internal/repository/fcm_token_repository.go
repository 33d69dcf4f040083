package repository

import (
	"errors"

	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"gorm.io/gorm"
)

type FCMTokenRepository interface {
	// FindByToken returns nil (no error) when the token is unknown.
	FindByToken(token string) (*model.FCMToken, error)
	Create(token *model.FCMToken) error
	Update(token *model.FCMToken) error
	DeleteByUserID(userID uuid.UUID) error
}

type fcmTokenRepository struct {
	db *gorm.DB
}

func NewFCMTokenRepository(db *gorm.DB) FCMTokenRepository {
	return &fcmTokenRepository{db: db}
}

func (r *fcmTokenRepository) FindByToken(token string) (*model.FCMToken, error) {
	var row model.FCMToken
	err := r.db.Where("token = ?", token).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *fcmTokenRepository) Create(token *model.FCMToken) error {
	return r.db.Create(token).Error
}

func (r *fcmTokenRepository) Update(token *model.FCMToken) error {
	return r.db.Save(token).Error
}

func (r *fcmTokenRepository) DeleteByUserID(userID uuid.UUID) error {
	return r.db.Where("user_id = ?", userID).Delete(&model.FCMToken{}).Error
}

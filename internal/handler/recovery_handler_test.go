package handler

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/internal/service"
	"gorm.io/gorm"
)

func newRecoveryRouter(db *gorm.DB) *gin.Engine {
	notifications := service.NewNotificationService(repository.NewNotificationRepository(db), nil)
	experience := service.NewExperienceService(repository.NewExperienceRepository(db))
	svc := service.NewRecoveryService(
		repository.NewRecoveryRepository(db),
		repository.NewStatsRepository(db),
		repository.NewCravingRepository(db),
		experience,
		notifications,
	)
	h := NewRecoveryHandler(svc)

	router := gin.New()
	router.POST("/api/functions/check-health-recoveries", h.CheckRecoveries)
	return router
}

func TestCheckRecoveriesEndpoint(t *testing.T) {
	db := newTestDB(t)
	router := newRecoveryRouter(db)
	userID := uuid.New()

	if err := db.Create(&model.HealthRecovery{
		Name:          "Nicotine Free",
		Description:   "Nicotine eliminated.",
		DaysToAchieve: 3,
		XPReward:      20,
	}).Error; err != nil {
		t.Fatalf("failed to seed recovery definition: %v", err)
	}

	lastSmoke := time.Now().AddDate(0, 0, -5)
	if err := db.Create(&model.UserStats{
		UserID:        userID,
		LastSmokeDate: &lastSmoke,
	}).Error; err != nil {
		t.Fatalf("failed to seed stats: %v", err)
	}

	w := performJSON(router, http.MethodPost, "/api/functions/check-health-recoveries",
		fmt.Sprintf(`{"userId":%q}`, userID))
	body := assertEnvelope(t, w, http.StatusOK, true)

	if days, _ := body["days_smoke_free"].(float64); int(days) != 5 {
		t.Errorf("days_smoke_free = %v, want 5", body["days_smoke_free"])
	}
	newAchievements, ok := body["new_achievements"].([]interface{})
	if !ok || len(newAchievements) != 1 {
		t.Errorf("new_achievements = %v, want one entry", body["new_achievements"])
	}
	if total, _ := body["total_achievements"].(float64); int(total) != 1 {
		t.Errorf("total_achievements = %v, want 1", body["total_achievements"])
	}
}

func TestCheckRecoveriesUnknownUser(t *testing.T) {
	db := newTestDB(t)
	router := newRecoveryRouter(db)

	w := performJSON(router, http.MethodPost, "/api/functions/check-health-recoveries",
		fmt.Sprintf(`{"userId":%q}`, uuid.New()))
	assertEnvelope(t, w, http.StatusNotFound, false)
}

func TestCheckRecoveriesValidation(t *testing.T) {
	db := newTestDB(t)
	router := newRecoveryRouter(db)

	w := performJSON(router, http.MethodPost, "/api/functions/check-health-recoveries", `{}`)
	assertEnvelope(t, w, http.StatusBadRequest, false)
}

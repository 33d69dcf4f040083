package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/model"
	"github.com/respira-app/respira-backend/internal/repository"
	"github.com/respira-app/respira-backend/internal/service"
	"gorm.io/gorm"
)

// newNotificationRouter wires the REST endpoints with the given user already
// authenticated, standing in for the JWT middleware.
func newNotificationRouter(db *gorm.DB, userID uuid.UUID) *gin.Engine {
	svc := service.NewNotificationService(repository.NewNotificationRepository(db), nil)
	h := NewNotificationHandler(svc, nil)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", userID.String())
	})
	router.GET("/api/notifications", h.GetNotifications)
	router.GET("/api/notifications/unread-count", h.UnreadCount)
	router.PUT("/api/notifications/:id/read", h.MarkAsRead)
	router.PUT("/api/notifications/read-all", h.MarkAllAsRead)
	return router
}

func seedNotifications(t *testing.T, db *gorm.DB, userID uuid.UUID, n int) []model.Notification {
	t.Helper()
	rows := make([]model.Notification, 0, n)
	for i := 0; i < n; i++ {
		row := model.Notification{
			UserID:  userID,
			Title:   "Health Recovery",
			Message: "progress",
			Type:    model.NotificationHealthRecovery,
		}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("failed to seed notification: %v", err)
		}
		rows = append(rows, row)
	}
	return rows
}

func TestGetNotificationsScopedToUser(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedNotifications(t, db, userID, 3)
	seedNotifications(t, db, uuid.New(), 2)

	router := newNotificationRouter(db, userID)
	w := performJSON(router, http.MethodGet, "/api/notifications", "")
	body := assertEnvelope(t, w, http.StatusOK, true)

	data, ok := body["data"].([]interface{})
	if !ok {
		t.Fatalf("data missing from response: %s", w.Body.String())
	}
	if len(data) != 3 {
		t.Errorf("notifications = %d, want 3", len(data))
	}
}

func TestGetNotificationsPagination(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedNotifications(t, db, userID, 5)

	router := newNotificationRouter(db, userID)
	w := performJSON(router, http.MethodGet, "/api/notifications?limit=2&offset=4", "")
	body := assertEnvelope(t, w, http.StatusOK, true)

	data, _ := body["data"].([]interface{})
	if len(data) != 1 {
		t.Errorf("notifications = %d, want 1", len(data))
	}
}

func TestUnreadCountAndMarkAll(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	seedNotifications(t, db, userID, 4)

	router := newNotificationRouter(db, userID)

	w := performJSON(router, http.MethodGet, "/api/notifications/unread-count", "")
	body := assertEnvelope(t, w, http.StatusOK, true)
	if count, _ := body["count"].(float64); int(count) != 4 {
		t.Errorf("count = %v, want 4", body["count"])
	}

	w = performJSON(router, http.MethodPut, "/api/notifications/read-all", "")
	assertEnvelope(t, w, http.StatusOK, true)

	w = performJSON(router, http.MethodGet, "/api/notifications/unread-count", "")
	body = assertEnvelope(t, w, http.StatusOK, true)
	if count, _ := body["count"].(float64); int(count) != 0 {
		t.Errorf("count after read-all = %v, want 0", body["count"])
	}
}

func TestMarkAsRead(t *testing.T) {
	db := newTestDB(t)
	userID := uuid.New()
	rows := seedNotifications(t, db, userID, 1)

	router := newNotificationRouter(db, userID)
	w := performJSON(router, http.MethodPut, "/api/notifications/"+rows[0].ID.String()+"/read", "")
	assertEnvelope(t, w, http.StatusOK, true)

	stored := &model.Notification{}
	if err := db.Where("id = ?", rows[0].ID).First(stored).Error; err != nil {
		t.Fatalf("failed to reload notification: %v", err)
	}
	if !stored.IsRead {
		t.Error("notification not marked as read")
	}

	w = performJSON(router, http.MethodPut, "/api/notifications/not-a-uuid/read", "")
	assertEnvelope(t, w, http.StatusBadRequest, false)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/respira-app/respira-backend/internal/dto"
	"github.com/respira-app/respira-backend/internal/service"
	"github.com/respira-app/respira-backend/pkg/response"
	"github.com/respira-app/respira-backend/pkg/validator"
)

type MotivationHandler struct {
	service service.MotivationService
}

func NewMotivationHandler(service service.MotivationService) *MotivationHandler {
	return &MotivationHandler{service: service}
}

// Generate produces the daily motivation notification for a user. The
// scheduler calls the service directly; this endpoint exists for manual
// triggering and backfills.
func (h *MotivationHandler) Generate(c *gin.Context) {
	var req dto.GenerateMotivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "userId must be a valid UUID")
		return
	}

	notification, err := h.service.Generate(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Daily motivation generated",
		"data":    notification,
	})
}

// ClaimReward marks the caller's motivation notification as viewed and
// credits its XP.
func (h *MotivationHandler) ClaimReward(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.ClaimMotivationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	notificationID, err := uuid.Parse(req.NotificationID)
	if err != nil {
		response.BadRequest(c, "notificationId must be a valid UUID")
		return
	}

	result, err := h.service.ClaimReward(c.Request.Context(), userID, notificationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    result.Message,
		"xp_awarded": result.XPAwarded,
	})
}

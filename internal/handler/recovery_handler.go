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

type RecoveryHandler struct {
	service service.RecoveryService
}

func NewRecoveryHandler(service service.RecoveryService) *RecoveryHandler {
	return &RecoveryHandler{service: service}
}

// CheckRecoveries evaluates newly crossed health recovery milestones for a
// user and, unless updateAchievements is false, applies the XP and
// notification side effects.
func (h *RecoveryHandler) CheckRecoveries(c *gin.Context) {
	var req dto.CheckRecoveriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "userId must be a valid UUID")
		return
	}

	updateAchievements := true
	if req.UpdateAchievements != nil {
		updateAchievements = *req.UpdateAchievements
	}

	result, err := h.service.Check(c.Request.Context(), userID, updateAchievements)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":            true,
		"days_smoke_free":    result.DaysSmokeFree,
		"new_achievements":   result.NewAchievements,
		"total_achievements": result.TotalAchievements,
	})
}

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

type FCMHandler struct {
	service service.FCMService
}

func NewFCMHandler(service service.FCMService) *FCMHandler {
	return &FCMHandler{service: service}
}

// StoreToken registers or re-binds a device push token.
func (h *FCMHandler) StoreToken(c *gin.Context) {
	var req dto.StoreFCMTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		response.BadRequest(c, "user_id must be a valid UUID")
		return
	}

	created, err := h.service.StoreToken(c.Request.Context(), userID, req.Token, req.DeviceInfo)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "FCM token updated"
	status := http.StatusOK
	if created {
		message = "FCM token registered"
		status = http.StatusCreated
	}

	c.JSON(status, gin.H{"success": true, "message": message})
}

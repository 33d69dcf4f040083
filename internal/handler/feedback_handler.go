package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/respira-app/respira-backend/internal/dto"
	"github.com/respira-app/respira-backend/internal/service"
	"github.com/respira-app/respira-backend/pkg/response"
	"github.com/respira-app/respira-backend/pkg/validator"
)

type FeedbackHandler struct {
	service service.FeedbackService
}

func NewFeedbackHandler(service service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

// Submit stores the caller's app feedback, replacing any earlier one.
func (h *FeedbackHandler) Submit(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	feedback, err := h.service.Submit(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Feedback submitted successfully",
		"data":    feedback,
	})
}

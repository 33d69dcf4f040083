package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/respira-app/respira-backend/internal/dto"
	"github.com/respira-app/respira-backend/internal/service"
	"github.com/respira-app/respira-backend/pkg/response"
	"github.com/respira-app/respira-backend/pkg/validator"
)

type AccountHandler struct {
	service service.AccountService
}

func NewAccountHandler(service service.AccountService) *AccountHandler {
	return &AccountHandler{service: service}
}

// DeleteAccount wipes the caller's account and every row tied to it after
// re-verifying the password.
func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	userID, err := response.GetUserID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.DeleteAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, validator.FormatValidationError(err))
		return
	}

	if err := h.service.DeleteAccount(c.Request.Context(), userID, req.Password); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Account and all associated data deleted",
	})
}

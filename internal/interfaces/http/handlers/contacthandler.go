package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"apen/internal/application/contact/usecases"
	"apen/internal/interfaces/dto"
	"apen/internal/shared/i18n"
	"apen/internal/shared/logger"
	"apen/internal/shared/utils"
)

// ContactHandler handles HTTP requests for contact form submissions
type ContactHandler struct {
	submitUC *usecases.SubmitRequestUseCase
	logger   logger.Interface
}

// NewContactHandler creates a new contact handler
func NewContactHandler(submitUC *usecases.SubmitRequestUseCase, log logger.Interface) *ContactHandler {
	return &ContactHandler{
		submitUC: submitUC,
		logger:   log,
	}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for contact submission", "error", err)
		// The language field may have survived a partial decode; fall back
		// to Spanish otherwise.
		msgs := i18n.ForLanguage(i18n.Parse(req.Language))
		utils.ErrorResponse(c, http.StatusBadRequest, msgs.InvalidRequest)
		return
	}

	resp, err := h.submitUC.Execute(c.Request.Context(), *req.ToApplicationRequest())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, resp.Message, nil)
}

package staff

import (
	"github.com/kitoblarda/internal/http/response"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/service"

	"github.com/gin-gonic/gin"
)

type paymentSettingRequest struct {
	CardNumber string `json:"card_number" binding:"required"`
	CardHolder string `json:"card_holder"`
}

// GetPaymentSetting returns the active transfer card.
func (h *Handler) GetPaymentSetting(c *gin.Context) {
	setting, err := h.BookService.GetPaymentCard()
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrPaymentCardMissing, code: response.CodeNotFound, key: "error.payment_card_missing"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, setting)
}

// ReplacePaymentSetting swaps the active transfer card. The previous
// card is kept, deactivated, for the audit history.
func (h *Handler) ReplacePaymentSetting(c *gin.Context) {
	var req paymentSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	setting := models.PaymentSetting{
		CardNumber: req.CardNumber,
		CardHolder: req.CardHolder,
	}
	if err := h.BookService.ReplacePaymentCard(&setting); err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, setting)
}

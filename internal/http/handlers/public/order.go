package public

import (
	"strconv"

	"github.com/kitoblarda/internal/http/response"
	"github.com/kitoblarda/internal/i18n"
	"github.com/kitoblarda/internal/repository"
	"github.com/kitoblarda/internal/service"

	"github.com/gin-gonic/gin"
)

type createOrderRequest struct {
	Address  string `json:"address" binding:"required"`
	Landmark string `json:"landmark"`
}

// CreateOrder turns the session cart into a pending order.
func (h *Handler) CreateOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	sid, ok := getSessionID(c)
	if !ok {
		return
	}
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.address_required", err)
		return
	}

	order, err := h.OrderService.Checkout(c.Request.Context(), sid, userID, req.Address, req.Landmark)
	if err != nil {
		respondCheckoutError(c, err)
		return
	}
	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "success.order_created"), order)
}

// SubmitPayment stores the transfer screenshot for the user's latest
// pending order and moves it to awaiting confirmation. Multipart form,
// field name "screenshot".
func (h *Handler) SubmitPayment(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("screenshot")
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.screenshot_required", err)
		return
	}

	path, err := h.UploadService.SaveFile(file, "payment")
	if err != nil {
		respondPaymentSubmitError(c, err)
		return
	}

	order, err := h.OrderService.SubmitPayment(c.Request.Context(), userID, path)
	if err != nil {
		respondPaymentSubmitError(c, err)
		return
	}
	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, "success.payment_submitted"), order)
}

// ListOrders returns the user's order history.
func (h *Handler) ListOrders(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	orders, total, err := h.OrderService.ListForUser(repository.OrderListFilter{
		UserID:   userID,
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, orders, buildPagination(page, pageSize, total))
}

// GetOrder returns one of the user's own orders.
func (h *Handler) GetOrder(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	order, err := h.OrderService.GetForUser(uint(orderID), userID)
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
		}, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

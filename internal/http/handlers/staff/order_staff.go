package staff

import (
	"strconv"

	"github.com/kitoblarda/internal/constants"
	"github.com/kitoblarda/internal/http/response"
	"github.com/kitoblarda/internal/i18n"
	"github.com/kitoblarda/internal/repository"

	"github.com/gin-gonic/gin"
)

// ListOrders returns the cross-user fulfillment queue.
func (h *Handler) ListOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	userID, _ := strconv.ParseUint(c.Query("user_id"), 10, 32)

	orders, total, err := h.OrderService.ListStaff(repository.OrderListFilter{
		UserID:   uint(userID),
		Status:   c.Query("status"),
		Phone:    c.Query("phone"),
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.SuccessWithPage(c, orders, response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	})
}

// GetOrder returns any order with its items.
func (h *Handler) GetOrder(c *gin.Context) {
	orderID, ok := h.parseOrderID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.GetStaff(orderID)
	if err != nil {
		respondWithMappedError(c, err, orderTransitionErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, order)
}

// ConfirmOrder accepts the payment screenshot and starts preparation.
func (h *Handler) ConfirmOrder(c *gin.Context) {
	h.transition(c, constants.OrderStatusConfirmedPreparing, "success.order_confirmed")
}

// CancelOrder rejects an order awaiting confirmation.
func (h *Handler) CancelOrder(c *gin.Context) {
	h.transition(c, constants.OrderStatusCancelled, "success.order_cancelled")
}

// MarkOrderReady moves a prepared order to awaiting delivery.
func (h *Handler) MarkOrderReady(c *gin.Context) {
	h.transition(c, constants.OrderStatusAwaitingDelivery, "success.order_ready")
}

// MarkOrderDelivered closes the order.
func (h *Handler) MarkOrderDelivered(c *gin.Context) {
	h.transition(c, constants.OrderStatusDelivered, "success.order_delivered")
}

type bulkTransitionRequest struct {
	OrderIDs []uint `json:"order_ids" binding:"required"`
	Status   string `json:"status" binding:"required"`
}

// TransitionOrders applies one transition to many orders, reporting
// per-order results.
func (h *Handler) TransitionOrders(c *gin.Context) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	var req bulkTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	results := h.OrderService.TransitionBulk(c.Request.Context(), req.OrderIDs, actorID, req.Status)
	response.Success(c, results)
}

// ListOrderStatusLogs returns the audit trail for an order.
func (h *Handler) ListOrderStatusLogs(c *gin.Context) {
	orderID, ok := h.parseOrderID(c)
	if !ok {
		return
	}
	logs, err := h.OrderService.StatusLogs(orderID)
	if err != nil {
		respondWithMappedError(c, err, orderTransitionErrorRules, response.CodeInternal, "error.internal")
		return
	}
	response.Success(c, logs)
}

func (h *Handler) transition(c *gin.Context, targetStatus, successKey string) {
	actorID, ok := getActorID(c)
	if !ok {
		return
	}
	orderID, ok := h.parseOrderID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.Transition(c.Request.Context(), orderID, actorID, targetStatus)
	if err != nil {
		respondWithMappedError(c, err, orderTransitionErrorRules, response.CodeInternal, "error.internal")
		return
	}
	locale := i18n.ResolveLocale(c)
	response.SuccessWithMsg(c, i18n.T(locale, successKey), order)
}

func (h *Handler) parseOrderID(c *gin.Context) (uint, bool) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return 0, false
	}
	return uint(orderID), true
}

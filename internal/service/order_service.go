package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/kitoblarda/internal/constants"
	"github.com/kitoblarda/internal/logger"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/repository"

	"gorm.io/gorm"
)

// StatusLogEnqueuer hands status change audit records to the queue.
type StatusLogEnqueuer interface {
	EnqueueOrderStatusLog(orderID uint, fromStatus, toStatus string, actorID uint) error
}

// OrderService owns checkout and the order lifecycle.
type OrderService struct {
	db            *gorm.DB
	orderRepo     repository.OrderRepository
	bookRepo      repository.BookRepository
	statusLogRepo repository.OrderStatusLogRepository
	cartService   *CartService
	enqueuer      StatusLogEnqueuer
}

// NewOrderService creates an order service. The enqueuer may be nil,
// in which case audit rows are written synchronously.
func NewOrderService(
	db *gorm.DB,
	orderRepo repository.OrderRepository,
	bookRepo repository.BookRepository,
	statusLogRepo repository.OrderStatusLogRepository,
	cartService *CartService,
	enqueuer StatusLogEnqueuer,
) *OrderService {
	return &OrderService{
		db:            db,
		orderRepo:     orderRepo,
		bookRepo:      bookRepo,
		statusLogRepo: statusLogRepo,
		cartService:   cartService,
		enqueuer:      enqueuer,
	}
}

// Checkout turns the session cart into a pending order. The order and
// its items are written in one transaction; the cart is cleared only
// after the commit, so a failed checkout leaves it intact.
func (s *OrderService) Checkout(ctx context.Context, sessionID string, userID uint, address, landmark string) (*models.Order, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, ErrAddressRequired
	}

	c, err := s.cartService.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, ErrCartEmpty
	}

	entries := c.Entries()
	ids := make([]uint, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.BookID)
	}
	books, err := s.bookRepo.ListByIDs(ids)
	if err != nil {
		return nil, fmt.Errorf("resolve cart books failed: %w", err)
	}
	booksByID := make(map[uint]models.Book, len(books))
	for _, b := range books {
		booksByID[b.ID] = b
	}

	items := make([]models.OrderItem, 0, len(entries))
	total := models.NewMoneyFromInt(0)
	for _, e := range entries {
		book, ok := booksByID[e.BookID]
		if !ok {
			return nil, ErrBookNotFound
		}
		if !book.IsActive {
			return nil, ErrBookNotAvailable
		}
		// Totals come from the cart snapshots, not the live catalog.
		items = append(items, models.OrderItem{
			BookID:   e.BookID,
			Quantity: e.Quantity,
			Price:    e.UnitPrice,
		})
		total = total.Add(e.LineTotal())
	}

	order := &models.Order{
		UserID:      userID,
		Status:      constants.OrderStatusPending,
		TotalAmount: total,
		Address:     address,
		Landmark:    strings.TrimSpace(landmark),
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return s.orderRepo.WithTx(tx).Create(order, items)
	}); err != nil {
		return nil, fmt.Errorf("create order failed: %w", err)
	}

	if err := s.cartService.Clear(ctx, sessionID); err != nil {
		// The order exists; a stale cart is a nuisance, not a failure.
		logger.Warnw("cart_clear_after_checkout_failed",
			"order_id", order.ID,
			"error", err,
		)
	}

	s.recordStatusLog(order.ID, "", constants.OrderStatusPending, userID)

	order.Items = items
	return order, nil
}

// SubmitPayment attaches a payment screenshot to the user's latest
// pending order and moves it to awaiting confirmation. The move is
// guarded on the current status, so a concurrent submit or cancel
// cannot double-apply.
func (s *OrderService) SubmitPayment(ctx context.Context, userID uint, screenshotPath string) (*models.Order, error) {
	if strings.TrimSpace(screenshotPath) == "" {
		return nil, ErrScreenshotRequired
	}

	order, err := s.orderRepo.LatestPendingByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("find pending order failed: %w", err)
	}
	if order == nil {
		return nil, ErrNoActiveOrder
	}

	rows, err := s.orderRepo.UpdateStatusIf(order.ID,
		constants.OrderStatusPending,
		constants.OrderStatusAwaitingConfirmation,
		map[string]interface{}{"payment_screenshot": screenshotPath},
	)
	if err != nil {
		return nil, fmt.Errorf("update order failed: %w", err)
	}
	if rows == 0 {
		return nil, ErrOrderStatusInvalid
	}

	s.recordStatusLog(order.ID, constants.OrderStatusPending, constants.OrderStatusAwaitingConfirmation, userID)

	return s.orderRepo.GetByID(order.ID)
}

// Transition moves an order along the pipeline on behalf of a staff
// actor. An order already out of the expected status leaves the row
// untouched and reports ErrOrderStatusInvalid.
func (s *OrderService) Transition(ctx context.Context, orderID uint, actorID uint, targetStatus string) (*models.Order, error) {
	targetStatus = strings.ToLower(strings.TrimSpace(targetStatus))
	if !IsKnownStatus(targetStatus) {
		return nil, ErrOrderStatusInvalid
	}

	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order failed: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	if !CanTransition(order.Status, targetStatus) {
		return nil, ErrOrderStatusInvalid
	}

	rows, err := s.orderRepo.UpdateStatusIf(orderID, order.Status, targetStatus, nil)
	if err != nil {
		return nil, fmt.Errorf("update order failed: %w", err)
	}
	if rows == 0 {
		// Someone else moved the order first.
		return nil, ErrOrderStatusInvalid
	}

	s.recordStatusLog(orderID, order.Status, targetStatus, actorID)

	return s.orderRepo.GetByID(orderID)
}

// BulkTransitionResult reports the outcome per order of a bulk move.
type BulkTransitionResult struct {
	OrderID uint   `json:"order_id"`
	OK      bool   `json:"ok"`
	Error   string `json:"error,omitempty"`
}

// TransitionBulk applies the same transition to many orders. Failures
// are per-order; one bad order does not stop the rest.
func (s *OrderService) TransitionBulk(ctx context.Context, orderIDs []uint, actorID uint, targetStatus string) []BulkTransitionResult {
	results := make([]BulkTransitionResult, 0, len(orderIDs))
	for _, id := range orderIDs {
		_, err := s.Transition(ctx, id, actorID, targetStatus)
		result := BulkTransitionResult{OrderID: id, OK: err == nil}
		if err != nil {
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results
}

// GetForUser returns the user's own order.
func (s *OrderService) GetForUser(orderID, userID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByIDAndUser(orderID, userID)
	if err != nil {
		return nil, fmt.Errorf("fetch order failed: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListForUser returns the user's order history page.
func (s *OrderService) ListForUser(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListByUser(filter)
}

// GetStaff returns any order for the staff screens.
func (s *OrderService) GetStaff(orderID uint) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order failed: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListStaff returns the cross-user fulfillment queue.
func (s *OrderService) ListStaff(filter repository.OrderListFilter) ([]models.Order, int64, error) {
	return s.orderRepo.ListStaff(filter)
}

// StatusLogs returns the audit trail for an order.
func (s *OrderService) StatusLogs(orderID uint) ([]models.OrderStatusLog, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, fmt.Errorf("fetch order failed: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return s.statusLogRepo.ListByOrder(orderID)
}

// recordStatusLog hands the audit row to the queue, falling back to a
// synchronous write when no queue is wired.
func (s *OrderService) recordStatusLog(orderID uint, fromStatus, toStatus string, actorID uint) {
	if s.enqueuer != nil {
		if err := s.enqueuer.EnqueueOrderStatusLog(orderID, fromStatus, toStatus, actorID); err == nil {
			return
		} else {
			logger.Warnw("status_log_enqueue_failed",
				"order_id", orderID,
				"to_status", toStatus,
				"error", err,
			)
		}
	}
	if s.statusLogRepo == nil {
		return
	}
	if err := s.statusLogRepo.Create(&models.OrderStatusLog{
		OrderID:    orderID,
		FromStatus: fromStatus,
		ToStatus:   toStatus,
		ActorID:    actorID,
	}); err != nil {
		logger.Errorw("status_log_write_failed",
			"order_id", orderID,
			"to_status", toStatus,
			"error", err,
		)
	}
}

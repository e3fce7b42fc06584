package service

import (
	"context"
	"errors"
	"testing"

	"github.com/kitoblarda/internal/constants"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/repository"
	"github.com/kitoblarda/internal/session"

	"gorm.io/gorm"
)

func newOrderService(t *testing.T, db *gorm.DB) (*OrderService, *CartService) {
	t.Helper()
	cartSvc := NewCartService(session.NewMemoryStore(), repository.NewBookRepository(db))
	orderSvc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewBookRepository(db),
		repository.NewOrderStatusLogRepository(db),
		cartSvc,
		nil,
	)
	return orderSvc, cartSvc
}

func TestCheckoutWorkedExample(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, cartSvc := newOrderService(t, db)
	ctx := context.Background()

	first := seedBook(t, db, "Otgan kunlar", "10000.00", true)
	second := seedBook(t, db, "Shum bola", "5000.00", true)
	if _, err := cartSvc.Add(ctx, "s1", first.ID, 2, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if _, err := cartSvc.Add(ctx, "s1", second.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	order, err := orderSvc.Checkout(ctx, "s1", 1, "Chilonzor 9, Tashkent", "metro yonida")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if order.Status != constants.OrderStatusPending {
		t.Fatalf("expected pending, got %s", order.Status)
	}
	if order.TotalAmount.String() != "25000.00" {
		t.Fatalf("expected total 25000.00, got %s", order.TotalAmount)
	}
	if len(order.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(order.Items))
	}

	count, err := cartSvc.Count(ctx, "s1")
	if err != nil || count != 0 {
		t.Fatalf("expected cart cleared, got %d err=%v", count, err)
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)

	_, err := orderSvc.Checkout(context.Background(), "s1", 1, "Chilonzor 9", "")
	if !errors.Is(err, ErrCartEmpty) {
		t.Fatalf("expected ErrCartEmpty, got %v", err)
	}
}

func TestCheckoutRequiresAddress(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, cartSvc := newOrderService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Sarob", "10000.00", true)
	if _, err := cartSvc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	_, err := orderSvc.Checkout(ctx, "s1", 1, "   ", "")
	if !errors.Is(err, ErrAddressRequired) {
		t.Fatalf("expected ErrAddressRequired, got %v", err)
	}

	// The failed checkout must leave the cart intact.
	count, _ := cartSvc.Count(ctx, "s1")
	if count != 1 {
		t.Fatalf("expected cart untouched, got %d", count)
	}
}

func TestCheckoutRejectsDeactivatedBook(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, cartSvc := newOrderService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Mehrobdan chayon", "8000.00", true)
	if _, err := cartSvc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := db.Model(book).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	_, err := orderSvc.Checkout(ctx, "s1", 1, "Chilonzor 9", "")
	if !errors.Is(err, ErrBookNotAvailable) {
		t.Fatalf("expected ErrBookNotAvailable, got %v", err)
	}

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("expected no orders, got %d", orderCount)
	}
}

func TestCheckoutRollsBackWhenItemInsertFails(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, cartSvc := newOrderService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Navoiy", "12000.00", true)
	if _, err := cartSvc.Add(ctx, "s1", book.ID, 2, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	// Force the item batch insert to fail mid-transaction.
	if err := db.Migrator().DropTable(&models.OrderItem{}); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}

	if _, err := orderSvc.Checkout(ctx, "s1", 1, "Chilonzor 9", ""); err == nil {
		t.Fatalf("expected checkout to fail")
	}

	var orderCount int64
	db.Model(&models.Order{}).Count(&orderCount)
	if orderCount != 0 {
		t.Fatalf("expected order rolled back, got %d rows", orderCount)
	}
	count, err := cartSvc.Count(ctx, "s1")
	if err != nil || count != 2 {
		t.Fatalf("expected cart intact, got %d err=%v", count, err)
	}
}

func TestSubmitPaymentMovesLatestPending(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, cartSvc := newOrderService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Yulduzli tunlar", "15000.00", true)
	if _, err := cartSvc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	created, err := orderSvc.Checkout(ctx, "s1", 1, "Chilonzor 9", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	order, err := orderSvc.SubmitPayment(ctx, 1, "/uploads/payment/2026/08/x.jpg")
	if err != nil {
		t.Fatalf("submit payment failed: %v", err)
	}
	if order.ID != created.ID {
		t.Fatalf("expected order %d, got %d", created.ID, order.ID)
	}
	if order.Status != constants.OrderStatusAwaitingConfirmation {
		t.Fatalf("expected awaiting_confirmation, got %s", order.Status)
	}
	if order.PaymentScreenshot == "" {
		t.Fatalf("expected screenshot path stored")
	}
}

func TestSubmitPaymentWithoutPendingOrder(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)

	_, err := orderSvc.SubmitPayment(context.Background(), 1, "/uploads/payment/x.jpg")
	if !errors.Is(err, ErrNoActiveOrder) {
		t.Fatalf("expected ErrNoActiveOrder, got %v", err)
	}
}

func TestSubmitPaymentRequiresScreenshot(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)

	_, err := orderSvc.SubmitPayment(context.Background(), 1, "  ")
	if !errors.Is(err, ErrScreenshotRequired) {
		t.Fatalf("expected ErrScreenshotRequired, got %v", err)
	}
}

func TestTransitionHappyPath(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)
	ctx := context.Background()

	order := &models.Order{
		UserID:      1,
		Status:      constants.OrderStatusAwaitingConfirmation,
		TotalAmount: models.NewMoneyFromInt(25000),
		Address:     "Chilonzor 9",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	for _, target := range []string{
		constants.OrderStatusConfirmedPreparing,
		constants.OrderStatusAwaitingDelivery,
		constants.OrderStatusDelivered,
	} {
		got, err := orderSvc.Transition(ctx, order.ID, 9, target)
		if err != nil {
			t.Fatalf("transition to %s failed: %v", target, err)
		}
		if got.Status != target {
			t.Fatalf("expected %s, got %s", target, got.Status)
		}
	}

	logs, err := orderSvc.StatusLogs(order.ID)
	if err != nil {
		t.Fatalf("status logs failed: %v", err)
	}
	if len(logs) != 3 {
		t.Fatalf("expected 3 audit rows, got %d", len(logs))
	}
	if logs[0].FromStatus != constants.OrderStatusAwaitingConfirmation {
		t.Fatalf("unexpected first audit row: %+v", logs[0])
	}
}

func TestTransitionCancelOnlyAfterPaymentSubmitted(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)
	ctx := context.Background()

	pending := &models.Order{
		UserID:      1,
		Status:      constants.OrderStatusPending,
		TotalAmount: models.NewMoneyFromInt(10000),
		Address:     "Chilonzor 9",
	}
	if err := db.Create(pending).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if _, err := orderSvc.Transition(ctx, pending.ID, 9, constants.OrderStatusCancelled); !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("pending order must not be cancellable, got %v", err)
	}

	awaiting := &models.Order{
		UserID:      1,
		Status:      constants.OrderStatusAwaitingConfirmation,
		TotalAmount: models.NewMoneyFromInt(10000),
		Address:     "Chilonzor 9",
	}
	if err := db.Create(awaiting).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	got, err := orderSvc.Transition(ctx, awaiting.ID, 9, constants.OrderStatusCancelled)
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if got.Status != constants.OrderStatusCancelled {
		t.Fatalf("expected cancelled, got %s", got.Status)
	}
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)
	ctx := context.Background()

	order := &models.Order{
		UserID:      1,
		Status:      constants.OrderStatusPending,
		TotalAmount: models.NewMoneyFromInt(10000),
		Address:     "Chilonzor 9",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err := orderSvc.Transition(ctx, order.ID, 9, constants.OrderStatusDelivered)
	if !errors.Is(err, ErrOrderStatusInvalid) {
		t.Fatalf("expected ErrOrderStatusInvalid, got %v", err)
	}

	var reloaded models.Order
	db.First(&reloaded, order.ID)
	if reloaded.Status != constants.OrderStatusPending {
		t.Fatalf("status changed despite rejection: %s", reloaded.Status)
	}
}

func TestTransitionTerminalStatesAreFrozen(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)
	ctx := context.Background()

	for _, terminal := range []string{constants.OrderStatusDelivered, constants.OrderStatusCancelled} {
		order := &models.Order{
			UserID:      1,
			Status:      terminal,
			TotalAmount: models.NewMoneyFromInt(10000),
			Address:     "Chilonzor 9",
		}
		if err := db.Create(order).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		if _, err := orderSvc.Transition(ctx, order.ID, 9, constants.OrderStatusPending); !errors.Is(err, ErrOrderStatusInvalid) {
			t.Fatalf("expected ErrOrderStatusInvalid from %s, got %v", terminal, err)
		}
	}
}

func TestTransitionUnknownOrder(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)

	_, err := orderSvc.Transition(context.Background(), 4242, 9, constants.OrderStatusCancelled)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestTransitionBulkReportsPerOrder(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, _ := newOrderService(t, db)
	ctx := context.Background()

	ok := &models.Order{
		UserID:      1,
		Status:      constants.OrderStatusAwaitingConfirmation,
		TotalAmount: models.NewMoneyFromInt(10000),
		Address:     "Chilonzor 9",
	}
	bad := &models.Order{
		UserID:      1,
		Status:      constants.OrderStatusDelivered,
		TotalAmount: models.NewMoneyFromInt(10000),
		Address:     "Chilonzor 9",
	}
	if err := db.Create(ok).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := db.Create(bad).Error; err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	results := orderSvc.TransitionBulk(ctx, []uint{ok.ID, bad.ID, 4242}, 9, constants.OrderStatusConfirmedPreparing)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results[0].OK {
		t.Fatalf("expected first order to move: %+v", results[0])
	}
	if results[1].OK || results[2].OK {
		t.Fatalf("expected failures for terminal and missing orders: %+v", results[1:])
	}
}

func TestOrderSnapshotIsolatedFromPriceEdits(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, cartSvc := newOrderService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Ikki eshik orasi", "12000.00", true)
	if _, err := cartSvc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderSvc.Checkout(ctx, "s1", 1, "Chilonzor 9", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if err := db.Model(book).Update("price", "50000.00").Error; err != nil {
		t.Fatalf("update price failed: %v", err)
	}

	reloaded, err := orderSvc.GetForUser(order.ID, 1)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if reloaded.TotalAmount.String() != "12000.00" {
		t.Fatalf("order total drifted: %s", reloaded.TotalAmount)
	}
	if reloaded.Items[0].Price.String() != "12000.00" {
		t.Fatalf("item price drifted: %s", reloaded.Items[0].Price)
	}
}

func TestGetForUserHidesForeignOrders(t *testing.T) {
	db := newServiceTestDB(t)
	orderSvc, cartSvc := newOrderService(t, db)
	ctx := context.Background()
	book := seedBook(t, db, "Chol va dengiz", "9000.00", true)
	if _, err := cartSvc.Add(ctx, "s1", book.ID, 1, false); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	order, err := orderSvc.Checkout(ctx, "s1", 1, "Chilonzor 9", "")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}

	if _, err := orderSvc.GetForUser(order.ID, 2); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for foreign user, got %v", err)
	}
}

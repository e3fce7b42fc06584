package repository

import (
	"testing"

	"github.com/kitoblarda/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db
}

func seedOrder(t *testing.T, db *gorm.DB, userID uint, status string) *models.Order {
	t.Helper()
	order := &models.Order{
		UserID:      userID,
		Status:      status,
		TotalAmount: models.NewMoneyFromInt(25000),
		Address:     "Chilonzor 9, Tashkent",
	}
	if err := db.Create(order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return order
}

func TestUpdateStatusIfGuardMatches(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	order := seedOrder(t, db, 1, "pending")

	rows, err := repo.UpdateStatusIf(order.ID, "pending", "awaiting_confirmation", map[string]interface{}{
		"payment_screenshot": "uploads/payment/x.jpg",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rows != 1 {
		t.Fatalf("expected 1 row, got %d", rows)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil || got == nil {
		t.Fatalf("reload failed: %v", err)
	}
	if got.Status != "awaiting_confirmation" {
		t.Fatalf("expected awaiting_confirmation, got %s", got.Status)
	}
	if got.PaymentScreenshot == "" {
		t.Fatalf("expected screenshot path to be stored")
	}
}

func TestUpdateStatusIfGuardFailsLeavesRowUntouched(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	order := seedOrder(t, db, 1, "cancelled")

	rows, err := repo.UpdateStatusIf(order.ID, "pending", "awaiting_confirmation", nil)
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if rows != 0 {
		t.Fatalf("expected 0 rows, got %d", rows)
	}

	got, _ := repo.GetByID(order.ID)
	if got.Status != "cancelled" {
		t.Fatalf("status changed despite failed guard: %s", got.Status)
	}
}

func TestLatestPendingByUserPicksNewest(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	seedOrder(t, db, 1, "pending")
	second := seedOrder(t, db, 1, "pending")
	seedOrder(t, db, 1, "delivered")
	seedOrder(t, db, 2, "pending")

	got, err := repo.LatestPendingByUser(1)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got == nil || got.ID != second.ID {
		t.Fatalf("expected order %d, got %+v", second.ID, got)
	}
}

func TestLatestPendingByUserNilWhenNone(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	seedOrder(t, db, 1, "delivered")

	got, err := repo.LatestPendingByUser(1)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestCreateAssignsItemsToOrder(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)

	order := &models.Order{
		UserID:      1,
		Status:      "pending",
		TotalAmount: models.NewMoneyFromInt(25000),
		Address:     "Chilonzor 9, Tashkent",
	}
	items := []models.OrderItem{
		{BookID: 10, Quantity: 2, Price: models.NewMoneyFromInt(10000)},
		{BookID: 11, Quantity: 1, Price: models.NewMoneyFromInt(5000)},
	}
	if err := repo.Create(order, items); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := repo.GetByID(order.ID)
	if err != nil || got == nil {
		t.Fatalf("reload failed: %v", err)
	}
	if len(got.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got.Items))
	}
	for _, item := range got.Items {
		if item.OrderID != order.ID {
			t.Fatalf("item not bound to order: %+v", item)
		}
	}
}

func TestGetByIDAndUserHidesForeignOrders(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	order := seedOrder(t, db, 1, "pending")

	got, err := repo.GetByIDAndUser(order.ID, 2)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil for foreign user, got %+v", got)
	}
}

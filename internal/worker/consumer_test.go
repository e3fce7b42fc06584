package worker

import (
	"context"
	"testing"

	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/provider"
	"github.com/kitoblarda/internal/queue"
	"github.com/kitoblarda/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newWorkerTestConsumer(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db failed: %v", err)
	}
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db failed: %v", err)
	}
	container := &provider.Container{
		OrderRepo:     repository.NewOrderRepository(db),
		StatusLogRepo: repository.NewOrderStatusLogRepository(db),
	}
	return NewConsumer(container), db
}

func seedWorkerOrder(t *testing.T, db *gorm.DB) *models.Order {
	t.Helper()
	user := models.User{Phone: "+998901112233", PasswordHash: "x", IsActive: true}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}
	order := models.Order{UserID: user.ID, Status: "pending", Address: "Tashkent"}
	if err := db.Create(&order).Error; err != nil {
		t.Fatalf("seed order failed: %v", err)
	}
	return &order
}

func TestHandleOrderStatusLogWritesRow(t *testing.T) {
	consumer, db := newWorkerTestConsumer(t)
	order := seedWorkerOrder(t, db)

	task, err := queue.NewOrderStatusLogTask(queue.OrderStatusLogPayload{
		OrderID:    order.ID,
		FromStatus: "pending",
		ToStatus:   "awaiting_confirmation",
		ActorID:    order.UserID,
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}

	if err := consumer.handleOrderStatusLog(context.Background(), task); err != nil {
		t.Fatalf("handle task failed: %v", err)
	}

	var logs []models.OrderStatusLog
	if err := db.Where("order_id = ?", order.ID).Find(&logs).Error; err != nil {
		t.Fatalf("load logs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("log rows want 1 got %d", len(logs))
	}
	if logs[0].FromStatus != "pending" || logs[0].ToStatus != "awaiting_confirmation" {
		t.Fatalf("unexpected log row: %+v", logs[0])
	}
}

func TestHandleOrderStatusLogDropsVanishedOrder(t *testing.T) {
	consumer, db := newWorkerTestConsumer(t)

	task, err := queue.NewOrderStatusLogTask(queue.OrderStatusLogPayload{
		OrderID:  9999,
		ToStatus: "cancelled",
	})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}

	// Missing order is dropped without error, retrying cannot help.
	if err := consumer.handleOrderStatusLog(context.Background(), task); err != nil {
		t.Fatalf("vanished order should not error, got %v", err)
	}

	var count int64
	if err := db.Model(&models.OrderStatusLog{}).Count(&count).Error; err != nil {
		t.Fatalf("count logs failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("log rows want 0 got %d", count)
	}
}

func TestHandleOrderStatusLogBadPayload(t *testing.T) {
	consumer, _ := newWorkerTestConsumer(t)

	task := asynq.NewTask(queue.TaskOrderStatusLog, []byte("{not json"))
	if err := consumer.handleOrderStatusLog(context.Background(), task); err == nil {
		t.Fatalf("malformed payload should error")
	}

	zero, err := queue.NewOrderStatusLogTask(queue.OrderStatusLogPayload{})
	if err != nil {
		t.Fatalf("build task failed: %v", err)
	}
	if err := consumer.handleOrderStatusLog(context.Background(), zero); err != nil {
		t.Fatalf("zero order id should be skipped, got %v", err)
	}
}

package worker

import (
	"context"
	"encoding/json"

	"github.com/kitoblarda/internal/logger"
	"github.com/kitoblarda/internal/models"
	"github.com/kitoblarda/internal/provider"
	"github.com/kitoblarda/internal/queue"

	"github.com/hibiken/asynq"
)

// Consumer processes queued tasks.
type Consumer struct {
	*provider.Container
}

// NewConsumer creates a consumer.
func NewConsumer(c *provider.Container) *Consumer {
	return &Consumer{
		Container: c,
	}
}

// Register attaches the handlers to the mux.
func (c *Consumer) Register(mux *asynq.ServeMux) {
	if c == nil || mux == nil {
		logger.Debugw("worker_register_skip_nil", "consumer_nil", c == nil, "mux_nil", mux == nil)
		return
	}
	mux.HandleFunc(queue.TaskOrderStatusLog, c.handleOrderStatusLog)
}

func (c *Consumer) handleOrderStatusLog(_ context.Context, task *asynq.Task) error {
	if c == nil || task == nil {
		logger.Debugw("worker_order_status_log_skip_nil", "consumer_nil", c == nil, "task_nil", task == nil)
		return nil
	}
	var payload queue.OrderStatusLogPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		logger.Warnw("worker_order_status_log_unmarshal_failed", "error", err)
		return err
	}
	if payload.OrderID == 0 {
		logger.Debugw("worker_order_status_log_skip_invalid_payload", "order_id", payload.OrderID)
		return nil
	}

	order, err := c.OrderRepo.GetByID(payload.OrderID)
	if err != nil {
		logger.Warnw("worker_order_status_log_fetch_order_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	if order == nil {
		// The order vanished; drop the audit row instead of retrying.
		logger.Debugw("worker_order_status_log_skip_order_not_found", "order_id", payload.OrderID)
		return nil
	}

	if err := c.StatusLogRepo.Create(&models.OrderStatusLog{
		OrderID:    payload.OrderID,
		FromStatus: payload.FromStatus,
		ToStatus:   payload.ToStatus,
		ActorID:    payload.ActorID,
	}); err != nil {
		logger.Warnw("worker_order_status_log_write_failed", "order_id", payload.OrderID, "error", err)
		return err
	}
	return nil
}

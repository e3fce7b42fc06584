package queue

import (
	"encoding/json"

	"github.com/kitoblarda/internal/constants"

	"github.com/hibiken/asynq"
)

const (
	// TaskOrderStatusLog writes an order audit trail row.
	TaskOrderStatusLog = constants.TaskOrderStatusLog
)

// OrderStatusLogPayload carries one audit trail row.
type OrderStatusLogPayload struct {
	OrderID    uint   `json:"order_id"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	ActorID    uint   `json:"actor_id"`
}

// NewOrderStatusLogTask builds the audit trail task.
func NewOrderStatusLogTask(payload OrderStatusLogPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskOrderStatusLog, body), nil
}

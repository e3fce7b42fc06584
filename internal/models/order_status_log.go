package models

import "time"

// OrderStatusLog is an audit row recorded for every status change.
// Rows are written asynchronously by the queue worker.
type OrderStatusLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	OrderID    uint      `gorm:"index;not null" json:"order_id"`
	FromStatus string    `gorm:"size:32;not null" json:"from_status"`
	ToStatus   string    `gorm:"size:32;not null" json:"to_status"`
	ActorID    uint      `gorm:"index" json:"actor_id"`
	CreatedAt  time.Time `json:"created_at"`
}

package models

import (
	"time"

	"github.com/kitoblarda/internal/constants"
)

// Order is a placed purchase moving through the fulfillment pipeline.
// Status changes go through compare-and-set updates keyed on the
// current status, never through blind saves.
type Order struct {
	ID                uint        `gorm:"primaryKey" json:"id"`
	UserID            uint        `gorm:"index;not null" json:"user_id"`
	User              *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Status            string      `gorm:"size:32;index;default:pending" json:"status"`
	TotalAmount       Money       `gorm:"type:varchar(32);not null" json:"total_amount"`
	Address           string      `gorm:"size:500;not null" json:"address"`
	Landmark          string      `gorm:"size:300" json:"landmark"`
	PaymentScreenshot string      `gorm:"size:500" json:"payment_screenshot"`
	Items             []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// IsTerminal reports whether no further transition can leave the
// current status.
func (o *Order) IsTerminal() bool {
	return o.Status == constants.OrderStatusDelivered || o.Status == constants.OrderStatusCancelled
}

package models

import "time"

// OrderItem is one line of an order with the price frozen at checkout.
type OrderItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"index;not null" json:"order_id"`
	BookID    uint      `gorm:"index;not null" json:"book_id"`
	Book      *Book     `gorm:"foreignKey:BookID" json:"book,omitempty"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	Price     Money     `gorm:"type:varchar(32);not null" json:"price"`
	CreatedAt time.Time `json:"created_at"`
}

// LineTotal returns Price * Quantity.
func (i *OrderItem) LineTotal() Money {
	return i.Price.MulInt(int64(i.Quantity))
}

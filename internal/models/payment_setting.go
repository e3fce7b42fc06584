package models

import "time"

// PaymentSetting holds the card number customers transfer to. At most
// one row is active at a time.
type PaymentSetting struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CardNumber string    `gorm:"size:32;not null" json:"card_number"`
	CardHolder string    `gorm:"size:200" json:"card_holder"`
	IsActive   bool      `gorm:"index;default:true" json:"is_active"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

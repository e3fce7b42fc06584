package models

import (
	"errors"
	"fmt"

	"github.com/kitoblarda/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// InitDefaultStaff makes sure a staff account exists so a fresh
// deployment can be administered immediately.
func InitDefaultStaff(db *gorm.DB, phone, password string) error {
	if phone == "" || password == "" {
		return nil
	}

	var existing User
	err := db.Where("phone = ?", phone).First(&existing).Error
	if err == nil {
		if !existing.IsStaff {
			if err := db.Model(&existing).Update("is_staff", true).Error; err != nil {
				return fmt.Errorf("promote staff user failed: %w", err)
			}
			logger.Infow("staff_user_promoted", "phone", phone)
		}
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup staff user failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash staff password failed: %w", err)
	}

	staff := User{
		Phone:        phone,
		PasswordHash: string(hash),
		FirstName:    "Admin",
		IsStaff:      true,
		IsActive:     true,
	}
	if err := db.Create(&staff).Error; err != nil {
		return fmt.Errorf("create staff user failed: %w", err)
	}
	logger.Infow("staff_user_created", "phone", phone)
	return nil
}

// EnsurePaymentSetting creates a placeholder active card row when none
// exists, so the payment page never renders empty on a new install.
func EnsurePaymentSetting(db *gorm.DB, cardNumber, cardHolder string) error {
	if cardNumber == "" {
		return nil
	}

	var count int64
	if err := db.Model(&PaymentSetting{}).Where("is_active = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("count payment settings failed: %w", err)
	}
	if count > 0 {
		return nil
	}

	setting := PaymentSetting{
		CardNumber: cardNumber,
		CardHolder: cardHolder,
		IsActive:   true,
	}
	if err := db.Create(&setting).Error; err != nil {
		return fmt.Errorf("create payment setting failed: %w", err)
	}
	logger.Infow("payment_setting_created")
	return nil
}

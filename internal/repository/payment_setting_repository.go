package repository

import (
	"errors"

	"github.com/kitoblarda/internal/models"

	"gorm.io/gorm"
)

// PaymentSettingRepository is the payment card data access interface.
type PaymentSettingRepository interface {
	GetActive() (*models.PaymentSetting, error)
	Replace(setting *models.PaymentSetting) error
	WithTx(tx *gorm.DB) *GormPaymentSettingRepository
}

// GormPaymentSettingRepository is the GORM implementation.
type GormPaymentSettingRepository struct {
	db *gorm.DB
}

// NewPaymentSettingRepository creates a payment setting repository.
func NewPaymentSettingRepository(db *gorm.DB) *GormPaymentSettingRepository {
	return &GormPaymentSettingRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormPaymentSettingRepository) WithTx(tx *gorm.DB) *GormPaymentSettingRepository {
	if tx == nil {
		return r
	}
	return &GormPaymentSettingRepository{db: tx}
}

// GetActive returns the active card row, nil when none is configured.
func (r *GormPaymentSettingRepository) GetActive() (*models.PaymentSetting, error) {
	var setting models.PaymentSetting
	if err := r.db.Where("is_active = ?", true).Order("id desc").First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &setting, nil
}

// Replace deactivates current rows and inserts the new card as the
// single active one.
func (r *GormPaymentSettingRepository) Replace(setting *models.PaymentSetting) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.PaymentSetting{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}
		setting.IsActive = true
		return tx.Create(setting).Error
	})
}

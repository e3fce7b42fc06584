package repository

import (
	"github.com/kitoblarda/internal/models"

	"gorm.io/gorm"
)

// OrderStatusLogRepository is the audit trail data access interface.
type OrderStatusLogRepository interface {
	Create(log *models.OrderStatusLog) error
	ListByOrder(orderID uint) ([]models.OrderStatusLog, error)
	WithTx(tx *gorm.DB) *GormOrderStatusLogRepository
}

// GormOrderStatusLogRepository is the GORM implementation.
type GormOrderStatusLogRepository struct {
	db *gorm.DB
}

// NewOrderStatusLogRepository creates a status log repository.
func NewOrderStatusLogRepository(db *gorm.DB) *GormOrderStatusLogRepository {
	return &GormOrderStatusLogRepository{db: db}
}

// WithTx binds the repository to a transaction.
func (r *GormOrderStatusLogRepository) WithTx(tx *gorm.DB) *GormOrderStatusLogRepository {
	if tx == nil {
		return r
	}
	return &GormOrderStatusLogRepository{db: tx}
}

// Create inserts an audit row.
func (r *GormOrderStatusLogRepository) Create(log *models.OrderStatusLog) error {
	return r.db.Create(log).Error
}

// ListByOrder returns the audit trail for an order, oldest first.
func (r *GormOrderStatusLogRepository) ListByOrder(orderID uint) ([]models.OrderStatusLog, error) {
	var logs []models.OrderStatusLog
	if err := r.db.Where("order_id = ?", orderID).Order("id asc").Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

package repository

import (
	"time"

	"gorm.io/gorm"
)

const (
	defaultPage     = 1
	defaultPageSize = 20
	maxPageSize     = 100
)

// OrderListFilter narrows order listings.
type OrderListFilter struct {
	UserID      uint
	Status      string
	Phone       string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Page        int
	PageSize    int
}

// BookListFilter narrows catalog listings.
type BookListFilter struct {
	CategoryID uint
	Search     string
	OnlyActive bool
	Page       int
	PageSize   int
}

func applyPagination(query *gorm.DB, page, pageSize int) *gorm.DB {
	if page < 1 {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}
	return query.Limit(pageSize).Offset((page - 1) * pageSize)
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Book is a catalog item. Price is snapshotted into carts and order
// items at add time, so later edits never move past totals.
type Book struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	CategoryID    uint           `gorm:"index;not null" json:"category_id"`
	Category      *Category      `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Title         string         `gorm:"size:300;not null" json:"title"`
	TitleRu       string         `gorm:"size:300" json:"title_ru"`
	Author        string         `gorm:"size:200" json:"author"`
	AuthorRu      string         `gorm:"size:200" json:"author_ru"`
	Description   string         `gorm:"type:text" json:"description"`
	DescriptionRu string         `gorm:"type:text" json:"description_ru"`
	Price         Money          `gorm:"type:varchar(32);not null" json:"price"`
	CoverType     string         `gorm:"size:10;default:hard" json:"cover_type"`
	Pages         int            `gorm:"default:0" json:"pages"`
	Image         string         `gorm:"size:500" json:"image"`
	Slug          string         `gorm:"size:300;uniqueIndex;not null" json:"slug"`
	IsActive      bool           `gorm:"default:true" json:"is_active"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

package models

import "time"

// Category groups books. Display names carry an Uzbek default and a
// Russian translation column.
type Category struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	NameRu    string    `gorm:"size:200" json:"name_ru"`
	Slug      string    `gorm:"size:200;uniqueIndex;not null" json:"slug"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

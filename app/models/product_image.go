package models

import (
	"time"

	"gorm.io/gorm"
)

// ProductImage belongs to at most one product. Images are never shared by
// reference across products: attaching one to another product clones the row.
type ProductImage struct {
	ID         string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID  string `gorm:"size:36;index" json:"product_id"`
	URL        string `gorm:"size:500;not null" json:"url"`
	StorageKey string `gorm:"size:255" json:"storage_key,omitempty"`
	AltText    string `gorm:"size:255" json:"alt_text,omitempty"`
	SortOrder  int    `gorm:"not null;default:0" json:"sort_order"`
	CreatedBy  string `gorm:"size:36;index" json:"created_by,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

package models

import (
	"time"

	"gorm.io/gorm"
)

// Tag carries an optional owner: vendor-created tags are only visible to
// their owner, admin-created tags (empty CreatedBy) are shared.
type Tag struct {
	ID        string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	CreatedBy string    `gorm:"size:36;index" json:"created_by,omitempty"`
	Products  []Product `gorm:"many2many:product_tags;" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

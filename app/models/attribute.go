package models

import (
	"time"

	"gorm.io/gorm"
)

// Attribute is a catalog dimension such as "Size". An empty CreatedBy marks
// a shared attribute every catalog manager can read; owned attributes are
// private to the owning vendor.
type Attribute struct {
	ID        string            `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string            `gorm:"size:100;not null" json:"name"`
	Slug      string            `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	CreatedBy string            `gorm:"size:36;index" json:"created_by,omitempty"`
	Options   []AttributeOption `gorm:"foreignKey:AttributeID" json:"options,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
	DeletedAt gorm.DeletedAt    `gorm:"index" json:"-"`
}

type AttributeOption struct {
	ID          string         `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	AttributeID string         `gorm:"size:36;not null;index" json:"attribute_id"`
	Value       string         `gorm:"size:100;not null" json:"value"`
	SortOrder   int            `gorm:"not null;default:0" json:"sort_order"`
	CreatedBy   string         `gorm:"size:36;index" json:"created_by,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-"`
}

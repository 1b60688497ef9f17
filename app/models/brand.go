package models

import (
	"time"

	"gorm.io/gorm"
)

type Brand struct {
	ID          string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   string `gorm:"size:36;index" json:"created_by,omitempty"`

	// When set, publish requests from the owning vendor are stored as
	// draft and an admin notification is raised instead.
	RequireProductReviewForPublish bool `gorm:"default:false" json:"require_product_review_for_publish"`

	Products  []Product `gorm:"many2many:product_brands;" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

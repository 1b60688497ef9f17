package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	CategoryRequestStatusPending  = "pending"
	CategoryRequestStatusApproved = "approved"
	CategoryRequestStatusRejected = "rejected"
)

// CategoryRequest is a vendor's proposal for a new category. Only pending
// requests may be linked to a product as a placeholder category.
type CategoryRequest struct {
	ID        string `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name      string `gorm:"size:100;not null" json:"name"`
	Note      string `gorm:"size:500" json:"note,omitempty"`
	Status    string `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedBy string `gorm:"size:36;index" json:"created_by"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-"`
}

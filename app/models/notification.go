package models

import (
	"time"
)

const (
	NotificationSeverityInfo    = "info"
	NotificationSeverityWarning = "warning"
)

// AdminNotification is a persisted message addressed to a single admin user.
// Metadata is a free-form JSON blob, e.g. requested_status/final_status for
// review-gated publish requests.
type AdminNotification struct {
	ID         string       `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID     string       `gorm:"size:36;not null;index" json:"user_id"`
	Title      string       `gorm:"size:255;not null" json:"title"`
	Message    string       `gorm:"type:text" json:"message"`
	Severity   string       `gorm:"size:20;not null;default:'info'" json:"severity"`
	EntityType string       `gorm:"size:50" json:"entity_type,omitempty"`
	EntityID   string       `gorm:"size:36;index" json:"entity_id,omitempty"`
	Metadata   AttributeMap `gorm:"type:json" json:"metadata,omitempty"`
	ReadAt     *time.Time   `json:"read_at,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

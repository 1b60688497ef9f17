package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// AttributeMap stores a variation's attribute-key to option-value mapping as
// a JSON column (for example {"size": "Large", "color": "Red"}).
type AttributeMap map[string]string

func (m AttributeMap) Value() (driver.Value, error) {
	if m == nil {
		m = AttributeMap{}
	}
	return json.Marshal(m)
}

func (m *AttributeMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(AttributeMap)
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		if s, ok := value.(string); ok {
			bytes = []byte(s)
		} else {
			return nil
		}
	}
	return json.Unmarshal(bytes, m)
}

// ProductVariation rows are replaced wholesale on every product save; they
// are never merged or diffed against the stored set.
type ProductVariation struct {
	ID         string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	ProductID  string           `gorm:"size:36;not null;index" json:"product_id"`
	Attributes AttributeMap     `gorm:"type:json" json:"attributes"`
	Price      *decimal.Decimal `gorm:"type:decimal(16,2)" json:"price,omitempty"`
	Sku        string           `gorm:"size:100" json:"sku,omitempty"`
	Stock      *int             `json:"stock,omitempty"`
	ImageID    *string          `gorm:"size:36" json:"image_id,omitempty"`
	SortOrder  int              `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `json:"-"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending    = 1
	OrderStatusProcessing = 2
	OrderStatusCompleted  = 3
	OrderStatusCancelled  = 4
)

// Order is read-only inside this service; rows are written by the storefront
// and surfaced here for the admin checkout review screen.
type Order struct {
	ID             string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	UserID         string          `gorm:"size:36;index" json:"user_id"`
	User           User            `gorm:"foreignKey:UserID" json:"-"`
	OrderCode      string          `gorm:"size:255;unique;not null" json:"order_code"`
	OrderDate      time.Time       `gorm:"not null" json:"order_date"`
	OrderItems     []OrderItem     `json:"items,omitempty"`
	BaseTotalPrice decimal.Decimal `gorm:"type:decimal(16,2)" json:"base_total_price"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(16,2)" json:"discount_amount"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(16,2)" json:"grand_total"`
	PaymentStatus  string          `gorm:"size:100" json:"payment_status"`
	Status         int             `gorm:"default:1" json:"status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
	DeletedAt      gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if o.ID == "" {
		o.ID = uuid.New().String()
	}
	return
}

type OrderItem struct {
	ID        string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	OrderID   string          `gorm:"size:36;not null;index" json:"order_id"`
	ProductID string          `gorm:"size:36;index" json:"product_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Sku       string          `gorm:"size:100" json:"sku"`
	Price     decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	Qty       int             `gorm:"not null" json:"qty"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"subtotal"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return
}

package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ProductStatusPublish  = "publish"
	ProductStatusDraft    = "draft"
	ProductStatusArchived = "archived"

	ProductTypeSimple   = "simple"
	ProductTypeVariable = "variable"
)

type Product struct {
	ID               string           `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CreatedBy        string           `gorm:"size:36;index" json:"created_by"`
	Owner            User             `gorm:"foreignKey:CreatedBy" json:"-"`
	Name             string           `gorm:"size:255;not null" json:"name"`
	Slug             string           `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	ShortDescription string           `gorm:"size:500" json:"short_description"`
	Description      string           `gorm:"type:text" json:"description"`
	Sku              string           `gorm:"size:100;uniqueIndex" json:"sku"`
	SkuAutoGenerated bool             `gorm:"default:false" json:"sku_auto_generated"`
	Price            decimal.Decimal  `gorm:"type:decimal(16,2);not null" json:"price"`
	DiscountPrice    *decimal.Decimal `gorm:"type:decimal(16,2)" json:"discount_price,omitempty"`
	Stock            int              `gorm:"not null;default:0" json:"stock"`
	Status           string           `gorm:"size:20;not null;default:'draft';index" json:"status"`
	ProductType      string           `gorm:"size:20;not null;default:'simple'" json:"product_type"`
	Condition        string           `gorm:"size:50" json:"condition,omitempty"`
	Packaging        string           `gorm:"size:100" json:"packaging,omitempty"`
	ReturnPolicy     string           `gorm:"size:255" json:"return_policy,omitempty"`
	MainImageID      *string          `gorm:"size:36" json:"main_image_id,omitempty"`

	Categories    []Category         `gorm:"many2many:product_categories;" json:"categories,omitempty"`
	Tags          []Tag              `gorm:"many2many:product_tags;" json:"tags,omitempty"`
	Brands        []Brand            `gorm:"many2many:product_brands;" json:"brands,omitempty"`
	ProductImages []ProductImage     `json:"images,omitempty"`
	Variations    []ProductVariation `json:"variations,omitempty"`

	// CategoryRequestIDs is assembled from the link table for API responses;
	// it is not a column.
	CategoryRequestIDs []string `gorm:"-" json:"category_request_ids,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

type ProductCategory struct {
	ProductID  string `gorm:"size:36;primaryKey"`
	CategoryID string `gorm:"size:36;primaryKey"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type ProductTag struct {
	ProductID string `gorm:"size:36;primaryKey"`
	TagID     string `gorm:"size:36;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type ProductBrand struct {
	ProductID string `gorm:"size:36;primaryKey"`
	BrandID   string `gorm:"size:36;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProductCategoryRequest links a product to a vendor's pending category
// request, used as a placeholder until an admin creates the real category.
type ProductCategoryRequest struct {
	ProductID         string `gorm:"size:36;primaryKey"`
	CategoryRequestID string `gorm:"size:36;primaryKey"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

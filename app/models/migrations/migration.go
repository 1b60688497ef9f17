package migrations

import (
	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Tag{},
		&models.Brand{},
		&models.Attribute{},
		&models.AttributeOption{},
		&models.Product{},
		&models.ProductCategory{},
		&models.ProductTag{},
		&models.ProductBrand{},
		&models.ProductCategoryRequest{},
		&models.ProductImage{},
		&models.ProductVariation{},
		&models.CategoryRequest{},
		&models.AdminNotification{},
		&models.Order{},
		&models.OrderItem{},
	)
}

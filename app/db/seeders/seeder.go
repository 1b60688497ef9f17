package seeders

import (
	"context"

	"github.com/velamart/catalog-admin/app/db/fakers"
	"github.com/velamart/catalog-admin/app/helpers"
	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

// Seed populates a fresh database with one admin, one vendor and a small
// sample catalog. Running it twice creates duplicate catalog rows; the admin
// and vendor accounts are looked up by email first.
func Seed(ctx context.Context, db *gorm.DB) error {
	admin := &models.User{
		FirstName: "Catalog",
		LastName:  "Admin",
		Email:     "admin@example.com",
		Password:  helpers.HashPassword("password"),
		Role:      models.RoleAdmin,
	}
	admin.ID = "00000000-0000-0000-0000-000000000001"
	if err := db.WithContext(ctx).FirstOrCreate(admin, "email = ?", admin.Email).Error; err != nil {
		return err
	}

	vendor := fakers.UserFaker(models.RoleVendor)
	vendor.Email = "vendor@example.com"
	if err := db.WithContext(ctx).FirstOrCreate(vendor, "email = ?", vendor.Email).Error; err != nil {
		return err
	}

	brand := fakers.BrandFaker(vendor.ID)
	if err := db.WithContext(ctx).Create(brand).Error; err != nil {
		return err
	}

	for i := 0; i < 3; i++ {
		category := fakers.CategoryFaker()
		if err := db.WithContext(ctx).Create(category).Error; err != nil {
			return err
		}
		for j := 0; j < 4; j++ {
			product := fakers.ProductFaker(vendor.ID, category)
			if err := db.WithContext(ctx).Create(product).Error; err != nil {
				return err
			}
			link := models.ProductBrand{ProductID: product.ID, BrandID: brand.ID}
			if err := db.WithContext(ctx).Create(&link).Error; err != nil {
				return err
			}
		}
	}

	tag := fakers.TagFaker("")
	return db.WithContext(ctx).Create(tag).Error
}

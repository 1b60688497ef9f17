package repositories

import (
	"context"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

type ProductVariationRepositoryImpl interface {
	// ReplaceAll deletes every variation row for the product, then inserts
	// the submitted rows in order. Full replace, never a merge.
	ReplaceAll(ctx context.Context, productID string, variations []models.ProductVariation) error
	GetByProductID(ctx context.Context, productID string) ([]models.ProductVariation, error)
	DeleteByProductID(ctx context.Context, productID string) error
}

type productVariationRepository struct {
	db *gorm.DB
}

func NewProductVariationRepository(db *gorm.DB) ProductVariationRepositoryImpl {
	return &productVariationRepository{db: db}
}

func (r *productVariationRepository) ReplaceAll(ctx context.Context, productID string, variations []models.ProductVariation) error {
	if err := r.db.WithContext(ctx).Unscoped().Delete(&models.ProductVariation{}, "product_id = ?", productID).Error; err != nil {
		return err
	}
	if len(variations) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&variations).Error
}

func (r *productVariationRepository) GetByProductID(ctx context.Context, productID string) ([]models.ProductVariation, error) {
	var variations []models.ProductVariation
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sort_order ASC").
		Find(&variations).Error
	if err != nil {
		return nil, err
	}
	return variations, nil
}

func (r *productVariationRepository) DeleteByProductID(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).Unscoped().Delete(&models.ProductVariation{}, "product_id = ?", productID).Error
}

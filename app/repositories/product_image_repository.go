package repositories

import (
	"context"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

type ProductImageRepositoryImpl interface {
	Create(ctx context.Context, image *models.ProductImage) error
	UpdateSortOrder(ctx context.Context, id string, sortOrder int) error
	GetByID(ctx context.Context, id string) (*models.ProductImage, error)
	GetByProductID(ctx context.Context, productID string) ([]models.ProductImage, error)
	DeleteByProductID(ctx context.Context, productID string) error
}

type productImageRepository struct {
	db *gorm.DB
}

func NewProductImageRepository(db *gorm.DB) ProductImageRepositoryImpl {
	return &productImageRepository{db: db}
}

func (r *productImageRepository) Create(ctx context.Context, image *models.ProductImage) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *productImageRepository) UpdateSortOrder(ctx context.Context, id string, sortOrder int) error {
	return r.db.WithContext(ctx).
		Model(&models.ProductImage{}).
		Where("id = ?", id).
		Update("sort_order", sortOrder).Error
}

func (r *productImageRepository) GetByID(ctx context.Context, id string) (*models.ProductImage, error) {
	var image models.ProductImage
	err := r.db.WithContext(ctx).First(&image, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &image, nil
}

func (r *productImageRepository) GetByProductID(ctx context.Context, productID string) ([]models.ProductImage, error) {
	var images []models.ProductImage
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("sort_order ASC").
		Find(&images).Error
	if err != nil {
		return nil, err
	}
	return images, nil
}

func (r *productImageRepository) DeleteByProductID(ctx context.Context, productID string) error {
	return r.db.WithContext(ctx).Delete(&models.ProductImage{}, "product_id = ?", productID).Error
}

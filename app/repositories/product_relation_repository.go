package repositories

import (
	"context"
	"time"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProductRelationRepositoryImpl manages the many-to-many link tables. Every
// Replace* call swaps the full link set for a product: existing rows are
// deleted, then the deduplicated target list is inserted with
// conflict-ignore semantics on (product_id, target_id). Calling twice with
// the same list is a no-op after the first call.
type ProductRelationRepositoryImpl interface {
	ReplaceCategories(ctx context.Context, productID string, categoryIDs []string) error
	ReplaceTags(ctx context.Context, productID string, tagIDs []string) error
	ReplaceBrands(ctx context.Context, productID string, brandIDs []string) error
	ReplaceCategoryRequests(ctx context.Context, productID string, requestIDs []string) error
	CategoryRequestIDs(ctx context.Context, productID string) ([]string, error)
	CategoryLinkCount(ctx context.Context, productID string) (int64, error)
	DeleteAllForProduct(ctx context.Context, productID string) error
}

type productRelationRepository struct {
	db *gorm.DB
}

func NewProductRelationRepository(db *gorm.DB) ProductRelationRepositoryImpl {
	return &productRelationRepository{db: db}
}

func dedupIDs(ids []string) []string {
	seen := make(map[string]bool, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (r *productRelationRepository) ReplaceCategories(ctx context.Context, productID string, categoryIDs []string) error {
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductCategory{}).Error; err != nil {
		return err
	}
	ids := dedupIDs(categoryIDs)
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.ProductCategory, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ProductCategory{ProductID: productID, CategoryID: id, CreatedAt: now, UpdatedAt: now})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *productRelationRepository) ReplaceTags(ctx context.Context, productID string, tagIDs []string) error {
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductTag{}).Error; err != nil {
		return err
	}
	ids := dedupIDs(tagIDs)
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.ProductTag, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ProductTag{ProductID: productID, TagID: id, CreatedAt: now, UpdatedAt: now})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *productRelationRepository) ReplaceBrands(ctx context.Context, productID string, brandIDs []string) error {
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductBrand{}).Error; err != nil {
		return err
	}
	ids := dedupIDs(brandIDs)
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.ProductBrand, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ProductBrand{ProductID: productID, BrandID: id, CreatedAt: now, UpdatedAt: now})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *productRelationRepository) ReplaceCategoryRequests(ctx context.Context, productID string, requestIDs []string) error {
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductCategoryRequest{}).Error; err != nil {
		return err
	}
	ids := dedupIDs(requestIDs)
	if len(ids) == 0 {
		return nil
	}
	now := time.Now()
	rows := make([]models.ProductCategoryRequest, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, models.ProductCategoryRequest{ProductID: productID, CategoryRequestID: id, CreatedAt: now, UpdatedAt: now})
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error
}

func (r *productRelationRepository) CategoryRequestIDs(ctx context.Context, productID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&models.ProductCategoryRequest{}).
		Where("product_id = ?", productID).
		Pluck("category_request_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *productRelationRepository) CategoryLinkCount(ctx context.Context, productID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.ProductCategory{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	return count, err
}

// DeleteAllForProduct removes every link row for a deleted product. The
// store does not cascade link tables, so delete cleans them up explicitly.
func (r *productRelationRepository) DeleteAllForProduct(ctx context.Context, productID string) error {
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductCategory{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductTag{}).Error; err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductBrand{}).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Where("product_id = ?", productID).Delete(&models.ProductCategoryRequest{}).Error
}

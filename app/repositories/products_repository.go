package repositories

import (
	"context"
	"strings"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

// ProductFilter narrows List queries. Zero values mean "no filter".
type ProductFilter struct {
	Status       string
	CategorySlug string
	Keyword      string
	CreatedBy    string
	// BrandIDs widens a CreatedBy filter to products linked to any of the
	// given brands, used for vendor-scoped listings.
	BrandIDs []string
}

type ProductRepositoryImpl interface {
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	UpdateColumns(ctx context.Context, id string, values map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Product, error)
	GetJoined(ctx context.Context, id string) (*models.Product, error)
	List(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
	SKUExists(ctx context.Context, sku, excludeID string) (bool, error)
	LinkedBrandIDs(ctx context.Context, productID string) ([]string, error)
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepositoryImpl {
	return &productRepository{db: db}
}

func (p *productRepository) Create(ctx context.Context, product *models.Product) error {
	// Associations are written by the relation/image/variation services, not
	// by gorm's association autosave.
	return p.db.WithContext(ctx).Omit("Categories", "Tags", "Brands", "ProductImages", "Variations").Create(product).Error
}

func (p *productRepository) Update(ctx context.Context, product *models.Product) error {
	return p.db.WithContext(ctx).Omit("Categories", "Tags", "Brands", "ProductImages", "Variations").Save(product).Error
}

func (p *productRepository) UpdateColumns(ctx context.Context, id string, values map[string]interface{}) error {
	return p.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Updates(values).Error
}

func (p *productRepository) Delete(ctx context.Context, id string) error {
	return p.db.WithContext(ctx).Unscoped().Delete(&models.Product{}, "id = ?", id).Error
}

func (p *productRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// GetJoined loads the product with every relation the API response needs.
func (p *productRepository) GetJoined(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := p.db.WithContext(ctx).
		Preload("Categories").
		Preload("Tags").
		Preload("Brands").
		Preload("ProductImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.sort_order ASC")
		}).
		Preload("Variations", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_variations.sort_order ASC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (p *productRepository) List(ctx context.Context, filter ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	var products []models.Product
	var total int64

	base := p.db.WithContext(ctx).Model(&models.Product{})

	if filter.Status != "" {
		base = base.Where("products.status = ?", filter.Status)
	}
	if filter.Keyword != "" {
		keyword := "%" + strings.ToLower(filter.Keyword) + "%"
		base = base.Where("LOWER(products.name) LIKE ? OR LOWER(products.short_description) LIKE ?", keyword, keyword)
	}
	if filter.CategorySlug != "" {
		base = base.
			Joins("JOIN product_categories pc ON pc.product_id = products.id").
			Joins("JOIN categories c ON c.id = pc.category_id").
			Where("c.slug = ?", filter.CategorySlug)
	}
	if filter.CreatedBy != "" {
		if len(filter.BrandIDs) > 0 {
			// EXISTS instead of a join keeps rows unique, so Count stays a
			// plain COUNT(*) over products.
			base = base.Where(
				"products.created_by = ? OR EXISTS (SELECT 1 FROM product_brands pb WHERE pb.product_id = products.id AND pb.brand_id IN ?)",
				filter.CreatedBy, filter.BrandIDs,
			)
		} else {
			base = base.Where("products.created_by = ?", filter.CreatedBy)
		}
	}

	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := base.
		Preload("Categories").
		Preload("ProductImages", func(db *gorm.DB) *gorm.DB {
			return db.Order("product_images.sort_order ASC")
		}).
		Order("products.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&products).Error

	return products, total, err
}

func (p *productRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	query := p.db.WithContext(ctx).Model(&models.Product{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *productRepository) SKUExists(ctx context.Context, sku, excludeID string) (bool, error) {
	var count int64
	query := p.db.WithContext(ctx).Model(&models.Product{}).Where("sku = ?", sku)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (p *productRepository) LinkedBrandIDs(ctx context.Context, productID string) ([]string, error) {
	var brandIDs []string
	err := p.db.WithContext(ctx).
		Model(&models.ProductBrand{}).
		Where("product_id = ?", productID).
		Pluck("brand_id", &brandIDs).Error
	if err != nil {
		return nil, err
	}
	return brandIDs, nil
}

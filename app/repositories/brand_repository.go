package repositories

import (
	"context"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

type BrandRepositoryImpl interface {
	Create(ctx context.Context, brand *models.Brand) error
	Update(ctx context.Context, brand *models.Brand) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Brand, error)
	GetBySlug(ctx context.Context, slug string) (*models.Brand, error)
	GetOwnedBy(ctx context.Context, userID string) ([]models.Brand, error)
	GetVisible(ctx context.Context, userID string) ([]models.Brand, error)
	GetAll(ctx context.Context) ([]models.Brand, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)
}

type brandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) BrandRepositoryImpl {
	return &brandRepository{db: db}
}

func (r *brandRepository) Create(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Create(brand).Error
}

func (r *brandRepository) Update(ctx context.Context, brand *models.Brand) error {
	return r.db.WithContext(ctx).Save(brand).Error
}

func (r *brandRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Brand{}, "id = ?", id).Error
}

func (r *brandRepository) GetByID(ctx context.Context, id string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetBySlug(ctx context.Context, slug string) (*models.Brand, error) {
	var brand models.Brand
	err := r.db.WithContext(ctx).First(&brand, "slug = ?", slug).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (r *brandRepository) GetOwnedBy(ctx context.Context, userID string) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).Where("created_by = ?", userID).Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) GetVisible(ctx context.Context, userID string) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).
		Where("created_by = '' OR created_by IS NULL OR created_by = ?", userID).
		Order("name ASC").
		Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) GetAll(ctx context.Context) ([]models.Brand, error) {
	var brands []models.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&brands).Error
	if err != nil {
		return nil, err
	}
	return brands, nil
}

func (r *brandRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Brand{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

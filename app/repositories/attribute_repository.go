package repositories

import (
	"context"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	Create(ctx context.Context, attribute *models.Attribute) error
	Update(ctx context.Context, attribute *models.Attribute) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*models.Attribute, error)
	// GetVisible returns shared attributes plus attributes owned by the user.
	GetVisible(ctx context.Context, userID string) ([]models.Attribute, error)
	GetAll(ctx context.Context) ([]models.Attribute, error)
	SlugExists(ctx context.Context, slug, excludeID string) (bool, error)

	CreateOption(ctx context.Context, option *models.AttributeOption) error
	UpdateOption(ctx context.Context, option *models.AttributeOption) error
	DeleteOption(ctx context.Context, id string) error
	GetOptionByID(ctx context.Context, id string) (*models.AttributeOption, error)
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Create(attribute).Error
}

func (r *attributeRepository) Update(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Omit("Options").Save(attribute).Error
}

func (r *attributeRepository) Delete(ctx context.Context, id string) error {
	if err := r.db.WithContext(ctx).Delete(&models.AttributeOption{}, "attribute_id = ?", id).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&models.Attribute{}, "id = ?", id).Error
}

func (r *attributeRepository) GetByID(ctx context.Context, id string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("attribute_options.sort_order ASC")
		}).
		First(&attribute, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetVisible(ctx context.Context, userID string) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("attribute_options.sort_order ASC")
		}).
		Where("created_by = '' OR created_by IS NULL OR created_by = ?", userID).
		Order("name ASC").
		Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) GetAll(ctx context.Context) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("attribute_options.sort_order ASC")
		}).
		Order("name ASC").
		Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) SlugExists(ctx context.Context, slug, excludeID string) (bool, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Attribute{}).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *attributeRepository) CreateOption(ctx context.Context, option *models.AttributeOption) error {
	return r.db.WithContext(ctx).Create(option).Error
}

func (r *attributeRepository) UpdateOption(ctx context.Context, option *models.AttributeOption) error {
	return r.db.WithContext(ctx).Save(option).Error
}

func (r *attributeRepository) DeleteOption(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.AttributeOption{}, "id = ?", id).Error
}

func (r *attributeRepository) GetOptionByID(ctx context.Context, id string) (*models.AttributeOption, error) {
	var option models.AttributeOption
	err := r.db.WithContext(ctx).First(&option, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &option, nil
}

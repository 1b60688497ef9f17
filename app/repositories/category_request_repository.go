package repositories

import (
	"context"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

// CategoryRequestRepositoryImpl stores vendor category proposals. Only
// pending requests are linkable to products; what happens to existing links
// when a request is later approved or rejected is undefined upstream, so no
// reconciliation runs here — the linker simply refuses non-pending ids.
type CategoryRequestRepositoryImpl interface {
	Create(ctx context.Context, request *models.CategoryRequest) error
	GetByID(ctx context.Context, id string) (*models.CategoryRequest, error)
	GetPendingByIDs(ctx context.Context, ids []string) ([]models.CategoryRequest, error)
	GetByCreator(ctx context.Context, userID string) ([]models.CategoryRequest, error)
	GetAll(ctx context.Context) ([]models.CategoryRequest, error)
}

type categoryRequestRepository struct {
	db *gorm.DB
}

func NewCategoryRequestRepository(db *gorm.DB) CategoryRequestRepositoryImpl {
	return &categoryRequestRepository{db: db}
}

func (r *categoryRequestRepository) Create(ctx context.Context, request *models.CategoryRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *categoryRequestRepository) GetByID(ctx context.Context, id string) (*models.CategoryRequest, error) {
	var request models.CategoryRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &request, nil
}

func (r *categoryRequestRepository) GetPendingByIDs(ctx context.Context, ids []string) ([]models.CategoryRequest, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var requests []models.CategoryRequest
	err := r.db.WithContext(ctx).
		Where("id IN ? AND status = ?", ids, models.CategoryRequestStatusPending).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *categoryRequestRepository) GetByCreator(ctx context.Context, userID string) ([]models.CategoryRequest, error) {
	var requests []models.CategoryRequest
	err := r.db.WithContext(ctx).
		Where("created_by = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *categoryRequestRepository) GetAll(ctx context.Context) ([]models.CategoryRequest, error) {
	var requests []models.CategoryRequest
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

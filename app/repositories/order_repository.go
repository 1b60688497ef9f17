package repositories

import (
	"context"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

// OrderRepositoryImpl backs the read-only admin checkout review screen.
type OrderRepositoryImpl interface {
	GetPaginated(ctx context.Context, limit, offset int) ([]models.Order, int64, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepositoryImpl {
	return &orderRepository{db: db}
}

func (r *orderRepository) GetPaginated(ctx context.Context, limit, offset int) ([]models.Order, int64, error) {
	var orders []models.Order
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		Order("order_date DESC").
		Limit(limit).
		Offset(offset).
		Find(&orders).Error

	return orders, total, err
}

func (r *orderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems").
		First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

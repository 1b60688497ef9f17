package repositories

import (
	"context"
	"time"

	"github.com/velamart/catalog-admin/app/models"
	"gorm.io/gorm"
)

type NotificationRepositoryImpl interface {
	CreateBatch(ctx context.Context, notifications []models.AdminNotification) error
	GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.AdminNotification, int64, error)
	MarkRead(ctx context.Context, id, userID string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepositoryImpl {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) CreateBatch(ctx context.Context, notifications []models.AdminNotification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&notifications).Error
}

func (r *notificationRepository) GetByUserID(ctx context.Context, userID string, limit, offset int) ([]models.AdminNotification, int64, error) {
	var notifications []models.AdminNotification
	var total int64

	if err := r.db.WithContext(ctx).
		Model(&models.AdminNotification{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notifications).Error

	return notifications, total, err
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, userID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).
		Model(&models.AdminNotification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("read_at", &now).Error
}

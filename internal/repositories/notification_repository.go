package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"foodiesbnb/internal/models/db_models"
)

type NotificationRepository interface {
	InsertTx(ctx context.Context, notification *db_models.Notification) error
	ListByUser(ctx context.Context, userID string) ([]db_models.Notification, error)
	FindByID(ctx context.Context, id string) (*db_models.Notification, error)
	MarkRead(ctx context.Context, id string) error
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (n *notificationRepository) InsertTx(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n *notificationRepository) ListByUser(ctx context.Context, userID string) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := n.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	if err != nil {
		return nil, err
	}
	return notifications, nil
}

func (n *notificationRepository) FindByID(ctx context.Context, id string) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := n.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (n *notificationRepository) MarkRead(ctx context.Context, id string) error {
	return n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ?", id).
		Update("read", true).Error
}

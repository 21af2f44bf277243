package services

import (
	"context"

	"foodiesbnb/internal/models/response_models"
	"foodiesbnb/internal/repositories"
	"foodiesbnb/pkg/utils"
)

type NotificationServiceInterface interface {
	List(ctx context.Context, userID string) ([]response_models.NotificationResponse, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationServiceInterface {
	return &NotificationService{notificationRepo: notificationRepo}
}

func (n *NotificationService) List(ctx context.Context, userID string) ([]response_models.NotificationResponse, error) {
	notifications, err := n.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.NotificationResponse, 0, len(notifications))
	for _, notification := range notifications {
		resp := response_models.NotificationResponse{
			ID:        notification.ID.String(),
			Type:      notification.Type,
			Title:     notification.Title,
			Message:   notification.Message,
			Read:      notification.Read,
			CreatedAt: utils.FormatTimestamp(notification.CreatedAt),
		}
		if notification.RelatedID != nil {
			resp.RelatedID = notification.RelatedID.String()
		}
		out = append(out, resp)
	}
	return out, nil
}

func (n *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	notification, err := n.notificationRepo.FindByID(ctx, notificationID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if notification == nil {
		return utils.ErrNotFound
	}
	if notification.UserID.String() != userID {
		return utils.ErrForbidden
	}
	if err := n.notificationRepo.MarkRead(ctx, notificationID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

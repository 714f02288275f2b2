package usecase

import (
	"context"

	"esimhub/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the notification inbox use cases.
type NotificationUsecase interface {
	// ListNotifications retrieves a user's notifications with pagination.
	ListNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications.
	CountUnread(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead sets the read flag on one notification owned by the user.
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error

	// MarkAllRead sets the read flag on all of the user's notifications.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

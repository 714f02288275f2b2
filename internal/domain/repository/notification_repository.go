package repository

import (
	"context"
	"errors"

	"esimhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrNotificationNotFound is returned when a notification is not found.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification database operations.
type NotificationRepository interface {
	// CreateNotification persists a new lifecycle notification.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotificationsByUser retrieves a user's notifications, newest first.
	FindNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnreadByUser returns the number of unread notifications for a user.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkNotificationRead sets the read flag on a single notification owned
	// by the user.
	MarkNotificationRead(ctx context.Context, userID, id uuid.UUID) error

	// MarkAllRead sets the read flag on every notification owned by a user.
	MarkAllRead(ctx context.Context, userID uuid.UUID) error
}

package impl

import (
	"context"
	"testing"

	"esimhub/internal/domain/entity"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/repository"
	mockRepo "esimhub/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)
	ctx := context.Background()

	userID := uuid.New()
	notifications := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationOrderReady},
	}
	notificationRepo.EXPECT().
		FindNotificationsByUser(ctx, userID, 20, 0).
		Return(notifications, nil)

	result, err := svc.ListNotifications(ctx, userID, 20, 0)

	require.NoError(t, err)
	assert.Equal(t, notifications, result)
}

func TestNotificationService_CountUnread(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)
	ctx := context.Background()

	userID := uuid.New()
	notificationRepo.EXPECT().CountUnreadByUser(ctx, userID).Return(int64(3), nil)

	count, err := svc.CountUnread(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)
	ctx := context.Background()

	userID := uuid.New()
	notificationID := uuid.New()
	notificationRepo.EXPECT().MarkNotificationRead(ctx, userID, notificationID).Return(nil)

	err := svc.MarkRead(ctx, userID, notificationID)

	require.NoError(t, err)
}

func TestNotificationService_MarkRead_NotFound(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)
	ctx := context.Background()

	userID := uuid.New()
	notificationID := uuid.New()
	notificationRepo.EXPECT().
		MarkNotificationRead(ctx, userID, notificationID).
		Return(repository.ErrNotificationNotFound)

	err := svc.MarkRead(ctx, userID, notificationID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	notificationRepo := mockRepo.NewMockNotificationRepository(t)
	svc := NewNotificationService(notificationRepo)
	ctx := context.Background()

	userID := uuid.New()
	notificationRepo.EXPECT().MarkAllRead(ctx, userID).Return(nil)

	err := svc.MarkAllRead(ctx, userID)

	require.NoError(t, err)
}

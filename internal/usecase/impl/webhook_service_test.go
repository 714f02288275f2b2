package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"esimhub/internal/domain/constants"
	"esimhub/internal/domain/entity"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/repository"
	"esimhub/internal/domain/service"
	mockRepo "esimhub/internal/mocks/repository"
	mockSvc "esimhub/internal/mocks/service"
	"esimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type webhookServiceMocks struct {
	webhookLogRepo   *mockRepo.MockWebhookLogRepository
	esimRepo         *mockRepo.MockEsimRepository
	orderRepo        *mockRepo.MockOrderRepository
	notificationRepo *mockRepo.MockNotificationRepository
	txManager        *mockRepo.MockTransactionManager
	provisioningSvc  *mockSvc.MockProvisioningService
	pushSvc          *mockSvc.MockPushService
	eventPublisher   *mockSvc.MockEventPublisher
}

func createTestWebhookService(t *testing.T) (usecase.WebhookUsecase, *webhookServiceMocks) {
	mocks := &webhookServiceMocks{
		webhookLogRepo:   mockRepo.NewMockWebhookLogRepository(t),
		esimRepo:         mockRepo.NewMockEsimRepository(t),
		orderRepo:        mockRepo.NewMockOrderRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		txManager:        mockRepo.NewMockTransactionManager(t),
		provisioningSvc:  mockSvc.NewMockProvisioningService(t),
		pushSvc:          mockSvc.NewMockPushService(t),
		eventPublisher:   mockSvc.NewMockEventPublisher(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewWebhookService(
		logger,
		mocks.webhookLogRepo,
		mocks.esimRepo,
		mocks.orderRepo,
		mocks.notificationRepo,
		mocks.txManager,
		mocks.provisioningSvc,
		mocks.pushSvc,
		mocks.eventPublisher,
	)

	return svc, mocks
}

// expectAudit wires the audit entry write and the final outcome update.
func (m *webhookServiceMocks) expectAudit(ctx context.Context, eventType, errText string) {
	m.webhookLogRepo.EXPECT().
		CreateEntry(ctx, mock.MatchedBy(func(entry *entity.WebhookLogEntry) bool {
			return entry.EventType == eventType
		})).
		Return(nil)
	m.webhookLogRepo.EXPECT().MarkProcessed(ctx, mock.Anything, errText).Return(nil)
}

// expectAuditFailure wires the audit entry write plus an outcome update
// carrying a non-empty error text.
func (m *webhookServiceMocks) expectAuditFailure(ctx context.Context, eventType string) {
	m.webhookLogRepo.EXPECT().
		CreateEntry(ctx, mock.MatchedBy(func(entry *entity.WebhookLogEntry) bool {
			return entry.EventType == eventType
		})).
		Return(nil)
	m.webhookLogRepo.EXPECT().
		MarkProcessed(ctx, mock.Anything, mock.MatchedBy(func(errText string) bool {
			return errText != ""
		})).
		Return(nil)
}

func TestWebhookService_Handle_MalformedPayload(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	mocks.expectAudit(ctx, "UNKNOWN", "malformed payload")

	result, err := svc.Handle(ctx, []byte(`{not json`))

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrWebhookPayloadInvalid)
	assert.Nil(t, result)
}

func TestWebhookService_Handle_AuditWriteFailureAbortsDispatch(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	mocks.webhookLogRepo.EXPECT().
		CreateEntry(ctx, mock.Anything).
		Return(assert.AnError)

	result, err := svc.Handle(ctx, []byte(`{"event":"DATA_USAGE","iccid":"8944500000000000000"}`))

	require.Error(t, err)
	assert.Nil(t, result)
}

func TestWebhookService_Handle_UnsupportedEventTypeFails(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	mocks.expectAuditFailure(ctx, "SOMETHING_ELSE")

	result, err := svc.Handle(ctx, []byte(`{"event":"SOMETHING_ELSE"}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported webhook event type")
	assert.Nil(t, result)
}

func TestWebhookService_Handle_OrderFulfillment(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	userID := uuid.New()
	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      userID,
		OrderNo:     "ORD-1001",
		PackageCode: "PKG-JP-5GB",
		Status:      entity.OrderStatusPending,
	}
	profile := &service.ProfileInfo{
		ICCID:          "8944500000000000001",
		OrderNo:        order.OrderNo,
		ActivationCode: "LPA:1$smdp.example.com$AAAA-BBBB",
		ProviderStatus: entity.ProviderStatusGotResource,
		DataTotal:      5 * 1024 * 1024 * 1024,
	}

	mocks.expectAudit(ctx, constants.WebhookEventOrderStatus, "")
	mocks.orderRepo.EXPECT().FindOrderByOrderNo(ctx, order.OrderNo).Return(order, nil)
	mocks.provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{OrderNo: order.OrderNo}).
		Return([]*service.ProfileInfo{profile}, nil)

	txEsimRepo := mockRepo.NewMockEsimRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	txNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEsimRepository().Return(txEsimRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)
	factory.EXPECT().NewNotificationRepository().Return(txNotificationRepo)

	txEsimRepo.EXPECT().
		CreateEsim(ctx, mock.MatchedBy(func(esim *entity.Esim) bool {
			return esim.ICCID == profile.ICCID &&
				esim.UserID == userID &&
				esim.Status == entity.EsimStatusActive
		})).
		Return(nil)
	txOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCompleted).Return(nil)
	txNotificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	mocks.pushSvc.EXPECT().
		SendToUser(ctx, userID, "eSIM Ready", fmt.Sprintf("Your eSIM order %s is ready!", order.OrderNo), mock.Anything).
		Return(nil)
	mocks.eventPublisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.MatchedBy(func(event *service.EsimLifecycleEvent) bool {
			return event.EventType == constants.EventOrderFulfilled && event.ICCID == profile.ICCID
		})).
		Return(nil)

	payload := []byte(`{"event":"ORDER_STATUS","orderNo":"ORD-1001","orderStatus":"GOT_RESOURCE"}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, entity.NotificationOrderReady, result.Notifications[0].Type)
	assert.Equal(t, "Your eSIM order ORD-1001 is ready!", result.Notifications[0].Message)
}

func TestWebhookService_Handle_OrderFulfillment_AlreadyCompleted(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		OrderNo: "ORD-1002",
		Status:  entity.OrderStatusCompleted,
	}

	mocks.expectAudit(ctx, constants.WebhookEventOrderStatus, "")
	mocks.orderRepo.EXPECT().FindOrderByOrderNo(ctx, order.OrderNo).Return(order, nil)

	payload := []byte(`{"event":"ORDER_STATUS","orderNo":"ORD-1002","orderStatus":"GOT_RESOURCE"}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.False(t, result.Processed)
	assert.Contains(t, result.Skipped, "already fulfilled")
	assert.Empty(t, result.Notifications)
}

func TestWebhookService_Handle_OrderFulfillment_DuplicateProfile(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	order := &entity.Order{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		OrderNo:     "ORD-1003",
		PackageCode: "PKG-EU-10GB",
		Status:      entity.OrderStatusPending,
	}
	profile := &service.ProfileInfo{
		ICCID:          "8944500000000000002",
		OrderNo:        order.OrderNo,
		ProviderStatus: entity.ProviderStatusGotResource,
	}

	mocks.expectAudit(ctx, constants.WebhookEventOrderStatus, "")
	mocks.orderRepo.EXPECT().FindOrderByOrderNo(ctx, order.OrderNo).Return(order, nil)
	mocks.provisioningSvc.EXPECT().
		QueryProfiles(ctx, &service.ProfileQuery{OrderNo: order.OrderNo}).
		Return([]*service.ProfileInfo{profile}, nil)

	txEsimRepo := mockRepo.NewMockEsimRepository(t)
	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEsimRepository().Return(txEsimRepo)
	factory.EXPECT().NewOrderRepository().Return(txOrderRepo)

	// The profile row survived an earlier delivery; the order still converges
	// to completed but no second notification is written.
	txEsimRepo.EXPECT().CreateEsim(ctx, mock.Anything).Return(repository.ErrDuplicateEsim)
	txOrderRepo.EXPECT().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCompleted).Return(nil)

	mocks.txManager.EXPECT().
		Execute(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	payload := []byte(`{"event":"ORDER_STATUS","orderNo":"ORD-1003","orderStatus":"GOT_RESOURCE"}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Contains(t, result.Skipped, "already stored")
	assert.Empty(t, result.Notifications)
}

func TestWebhookService_Handle_OrderStatus_UnknownOrderFails(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	mocks.expectAuditFailure(ctx, constants.WebhookEventOrderStatus)
	mocks.orderRepo.EXPECT().
		FindOrderByOrderNo(ctx, "ORD-MISSING").
		Return(nil, repository.ErrOrderNotFound)

	payload := []byte(`{"event":"ORDER_STATUS","orderNo":"ORD-MISSING","orderStatus":"GOT_RESOURCE"}`)
	result, err := svc.Handle(ctx, payload)

	// The audit entry stays behind and the error makes the provider
	// redeliver once the order row has landed.
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown order")
	assert.Nil(t, result)
}

func TestWebhookService_Handle_OrderStatus_SuspendMapsToInactive(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	esim := &entity.Esim{
		ID:      uuid.New(),
		UserID:  uuid.New(),
		OrderNo: "ORD-1004",
		ICCID:   "8944500000000000003",
		Status:  entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventOrderStatus, "")
	mocks.esimRepo.EXPECT().FindEsimByOrderNo(ctx, esim.OrderNo).Return(esim, nil)
	mocks.esimRepo.EXPECT().UpdateEsimStatus(ctx, esim.ICCID, entity.EsimStatusInactive).Return(nil)
	mocks.eventPublisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.MatchedBy(func(event *service.EsimLifecycleEvent) bool {
			return event.EventType == constants.EventStatusChanged && event.Status == "inactive"
		})).
		Return(nil)

	payload := []byte(`{"event":"ORDER_STATUS","orderNo":"ORD-1004","orderStatus":"SUSPEND"}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
}

func TestWebhookService_Handle_DataUsage_UnknownICCID(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	mocks.expectAudit(ctx, constants.WebhookEventDataUsage, "")
	mocks.esimRepo.EXPECT().
		FindEsimByICCID(ctx, "8944500000000000099").
		Return(nil, repository.ErrEsimNotFound)

	payload := []byte(`{"event":"DATA_USAGE","iccid":"8944500000000000099","remain":100,"total":1000}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.False(t, result.Processed)
	assert.Contains(t, result.Skipped, "unknown iccid")
}

func TestWebhookService_Handle_DataUsage_EmitsLowDataNotification(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	esim := &entity.Esim{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ICCID:     "89012X",
		DataUsed:  500,
		DataTotal: 1000,
		Status:    entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventDataUsage, "")
	mocks.esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	mocks.esimRepo.EXPECT().
		UpdateEsimUsage(ctx, esim.ICCID, mock.MatchedBy(func(usage *entity.EsimUsage) bool {
			return usage.DataUsed == 900 && usage.DataTotal == 1000
		})).
		Return(nil)
	mocks.eventPublisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.Anything).
		Return(nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.Type == entity.NotificationLowData && notification.RelatedICCID == esim.ICCID
		})).
		Return(nil)
	mocks.pushSvc.EXPECT().
		SendToUser(ctx, esim.UserID, "Low Data", "Your eSIM is running low on data.", mock.Anything).
		Return(nil)

	payload := []byte(`{"event":"DATA_USAGE","iccid":"89012X","remain":100,"total":1000}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, entity.NotificationLowData, result.Notifications[0].Type)
}

func TestWebhookService_Handle_DataUsage_NotifiesEvenWhenStoredCountersAreStale(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	// The stored counters already sit below the provider's threshold. The
	// provider gates the event on its own side, so the delivery still
	// notifies the owner.
	esim := &entity.Esim{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ICCID:     "8944500000000000005",
		DataUsed:  950,
		DataTotal: 1000,
		Status:    entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventDataUsage, "")
	mocks.esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	mocks.esimRepo.EXPECT().UpdateEsimUsage(ctx, esim.ICCID, mock.Anything).Return(nil)
	mocks.eventPublisher.EXPECT().PublishLifecycleEvent(ctx, mock.Anything).Return(nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.Type == entity.NotificationLowData
		})).
		Return(nil)
	mocks.pushSvc.EXPECT().
		SendToUser(ctx, esim.UserID, "Low Data", "Your eSIM is running low on data.", mock.Anything).
		Return(nil)

	payload := []byte(`{"event":"DATA_USAGE","iccid":"8944500000000000005","remain":40,"total":1000}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
	require.Len(t, result.Notifications, 1)
}

func TestWebhookService_Handle_DataUsage_NotificationWriteFailureStillSucceeds(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	esim := &entity.Esim{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ICCID:     "8944500000000000011",
		DataUsed:  100,
		DataTotal: 1000,
		Status:    entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventDataUsage, "")
	mocks.esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	mocks.esimRepo.EXPECT().UpdateEsimUsage(ctx, esim.ICCID, mock.Anything).Return(nil)
	mocks.eventPublisher.EXPECT().PublishLifecycleEvent(ctx, mock.Anything).Return(nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.Anything).
		Return(assert.AnError)

	payload := []byte(`{"event":"DATA_USAGE","iccid":"8944500000000000011","remain":50,"total":1000}`)
	result, err := svc.Handle(ctx, payload)

	// Emission is a side effect of an already applied event; its failure is
	// logged, never surfaced, and no push goes out for the lost record.
	require.NoError(t, err)
	assert.True(t, result.Processed)
	assert.Empty(t, result.Notifications)
}

func TestWebhookService_Handle_DataUsage_TotalFallsBackToStored(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	esim := &entity.Esim{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		ICCID:     "8944500000000000006",
		DataUsed:  100,
		DataTotal: 2000,
		Status:    entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventDataUsage, "")
	mocks.esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	mocks.esimRepo.EXPECT().
		UpdateEsimUsage(ctx, esim.ICCID, mock.MatchedBy(func(usage *entity.EsimUsage) bool {
			return usage.DataTotal == 2000 && usage.DataUsed == 1000
		})).
		Return(nil)
	mocks.eventPublisher.EXPECT().PublishLifecycleEvent(ctx, mock.Anything).Return(nil)
	mocks.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
	mocks.pushSvc.EXPECT().
		SendToUser(ctx, esim.UserID, "Low Data", "Your eSIM is running low on data.", mock.Anything).
		Return(nil)

	payload := []byte(`{"event":"DATA_USAGE","iccid":"8944500000000000006","remain":1000}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
}

func TestWebhookService_Handle_ValidityUsage_ExpiredStillNotifies(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	esim := &entity.Esim{
		ID:     uuid.New(),
		UserID: uuid.New(),
		ICCID:  "8944500000000000007",
		Status: entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventValidityUsage, "")
	mocks.esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	mocks.esimRepo.EXPECT().UpdateEsimStatus(ctx, esim.ICCID, entity.EsimStatusExpired).Return(nil)
	mocks.eventPublisher.EXPECT().
		PublishLifecycleEvent(ctx, mock.MatchedBy(func(event *service.EsimLifecycleEvent) bool {
			return event.EventType == constants.EventStatusChanged && event.Status == "expired"
		})).
		Return(nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.Type == entity.NotificationExpiringSoon
		})).
		Return(nil)
	mocks.pushSvc.EXPECT().
		SendToUser(ctx, esim.UserID, "eSIM Expiring", "Your eSIM expires in 1 day.", mock.Anything).
		Return(nil)

	payload := []byte(`{"event":"VALIDITY_USAGE","iccid":"8944500000000000007","remainDays":0}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
	require.Len(t, result.Notifications, 1)
}

func TestWebhookService_Handle_ValidityUsage_ExpiringSoon(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	esim := &entity.Esim{
		ID:     uuid.New(),
		UserID: uuid.New(),
		ICCID:  "8944500000000000008",
		Status: entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventValidityUsage, "")
	mocks.esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.Type == entity.NotificationExpiringSoon
		})).
		Return(nil)
	mocks.pushSvc.EXPECT().
		SendToUser(ctx, esim.UserID, "eSIM Expiring", "Your eSIM expires in 1 day.", mock.Anything).
		Return(nil)

	payload := []byte(`{"event":"VALIDITY_USAGE","iccid":"8944500000000000008","remainDays":1}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
	require.Len(t, result.Notifications, 1)
	assert.Equal(t, entity.NotificationExpiringSoon, result.Notifications[0].Type)
}

func TestWebhookService_Handle_ValidityUsage_NotifiesRegardlessOfRemainingDays(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	// The provider fires this event at its own threshold; the handler does
	// not second-guess the remaining days.
	esim := &entity.Esim{
		ID:     uuid.New(),
		UserID: uuid.New(),
		ICCID:  "8944500000000000009",
		Status: entity.EsimStatusActive,
	}

	mocks.expectAudit(ctx, constants.WebhookEventValidityUsage, "")
	mocks.esimRepo.EXPECT().FindEsimByICCID(ctx, esim.ICCID).Return(esim, nil)
	mocks.notificationRepo.EXPECT().
		CreateNotification(ctx, mock.MatchedBy(func(notification *entity.Notification) bool {
			return notification.Type == entity.NotificationExpiringSoon
		})).
		Return(nil)
	mocks.pushSvc.EXPECT().
		SendToUser(ctx, esim.UserID, "eSIM Expiring", "Your eSIM expires in 1 day.", mock.Anything).
		Return(nil)

	payload := []byte(`{"event":"VALIDITY_USAGE","iccid":"8944500000000000009","remainDays":7}`)
	result, err := svc.Handle(ctx, payload)

	require.NoError(t, err)
	assert.True(t, result.Processed)
	require.Len(t, result.Notifications, 1)
}

func TestWebhookService_Handle_DispatchErrorRecordedInAudit(t *testing.T) {
	svc, mocks := createTestWebhookService(t)
	ctx := context.Background()

	mocks.webhookLogRepo.EXPECT().CreateEntry(ctx, mock.Anything).Return(nil)
	mocks.esimRepo.EXPECT().
		FindEsimByICCID(ctx, "8944500000000000010").
		Return(nil, assert.AnError)
	mocks.webhookLogRepo.EXPECT().
		MarkProcessed(ctx, mock.Anything, mock.MatchedBy(func(errText string) bool {
			return errText != ""
		})).
		Return(nil)

	payload := []byte(`{"event":"DATA_USAGE","iccid":"8944500000000000010","remain":1,"total":10}`)
	result, err := svc.Handle(ctx, payload)

	require.Error(t, err)
	assert.Nil(t, result)
}

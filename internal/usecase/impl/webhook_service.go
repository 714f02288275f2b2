package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"esimhub/internal/domain/constants"
	"esimhub/internal/domain/entity"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/repository"
	"esimhub/internal/domain/service"
	"esimhub/internal/usecase"
	"esimhub/internal/util"

	"github.com/pkg/errors"
)

// Notification messages shown to users for lifecycle events.
const (
	orderReadyMessage   = "Your eSIM order %s is ready!"
	lowDataMessage      = "Your eSIM is running low on data."
	expiringSoonMessage = "Your eSIM expires in 1 day."
)

// unknownEventType labels audit entries whose payload could not be parsed.
const unknownEventType = "UNKNOWN"

// webhookPayload is the provider's push body: a flat JSON object whose
// event field selects which of the remaining fields are meaningful.
type webhookPayload struct {
	Event string `json:"event"`
}

type orderStatusPayload struct {
	OrderNo     string `json:"orderNo"`
	OrderStatus string `json:"orderStatus"`
}

type dataUsagePayload struct {
	ICCID  string `json:"iccid"`
	Remain int64  `json:"remain"`
	Total  int64  `json:"total"`
}

type validityUsagePayload struct {
	ICCID      string `json:"iccid"`
	RemainDays int    `json:"remainDays"`
}

type webhookService struct {
	logger           *slog.Logger
	webhookLogRepo   repository.WebhookLogRepository
	esimRepo         repository.EsimRepository
	orderRepo        repository.OrderRepository
	notificationRepo repository.NotificationRepository
	txManager        repository.TransactionManager
	provisioningSvc  service.ProvisioningService
	pushSvc          service.PushService
	eventPublisher   service.EventPublisher
}

// NewWebhookService creates a new webhook service instance
func NewWebhookService(
	logger *slog.Logger,
	webhookLogRepo repository.WebhookLogRepository,
	esimRepo repository.EsimRepository,
	orderRepo repository.OrderRepository,
	notificationRepo repository.NotificationRepository,
	txManager repository.TransactionManager,
	provisioningSvc service.ProvisioningService,
	pushSvc service.PushService,
	eventPublisher service.EventPublisher,
) usecase.WebhookUsecase {
	return &webhookService{
		logger:           logger,
		webhookLogRepo:   webhookLogRepo,
		esimRepo:         esimRepo,
		orderRepo:        orderRepo,
		notificationRepo: notificationRepo,
		txManager:        txManager,
		provisioningSvc:  provisioningSvc,
		pushSvc:          pushSvc,
		eventPublisher:   eventPublisher,
	}
}

// Handle ingests one webhook delivery. The audit entry is written before any
// dispatch so a crash mid-processing still leaves a trace.
func (s *webhookService) Handle(ctx context.Context, payload []byte) (*usecase.WebhookResult, error) {
	var envelope webhookPayload
	parseErr := json.Unmarshal(payload, &envelope)

	eventType := envelope.Event
	if eventType == "" {
		eventType = unknownEventType
	}

	entry := &entity.WebhookLogEntry{
		EventType: eventType,
		Payload:   string(payload),
	}
	if err := s.webhookLogRepo.CreateEntry(ctx, entry); err != nil {
		return nil, errors.Wrap(err, "failed to record webhook audit entry")
	}

	if parseErr != nil {
		s.markProcessed(ctx, entry, "malformed payload")

		return nil, domainerrors.ErrWebhookPayloadInvalid.WrapMessage(parseErr.Error())
	}

	result, err := s.dispatch(ctx, envelope.Event, payload)
	if err != nil {
		s.markProcessed(ctx, entry, err.Error())

		return nil, err
	}

	s.markProcessed(ctx, entry, "")

	return result, nil
}

// markProcessed records the dispatch outcome. Failing to update the audit
// row is logged but never turned into a delivery failure.
func (s *webhookService) markProcessed(ctx context.Context, entry *entity.WebhookLogEntry, errText string) {
	if err := s.webhookLogRepo.MarkProcessed(ctx, entry.ID, errText); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to mark webhook entry processed",
			slog.String("entry_id", entry.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// dispatch routes one delivery by event type. An unknown event type is a
// failure so the provider redelivers once the consumer catches up.
func (s *webhookService) dispatch(ctx context.Context, eventType string, payload []byte) (*usecase.WebhookResult, error) {
	switch eventType {
	case constants.WebhookEventOrderStatus:
		return s.handleOrderStatus(ctx, payload)
	case constants.WebhookEventDataUsage:
		return s.handleDataUsage(ctx, payload)
	case constants.WebhookEventValidityUsage:
		return s.handleValidityUsage(ctx, payload)
	default:
		s.logger.LogAttrs(ctx, slog.LevelWarn, "unsupported webhook event type",
			slog.String("event_type", eventType),
		)

		return nil, errors.Errorf("unsupported webhook event type %q", eventType)
	}
}

func (s *webhookService) handleOrderStatus(ctx context.Context, payload []byte) (*usecase.WebhookResult, error) {
	var data orderStatusPayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, domainerrors.ErrWebhookPayloadInvalid.WrapMessage(err.Error())
	}

	result := &usecase.WebhookResult{EventType: constants.WebhookEventOrderStatus}

	if data.OrderStatus == entity.ProviderStatusGotResource {
		return s.fulfillOrder(ctx, data.OrderNo, result)
	}

	// Any other order status maps onto the existing profile, if we have one.
	esim, err := s.esimRepo.FindEsimByOrderNo(ctx, data.OrderNo)
	if err != nil {
		if errors.Is(err, repository.ErrEsimNotFound) {
			result.Skipped = "no profile for order " + data.OrderNo

			return result, nil
		}

		return nil, err
	}

	status := entity.NormalizeProviderStatus(data.OrderStatus)
	if err := s.esimRepo.UpdateEsimStatus(ctx, esim.ICCID, status); err != nil {
		return nil, errors.Wrap(err, "failed to apply order status")
	}

	if status != esim.Status {
		s.publishEvent(ctx, constants.EventStatusChanged, esim, string(status))
	}

	result.Processed = true

	return result, nil
}

// fulfillOrder turns a completed provider order into a stored profile, a
// completed local order and an order ready notification, atomically.
// Redelivery is a no-op: a completed order or an already stored ICCID short
// circuits without error.
func (s *webhookService) fulfillOrder(ctx context.Context, orderNo string, result *usecase.WebhookResult) (*usecase.WebhookResult, error) {
	order, err := s.orderRepo.FindOrderByOrderNo(ctx, orderNo)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			// The payload stays in the audit trail; failing here makes the
			// provider redeliver after the order row lands.
			s.logger.LogAttrs(ctx, slog.LevelWarn, "webhook for unknown order",
				slog.String("order_no", orderNo),
			)

			return nil, errors.Errorf("unknown order %s", orderNo)
		}

		return nil, err
	}

	if order.Status == entity.OrderStatusCompleted {
		result.Skipped = "order " + orderNo + " already fulfilled"

		return result, nil
	}

	profiles, err := s.provisioningSvc.QueryProfiles(ctx, &service.ProfileQuery{OrderNo: orderNo})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query profile for order %s", orderNo)
	}
	if len(profiles) == 0 {
		return nil, errors.Errorf("provider returned no profile for order %s", orderNo)
	}

	profile := profiles[0]
	esim := &entity.Esim{
		UserID:         order.UserID,
		OrderNo:        orderNo,
		ICCID:          profile.ICCID,
		ActivationCode: profile.ActivationCode,
		QRCode:         profile.QRCodeURL,
		PackageCode:    order.PackageCode,
		DataUsed:       profile.DataUsed,
		DataTotal:      profile.DataTotal,
		Status:         entity.NormalizeProviderStatus(profile.ProviderStatus),
		PurchaseDate:   order.CreatedAt,
	}
	if profile.ExpiredAt != nil {
		esim.ExpiryDate = *profile.ExpiredAt
	}

	notification := &entity.Notification{
		UserID:         order.UserID,
		Type:           entity.NotificationOrderReady,
		Message:        fmt.Sprintf(orderReadyMessage, orderNo),
		RelatedICCID:   profile.ICCID,
		RelatedOrderNo: orderNo,
	}

	var duplicate bool
	err = s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if createErr := txRepos.NewEsimRepository().CreateEsim(ctx, esim); createErr != nil {
			if !errors.Is(createErr, repository.ErrDuplicateEsim) {
				return createErr
			}
			// The profile row already exists from an earlier delivery; only
			// the order state still needs to converge.
			duplicate = true
		}

		if updateErr := txRepos.NewOrderRepository().UpdateOrderStatus(ctx, order.ID, entity.OrderStatusCompleted); updateErr != nil {
			return updateErr
		}

		if duplicate {
			return nil
		}

		return txRepos.NewNotificationRepository().CreateNotification(ctx, notification)
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fulfill order %s", orderNo)
	}

	result.Processed = true
	if duplicate {
		result.Skipped = "profile already stored for order " + orderNo

		return result, nil
	}

	result.Notifications = append(result.Notifications, notification)
	s.sendPush(ctx, notification, "eSIM Ready", notification.Message)
	s.publishEvent(ctx, constants.EventOrderFulfilled, esim, string(esim.Status))

	return result, nil
}

func (s *webhookService) handleDataUsage(ctx context.Context, payload []byte) (*usecase.WebhookResult, error) {
	var data dataUsagePayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, domainerrors.ErrWebhookPayloadInvalid.WrapMessage(err.Error())
	}

	result := &usecase.WebhookResult{EventType: constants.WebhookEventDataUsage}

	esim, err := s.esimRepo.FindEsimByICCID(ctx, data.ICCID)
	if err != nil {
		if errors.Is(err, repository.ErrEsimNotFound) {
			result.Skipped = "unknown iccid " + data.ICCID

			return result, nil
		}

		return nil, err
	}

	total := data.Total
	if total <= 0 {
		total = esim.DataTotal
	}

	used := total - data.Remain
	if used < 0 {
		used = 0
	}

	usage := &entity.EsimUsage{
		DataUsed:  used,
		DataTotal: total,
		Status:    esim.Status,
		UpdatedAt: time.Now(),
	}
	if err := s.esimRepo.UpdateEsimUsage(ctx, data.ICCID, usage); err != nil {
		return nil, errors.Wrap(err, "failed to store data usage")
	}

	s.logger.LogAttrs(ctx, slog.LevelDebug, "data usage updated",
		slog.String("iccid", data.ICCID),
		slog.String("used", util.FormatBytes(used)),
		slog.String("total", util.FormatBytes(total)),
	)

	result.Processed = true
	s.publishEvent(ctx, constants.EventUsageUpdated, esim, string(esim.Status))

	// The provider sends this event only when its own usage threshold
	// trips, so every delivery with a known profile notifies the owner.
	s.emitNotification(ctx, result, &entity.Notification{
		UserID:       esim.UserID,
		Type:         entity.NotificationLowData,
		Message:      lowDataMessage,
		RelatedICCID: esim.ICCID,
	}, "Low Data")

	return result, nil
}

func (s *webhookService) handleValidityUsage(ctx context.Context, payload []byte) (*usecase.WebhookResult, error) {
	var data validityUsagePayload
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, domainerrors.ErrWebhookPayloadInvalid.WrapMessage(err.Error())
	}

	result := &usecase.WebhookResult{EventType: constants.WebhookEventValidityUsage}

	esim, err := s.esimRepo.FindEsimByICCID(ctx, data.ICCID)
	if err != nil {
		if errors.Is(err, repository.ErrEsimNotFound) {
			result.Skipped = "unknown iccid " + data.ICCID

			return result, nil
		}

		return nil, err
	}

	if data.RemainDays <= 0 {
		if err := s.esimRepo.UpdateEsimStatus(ctx, esim.ICCID, entity.EsimStatusExpired); err != nil {
			return nil, errors.Wrap(err, "failed to expire profile")
		}

		if esim.Status != entity.EsimStatusExpired {
			s.publishEvent(ctx, constants.EventStatusChanged, esim, string(entity.EsimStatusExpired))
		}
	}

	result.Processed = true

	// The provider fires this at its own validity threshold; a known
	// profile always gets the expiry warning.
	s.emitNotification(ctx, result, &entity.Notification{
		UserID:       esim.UserID,
		Type:         entity.NotificationExpiringSoon,
		Message:      expiringSoonMessage,
		RelatedICCID: esim.ICCID,
	}, "eSIM Expiring")

	return result, nil
}

// emitNotification stores a notification and mirrors it as a push alert.
// Emission is a side effect of an already applied event; a storage failure
// is logged and never turns the delivery into a dispatch failure.
func (s *webhookService) emitNotification(ctx context.Context, result *usecase.WebhookResult, notification *entity.Notification, pushTitle string) {
	if err := s.notificationRepo.CreateNotification(ctx, notification); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to store notification",
			slog.String("user_id", notification.UserID.String()),
			slog.String("type", string(notification.Type)),
			slog.String("error", err.Error()),
		)

		return
	}

	result.Notifications = append(result.Notifications, notification)
	s.sendPush(ctx, notification, pushTitle, notification.Message)
}

// sendPush delivers a push alert for a stored notification. Push delivery is
// best effort and never fails the webhook.
func (s *webhookService) sendPush(ctx context.Context, notification *entity.Notification, title, body string) {
	data := map[string]string{
		"type": string(notification.Type),
	}
	if notification.RelatedICCID != "" {
		data["iccid"] = notification.RelatedICCID
	}
	if notification.RelatedOrderNo != "" {
		data["order_no"] = notification.RelatedOrderNo
	}

	if err := s.pushSvc.SendToUser(ctx, notification.UserID, title, body, data); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to send push notification",
			slog.String("user_id", notification.UserID.String()),
			slog.String("error", err.Error()),
		)
	}
}

// publishEvent emits a lifecycle event, best effort.
func (s *webhookService) publishEvent(ctx context.Context, eventType string, esim *entity.Esim, status string) {
	event := &service.EsimLifecycleEvent{
		EventType: eventType,
		UserID:    esim.UserID.String(),
		ICCID:     esim.ICCID,
		OrderNo:   esim.OrderNo,
		Status:    status,
	}

	if err := s.eventPublisher.PublishLifecycleEvent(ctx, event); err != nil {
		s.logger.LogAttrs(ctx, slog.LevelWarn, "failed to publish lifecycle event",
			slog.String("event_type", eventType),
			slog.String("iccid", esim.ICCID),
			slog.String("error", err.Error()),
		)
	}
}

package impl

import (
	"context"
	"log/slog"

	"esimhub/internal/domain/entity"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/repository"
	"esimhub/internal/domain/service"
	"esimhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultCurrency = "USD"

type orderService struct {
	logger          *slog.Logger
	orderRepo       repository.OrderRepository
	provisioningSvc service.ProvisioningService
}

// NewOrderService creates a new order service instance
func NewOrderService(
	logger *slog.Logger,
	orderRepo repository.OrderRepository,
	provisioningSvc service.ProvisioningService,
) usecase.OrderUsecase {
	return &orderService{
		logger:          logger,
		orderRepo:       orderRepo,
		provisioningSvc: provisioningSvc,
	}
}

// PurchasePackage places a provider order and records it locally as pending.
// The provider allocates the profile asynchronously; the order status webhook
// completes the purchase later.
func (s *orderService) PurchasePackage(ctx context.Context, userID uuid.UUID, req *usecase.PurchaseRequest) (*entity.Order, error) {
	transactionID := uuid.NewString()

	orderResult, err := s.provisioningSvc.OrderProfile(ctx, &service.OrderRequest{
		TransactionID: transactionID,
		PackageCode:   req.PackageCode,
		Count:         1,
		Amount:        req.Amount,
	})
	if err != nil {
		var providerErr *service.ProviderError
		if errors.As(err, &providerErr) {
			return nil, domainerrors.ErrProvisioningRejected.WithDetails(providerErr.Message)
		}

		return nil, domainerrors.ErrProvisioningUnavailable.WrapMessage(err.Error())
	}

	currency := req.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	order := &entity.Order{
		UserID:        userID,
		OrderNo:       orderResult.OrderNo,
		PackageCode:   req.PackageCode,
		Amount:        req.Amount,
		Currency:      currency,
		Status:        entity.OrderStatusPending,
		PaymentMethod: req.PaymentMethod,
		Email:         req.Email,
	}

	if err := s.orderRepo.CreateOrder(ctx, order); err != nil {
		// The provider accepted the order; losing the local row would orphan
		// the upcoming fulfillment webhook.
		s.logger.LogAttrs(ctx, slog.LevelError, "provider order placed but local record failed",
			slog.String("order_no", orderResult.OrderNo),
			slog.String("error", err.Error()),
		)

		return nil, errors.Wrap(err, "failed to record order")
	}

	s.logger.LogAttrs(ctx, slog.LevelInfo, "order placed",
		slog.String("order_no", order.OrderNo),
		slog.String("package_code", order.PackageCode),
		slog.String("user_id", userID.String()),
	)

	return order, nil
}

// ListUserOrders retrieves the user's orders, newest first.
func (s *orderService) ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	return s.orderRepo.FindOrdersByUser(ctx, userID)
}

// GetOrder retrieves one order after verifying ownership.
func (s *orderService) GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error) {
	order, err := s.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, err
	}

	if order.UserID != userID {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

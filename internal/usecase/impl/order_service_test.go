package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

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

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockSvc.MockProvisioningService,
) {
	orderRepo := mockRepo.NewMockOrderRepository(t)
	provisioningSvc := mockSvc.NewMockProvisioningService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	svc := NewOrderService(logger, orderRepo, provisioningSvc)

	return svc, orderRepo, provisioningSvc
}

func TestOrderService_PurchasePackage_Success(t *testing.T) {
	svc, orderRepo, provisioningSvc := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	provisioningSvc.EXPECT().
		OrderProfile(ctx, mock.MatchedBy(func(req *service.OrderRequest) bool {
			return req.PackageCode == "PKG-JP-5GB" && req.Count == 1 && req.TransactionID != ""
		})).
		Return(&service.OrderResult{OrderNo: "ORD-3001"}, nil)
	orderRepo.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.OrderNo == "ORD-3001" &&
				order.UserID == userID &&
				order.Status == entity.OrderStatusPending &&
				order.Currency == "USD"
		})).
		Return(nil)

	order, err := svc.PurchasePackage(ctx, userID, &usecase.PurchaseRequest{
		PackageCode: "PKG-JP-5GB",
		Amount:      12.5,
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-3001", order.OrderNo)
	assert.Equal(t, entity.OrderStatusPending, order.Status)
}

func TestOrderService_PurchasePackage_ProviderRejection(t *testing.T) {
	svc, _, provisioningSvc := createTestOrderService(t)
	ctx := context.Background()

	provisioningSvc.EXPECT().
		OrderProfile(ctx, mock.Anything).
		Return(nil, &service.ProviderError{Code: "310201", Message: "insufficient balance"})

	order, err := svc.PurchasePackage(ctx, uuid.New(), &usecase.PurchaseRequest{
		PackageCode: "PKG-JP-5GB",
	})

	require.Error(t, err)
	assert.Nil(t, order)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProvisioningRejected.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "insufficient balance")
}

func TestOrderService_PurchasePackage_ProviderUnavailable(t *testing.T) {
	svc, _, provisioningSvc := createTestOrderService(t)
	ctx := context.Background()

	provisioningSvc.EXPECT().
		OrderProfile(ctx, mock.Anything).
		Return(nil, assert.AnError)

	order, err := svc.PurchasePackage(ctx, uuid.New(), &usecase.PurchaseRequest{
		PackageCode: "PKG-JP-5GB",
	})

	require.Error(t, err)
	assert.Nil(t, order)
	assert.ErrorIs(t, err, domainerrors.ErrProvisioningUnavailable)
}

func TestOrderService_PurchasePackage_LocalRecordFailure(t *testing.T) {
	svc, orderRepo, provisioningSvc := createTestOrderService(t)
	ctx := context.Background()

	provisioningSvc.EXPECT().
		OrderProfile(ctx, mock.Anything).
		Return(&service.OrderResult{OrderNo: "ORD-3002"}, nil)
	orderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(assert.AnError)

	order, err := svc.PurchasePackage(ctx, uuid.New(), &usecase.PurchaseRequest{
		PackageCode: "PKG-JP-5GB",
	})

	require.Error(t, err)
	assert.Nil(t, order)
}

func TestOrderService_PurchasePackage_KeepsRequestedCurrency(t *testing.T) {
	svc, orderRepo, provisioningSvc := createTestOrderService(t)
	ctx := context.Background()

	provisioningSvc.EXPECT().
		OrderProfile(ctx, mock.Anything).
		Return(&service.OrderResult{OrderNo: "ORD-3003"}, nil)
	orderRepo.EXPECT().
		CreateOrder(ctx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.Currency == "EUR"
		})).
		Return(nil)

	order, err := svc.PurchasePackage(ctx, uuid.New(), &usecase.PurchaseRequest{
		PackageCode: "PKG-EU-10GB",
		Currency:    "EUR",
	})

	require.NoError(t, err)
	assert.Equal(t, "EUR", order.Currency)
}

func TestOrderService_GetOrder_Forbidden(t *testing.T) {
	svc, orderRepo, _ := createTestOrderService(t)
	ctx := context.Background()

	order := &entity.Order{ID: uuid.New(), UserID: uuid.New()}
	orderRepo.EXPECT().FindOrderByID(ctx, order.ID).Return(order, nil)

	result, err := svc.GetOrder(ctx, uuid.New(), order.ID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, result)
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	svc, orderRepo, _ := createTestOrderService(t)
	ctx := context.Background()

	orderID := uuid.New()
	orderRepo.EXPECT().FindOrderByID(ctx, orderID).Return(nil, repository.ErrOrderNotFound)

	result, err := svc.GetOrder(ctx, uuid.New(), orderID)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	assert.Nil(t, result)
}

func TestOrderService_ListUserOrders(t *testing.T) {
	svc, orderRepo, _ := createTestOrderService(t)
	ctx := context.Background()

	userID := uuid.New()
	orders := []*entity.Order{{ID: uuid.New(), UserID: userID}}
	orderRepo.EXPECT().FindOrdersByUser(ctx, userID).Return(orders, nil)

	result, err := svc.ListUserOrders(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, orders, result)
}

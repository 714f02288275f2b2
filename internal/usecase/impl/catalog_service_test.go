package impl

import (
	"context"
	"testing"

	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/service"
	mockSvc "esimhub/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListPackages(t *testing.T) {
	provisioningSvc := mockSvc.NewMockProvisioningService(t)
	svc := NewCatalogService(provisioningSvc)
	ctx := context.Background()

	packages := []*service.PackageInfo{
		{PackageCode: "PKG-JP-5GB", Name: "Japan 5GB", LocationCode: "JP", Price: 12.5, Currency: "USD"},
	}
	provisioningSvc.EXPECT().ListPackages(ctx, "JP").Return(packages, nil)

	result, err := svc.ListPackages(ctx, "JP")

	require.NoError(t, err)
	assert.Equal(t, packages, result)
}

func TestCatalogService_ListPackages_ProviderRejection(t *testing.T) {
	provisioningSvc := mockSvc.NewMockProvisioningService(t)
	svc := NewCatalogService(provisioningSvc)
	ctx := context.Background()

	provisioningSvc.EXPECT().
		ListPackages(ctx, "").
		Return(nil, &service.ProviderError{Code: "310101", Message: "access code disabled"})

	result, err := svc.ListPackages(ctx, "")

	require.Error(t, err)
	assert.Nil(t, result)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrProvisioningRejected.ErrorCode(), appErr.ErrorCode())
}

func TestCatalogService_GetBalance(t *testing.T) {
	provisioningSvc := mockSvc.NewMockProvisioningService(t)
	svc := NewCatalogService(provisioningSvc)
	ctx := context.Background()

	provisioningSvc.EXPECT().
		QueryBalance(ctx).
		Return(&service.Balance{Amount: 250.75, Currency: "USD"}, nil)

	balance, err := svc.GetBalance(ctx)

	require.NoError(t, err)
	assert.InDelta(t, 250.75, balance.Amount, 0.001)
	assert.Equal(t, "USD", balance.Currency)
}

func TestCatalogService_GetBalance_TransportFailure(t *testing.T) {
	provisioningSvc := mockSvc.NewMockProvisioningService(t)
	svc := NewCatalogService(provisioningSvc)
	ctx := context.Background()

	provisioningSvc.EXPECT().QueryBalance(ctx).Return(nil, assert.AnError)

	balance, err := svc.GetBalance(ctx)

	require.Error(t, err)
	assert.Nil(t, balance)
	assert.ErrorIs(t, err, domainerrors.ErrProvisioningUnavailable)
}

package impl

import (
	"context"

	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/domain/service"
	"esimhub/internal/usecase"

	"github.com/pkg/errors"
)

type catalogService struct {
	provisioningSvc service.ProvisioningService
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(provisioningSvc service.ProvisioningService) usecase.CatalogUsecase {
	return &catalogService{
		provisioningSvc: provisioningSvc,
	}
}

// ListPackages returns purchasable packages, optionally filtered by location code.
func (s *catalogService) ListPackages(ctx context.Context, locationCode string) ([]*service.PackageInfo, error) {
	packages, err := s.provisioningSvc.ListPackages(ctx, locationCode)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return packages, nil
}

// GetBalance returns the reseller account balance.
func (s *catalogService) GetBalance(ctx context.Context) (*service.Balance, error) {
	balance, err := s.provisioningSvc.QueryBalance(ctx)
	if err != nil {
		return nil, mapProviderError(err)
	}

	return balance, nil
}

// mapProviderError distinguishes provider business rejections from transport
// failures for the error middleware.
func mapProviderError(err error) error {
	var providerErr *service.ProviderError
	if errors.As(err, &providerErr) {
		return domainerrors.ErrProvisioningRejected.WithDetails(providerErr.Message)
	}

	return domainerrors.ErrProvisioningUnavailable.WrapMessage(err.Error())
}

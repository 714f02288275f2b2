package usecase

import (
	"context"

	"esimhub/internal/domain/service"
)

// CatalogUsecase exposes the provider's purchasable package catalog and the
// reseller balance.
type CatalogUsecase interface {
	// ListPackages returns purchasable packages, optionally filtered by
	// location code.
	ListPackages(ctx context.Context, locationCode string) ([]*service.PackageInfo, error)

	// GetBalance returns the reseller account balance.
	GetBalance(ctx context.Context) (*service.Balance, error)
}

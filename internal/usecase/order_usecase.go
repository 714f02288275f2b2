package usecase

import (
	"context"

	"esimhub/internal/domain/entity"

	"github.com/google/uuid"
)

// PurchaseRequest places an order for one data package.
type PurchaseRequest struct {
	PackageCode   string  `json:"package_code" validate:"required"`
	Amount        float64 `json:"amount" validate:"gte=0"`
	Currency      string  `json:"currency"`
	PaymentMethod string  `json:"payment_method"`
	Email         string  `json:"email" validate:"omitempty,email"`
}

// OrderUsecase defines the purchase use cases. Fulfillment is asynchronous:
// PurchasePackage leaves the order pending and the provider's order webhook
// completes it.
type OrderUsecase interface {
	// PurchasePackage places a provider order and records it as pending.
	PurchasePackage(ctx context.Context, userID uuid.UUID, req *PurchaseRequest) (*entity.Order, error)

	// ListUserOrders retrieves the user's orders, newest first.
	ListUserOrders(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// GetOrder retrieves one order.
	GetOrder(ctx context.Context, userID, orderID uuid.UUID) (*entity.Order, error)
}

package repository

import (
	"context"
	"errors"

	"esimhub/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order is not found.
	ErrOrderNotFound = errors.New("order not found")
	// ErrDuplicateOrder is returned when an order with the same provider order number already exists.
	ErrDuplicateOrder = errors.New("order already exists")
)

// OrderRepository defines the interface for purchase order database operations.
type OrderRepository interface {
	// CreateOrder persists a new purchase order. The provider order number is
	// unique; a collision returns ErrDuplicateOrder.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order by its unique ID.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrderByOrderNo retrieves an order by its provider order number.
	FindOrderByOrderNo(ctx context.Context, orderNo string) (*entity.Order, error)

	// FindOrdersByUser retrieves all orders placed by a user, newest first.
	FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error)

	// UpdateOrderStatus transitions an order to the given status.
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}

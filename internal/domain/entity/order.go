package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the purchase transaction state.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusFailed    OrderStatus = "failed"
)

// Order represents a purchase transaction.
//
// The provider order number is unique and is the join key that correlates an
// asynchronous "order ready" webhook back to the originating purchase.
// pending -> completed is one-directional; no reversal is modeled.
type Order struct {
	ID            uuid.UUID   `json:"id"`             // The Global Unique Identifier (GUID) for the order.
	UserID        uuid.UUID   `json:"user_id"`        // The ID of the user who placed the order.
	OrderNo       string      `json:"order_no"`       // Provider order number (unique).
	PackageCode   string      `json:"package_code"`   // Provider package purchased.
	Amount        float64     `json:"amount"`         // Charged amount.
	Currency      string      `json:"currency"`       // Charge currency.
	Status        OrderStatus `json:"status"`         // pending, completed or failed.
	PaymentMethod string      `json:"payment_method"` // Payment method tag (payment itself is simulated).
	Email         string      `json:"email"`          // Email used at purchase time.
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at"`
}

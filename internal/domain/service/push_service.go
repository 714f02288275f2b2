package service

import (
	"context"

	"github.com/google/uuid"
)

// PushService defines the interface for delivering push notifications to a
// user's devices. Delivery is best effort; a failed push never blocks the
// state change that triggered it.
type PushService interface {
	// SendToUser pushes a message to all devices subscribed for the user.
	SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error
}

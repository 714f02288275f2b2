package usecase

import (
	"context"

	"esimhub/internal/domain/entity"
)

// WebhookResult reports what one webhook delivery changed. Emitted
// notifications are returned explicitly so callers and tests can observe the
// side effects without inspecting the database.
type WebhookResult struct {
	EventType     string                 `json:"event_type"`
	Processed     bool                   `json:"processed"`
	Skipped       string                 `json:"skipped,omitempty"` // Reason when the event was a no-op.
	Notifications []*entity.Notification `json:"notifications,omitempty"`
}

// WebhookUsecase ingests provider webhook events.
//
// Handle takes the raw, signature-verified request body: a flat JSON object
// whose event field names the event type. It writes the audit entry before
// dispatching, so every delivery leaves a trace. A returned error means
// processing failed after receipt (including unknown event types and unknown
// order numbers) and the provider should redeliver; benign no-ops (unknown
// ICCID, duplicate delivery) return a result with a Skipped reason and no
// error.
type WebhookUsecase interface {
	Handle(ctx context.Context, payload []byte) (*WebhookResult, error)
}

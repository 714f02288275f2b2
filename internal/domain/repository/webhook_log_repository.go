package repository

import (
	"context"
	"errors"

	"esimhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrWebhookLogNotFound is returned when a webhook log entry is not found.
var ErrWebhookLogNotFound = errors.New("webhook log entry not found")

// WebhookLogRepository defines the interface for the webhook audit log.
//
// CreateEntry runs before event dispatch so that every received delivery
// leaves a durable trace even if processing fails afterwards.
type WebhookLogRepository interface {
	// CreateEntry persists a new audit entry for a received webhook.
	CreateEntry(ctx context.Context, entry *entity.WebhookLogEntry) error

	// MarkProcessed records the dispatch outcome for an entry. A non-empty
	// errText marks the entry as failed.
	MarkProcessed(ctx context.Context, id uuid.UUID, errText string) error

	// ListEntries retrieves audit entries, newest first.
	ListEntries(ctx context.Context, limit, offset int) ([]*entity.WebhookLogEntry, error)
}

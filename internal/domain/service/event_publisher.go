package service

import (
	"context"
)

// EsimLifecycleEvent is published whenever a profile's canonical status or a
// purchase order transitions, so downstream consumers can react without
// polling the database.
type EsimLifecycleEvent struct {
	RequestID string `json:"request_id,omitempty"` // For distributed tracing
	EventType string `json:"event_type"`           // order_fulfilled, status_changed, usage_updated
	UserID    string `json:"user_id"`
	ICCID     string `json:"iccid,omitempty"`
	OrderNo   string `json:"order_no,omitempty"`
	Status    string `json:"status,omitempty"` // Canonical status after the transition.
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishLifecycleEvent publishes a lifecycle event for async consumers
	PublishLifecycleEvent(ctx context.Context, event *EsimLifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}

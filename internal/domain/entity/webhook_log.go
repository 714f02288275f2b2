package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebhookLogEntry is the audit record for one inbound provider webhook.
//
// The entry is written before dispatch starts, so a crash mid-processing
// still leaves a trace. It is append-only: the only in-place updates are the
// processed flag and a terminal error text.
type WebhookLogEntry struct {
	ID         uuid.UUID `json:"id"`
	EventType  string    `json:"event_type"`
	Payload    string    `json:"payload"` // Raw request body, byte-exact.
	Processed  bool      `json:"processed"`
	Error      string    `json:"error,omitempty"`
	ReceivedAt time.Time `json:"received_at"`
}

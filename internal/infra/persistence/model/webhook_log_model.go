package model

import (
	"time"

	"github.com/google/uuid"
)

// WebhookLogModel is the GORM-specific struct for the 'webhook_logs' table.
// It represents the audit trail of received provider webhooks.
type WebhookLogModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	EventType  string    `gorm:"type:text;not null;index"`
	Payload    string    `gorm:"type:jsonb;not null"`
	Processed  bool      `gorm:"not null;default:false"`
	Error      string    `gorm:"type:text"`
	ReceivedAt time.Time `gorm:"not null;index;default:now()"`
}

// TableName explicitly sets the table name for GORM.
func (WebhookLogModel) TableName() string {
	return "webhook_logs"
}

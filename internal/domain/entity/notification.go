package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationType classifies a user-facing lifecycle notification.
type NotificationType string

const (
	NotificationOrderReady   NotificationType = "order_ready"
	NotificationLowData      NotificationType = "low_data"
	NotificationExpiringSoon NotificationType = "expiring_soon"
)

// Notification is a user-facing record of a lifecycle event. Created when a
// threshold crossing or fulfillment is applied; only the UI mutates the read
// flag afterwards.
type Notification struct {
	ID             uuid.UUID        `json:"id"`
	UserID         uuid.UUID        `json:"user_id"`
	Type           NotificationType `json:"type"`
	Message        string           `json:"message"`
	RelatedICCID   string           `json:"related_iccid,omitempty"`
	RelatedOrderNo string           `json:"related_order_no,omitempty"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"created_at"`
}

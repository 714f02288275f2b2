package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationModel is the GORM-specific struct for the 'notifications' table.
// It represents a user-facing lifecycle notification.
type NotificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Type           string    `gorm:"type:text;not null"`
	Message        string    `gorm:"type:text;not null"`
	RelatedICCID   string    `gorm:"column:related_iccid;type:text"`
	RelatedOrderNo string    `gorm:"type:text"`
	Read           bool      `gorm:"not null;default:false;index"`
	CreatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (NotificationModel) TableName() string {
	return "notifications"
}

package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
// It represents a purchase transaction against the provisioning provider.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNo       string    `gorm:"type:text;not null;uniqueIndex"`
	PackageCode   string    `gorm:"type:text;not null"`
	Amount        float64   `gorm:"type:decimal(10,2);not null"`
	Currency      string    `gorm:"type:text;not null;default:'USD'"`
	Status        string    `gorm:"type:text;not null;default:'pending';index"`
	PaymentMethod string    `gorm:"type:text"`
	Email         string    `gorm:"type:text"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

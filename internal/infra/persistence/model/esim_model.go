// Package model contains the GORM-specific structs for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// EsimModel is the GORM-specific struct for the 'esims' table.
// It represents one provisioned eSIM profile owned by a user.
type EsimModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderNo        string    `gorm:"type:text;not null;uniqueIndex"`
	ICCID          string    `gorm:"column:iccid;type:text;not null;uniqueIndex"`
	ActivationCode string    `gorm:"type:text;not null"`
	QRCode         string    `gorm:"column:qr_code;type:text"`
	PackageCode    string    `gorm:"type:text;not null"`
	CountryCode    string    `gorm:"type:text"`
	CountryName    string    `gorm:"type:text"`
	DataUsed       int64     `gorm:"not null;default:0"`
	DataTotal      int64     `gorm:"not null;default:0"`
	Status         string    `gorm:"type:text;not null;default:'inactive';index"`
	PurchaseDate   time.Time `gorm:"not null"`
	ExpiryDate     time.Time `gorm:"index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (EsimModel) TableName() string {
	return "esims"
}

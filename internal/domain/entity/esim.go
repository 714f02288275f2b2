// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Esim represents one provisioned eSIM data plan instance.
//
// The ICCID is assigned by the carrier, globally unique, and immutable once
// set. All state mutation goes through keyed upserts on the ICCID so that
// concurrent pull/push updates converge on the same row.
type Esim struct {
	ID             uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the eSIM record.
	UserID         uuid.UUID  `json:"user_id"`         // The ID of the user who owns this eSIM.
	OrderNo        string     `json:"order_no"`        // Provider order number this eSIM was provisioned from.
	ICCID          string     `json:"iccid"`           // Carrier-assigned unique profile identifier.
	ActivationCode string     `json:"activation_code"` // LPA activation string used to install the profile.
	QRCode         string     `json:"qr_code"`         // QR payload encoding of the activation string.
	PackageCode    string     `json:"package_code"`    // Provider package this plan was purchased as.
	CountryCode    string     `json:"country_code"`    // Destination country/location code.
	CountryName    string     `json:"country_name"`    // Destination country/location display name.
	DataUsed       int64      `json:"data_used"`       // Bytes consumed, as last reported by the provider.
	DataTotal      int64      `json:"data_total"`      // Total plan capacity in bytes.
	Status         EsimStatus `json:"status"`          // Canonical status, never a raw provider code.
	PurchaseDate   time.Time  `json:"purchase_date"`   // When the plan was purchased.
	ExpiryDate     time.Time  `json:"expiry_date"`     // When the plan expires.
	CreatedAt      time.Time  `json:"created_at"`      // Timestamp of when this record was created.
	UpdatedAt      time.Time  `json:"updated_at"`      // Timestamp of the last reconciliation write.
}

// EsimUsage is the per-ICCID delta written back by a reconciliation pass.
// Every field is applied as a keyed upsert; there is no read-modify-write.
type EsimUsage struct {
	DataUsed   int64
	DataTotal  int64
	ExpiryDate time.Time
	Status     EsimStatus
	UpdatedAt  time.Time
}

// EsimRef is the minimal projection the pull flow iterates over.
type EsimRef struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	ICCID   string
	OrderNo string
	Status  EsimStatus
}

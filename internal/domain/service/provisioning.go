package service

import (
	"context"
	"fmt"
	"time"
)

// ProviderError is returned when the provisioning API answers with a
// well-formed envelope whose success flag is false. Transport and decoding
// failures are reported as ordinary errors, not as ProviderError.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provisioning API error %s: %s", e.Code, e.Message)
}

// Balance is the reseller account balance at the provisioning provider.
type Balance struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// PackageInfo describes one purchasable data package.
type PackageInfo struct {
	PackageCode  string  `json:"package_code"`
	Name         string  `json:"name"`
	LocationCode string  `json:"location_code"`
	LocationName string  `json:"location_name"`
	Price        float64 `json:"price"`
	Currency     string  `json:"currency"`
	Volume       int64   `json:"volume"`   // Bytes of data included.
	Duration     int     `json:"duration"` // Validity in days.
}

// OrderRequest places a profile order for a single package.
type OrderRequest struct {
	TransactionID string // Caller-side idempotency key.
	PackageCode   string
	Count         int
	Amount        float64
}

// OrderResult is the provider's acknowledgement of an accepted order.
// Profile allocation is asynchronous; the order number is the handle used to
// query the profile later and to correlate webhooks.
type OrderResult struct {
	OrderNo string `json:"order_no"`
}

// ProfileQuery selects profiles by exactly one of order number or ICCID.
type ProfileQuery struct {
	OrderNo string
	ICCID   string
}

// ProfileInfo is the provider's view of one allocated eSIM profile.
type ProfileInfo struct {
	ICCID          string     `json:"iccid"`
	OrderNo        string     `json:"order_no"`
	ActivationCode string     `json:"activation_code"` // LPA activation string.
	QRCodeURL      string     `json:"qrcode_url"`
	ProviderStatus string     `json:"provider_status"` // Raw provider status code.
	DataUsed       int64      `json:"data_used"`       // Bytes consumed.
	DataTotal      int64      `json:"data_total"`      // Bytes purchased.
	ExpiredAt      *time.Time `json:"expired_at"`
	PackageCode    string     `json:"package_code"`
}

// ProvisioningService defines the client contract for the upstream eSIM
// provisioning API. Implementations must return *ProviderError for business
// rejections so callers can distinguish them from transport failures.
type ProvisioningService interface {
	// QueryBalance returns the reseller account balance.
	QueryBalance(ctx context.Context) (*Balance, error)

	// ListPackages returns purchasable packages, optionally filtered by
	// location code. An empty locationCode returns the full catalog.
	ListPackages(ctx context.Context, locationCode string) ([]*PackageInfo, error)

	// OrderProfile places a profile order and returns the provider order number.
	OrderProfile(ctx context.Context, req *OrderRequest) (*OrderResult, error)

	// QueryProfiles returns the profiles matching the query. Exactly one of
	// the query's fields must be set.
	QueryProfiles(ctx context.Context, query *ProfileQuery) ([]*ProfileInfo, error)

	// TopUp adds a data package to an existing profile.
	TopUp(ctx context.Context, iccid, packageCode, transactionID string) error

	// Suspend pauses service on a profile.
	Suspend(ctx context.Context, iccid string) error

	// Unsuspend resumes service on a suspended profile.
	Unsuspend(ctx context.Context, iccid string) error

	// Revoke permanently retires a profile.
	Revoke(ctx context.Context, iccid string) error
}

package entity

// EsimStatus is the application's canonical three-way eSIM status.
type EsimStatus string

const (
	// EsimStatusActive means the profile is provisioned and usable.
	EsimStatusActive EsimStatus = "active"
	// EsimStatusInactive means the profile exists but is not currently usable.
	EsimStatusInactive EsimStatus = "inactive"
	// EsimStatusExpired means the profile has been expired or revoked upstream.
	EsimStatusExpired EsimStatus = "expired"
)

// Provider status vocabulary. These are the upstream provisioning API's order
// status codes; they are referenced only here and by the webhook dispatch, so
// a provider vocabulary change touches a single place.
const (
	ProviderStatusGotResource = "GOT_RESOURCE"
	ProviderStatusSuspend     = "SUSPEND"
	ProviderStatusExpired     = "EXPIRED"
	ProviderStatusRevoked     = "REVOKED"
)

// providerStatusTable maps provider codes to canonical statuses. Codes absent
// from the table normalize to inactive: an unknown upstream state must never
// be presented as a usable plan.
var providerStatusTable = map[string]EsimStatus{
	ProviderStatusGotResource: EsimStatusActive,
	ProviderStatusSuspend:     EsimStatusInactive,
	ProviderStatusExpired:     EsimStatusExpired,
	ProviderStatusRevoked:     EsimStatusExpired,
}

// NormalizeProviderStatus maps a provider status code to the canonical
// status. Total over all inputs; the fail-safe default is inactive.
func NormalizeProviderStatus(code string) EsimStatus {
	if status, ok := providerStatusTable[code]; ok {
		return status
	}

	return EsimStatusInactive
}

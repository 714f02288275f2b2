// Package constants defines shared application constants.
package constants

// Deployment environments.
const (
	EnvDevelop = "develop"
)

// Pub/Sub provider selectors.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Lifecycle event types published on profile and order transitions.
const (
	EventOrderFulfilled = "order_fulfilled"
	EventStatusChanged  = "status_changed"
	EventUsageUpdated   = "usage_updated"
)

// Webhook event types accepted from the provisioning provider.
const (
	WebhookEventOrderStatus   = "ORDER_STATUS"
	WebhookEventDataUsage     = "DATA_USAGE"
	WebhookEventValidityUsage = "VALIDITY_USAGE"
)

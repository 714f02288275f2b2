package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeProviderStatus(t *testing.T) {
	tests := []struct {
		code string
		want EsimStatus
	}{
		{ProviderStatusGotResource, EsimStatusActive},
		{ProviderStatusSuspend, EsimStatusInactive},
		{ProviderStatusExpired, EsimStatusExpired},
		{ProviderStatusRevoked, EsimStatusExpired},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeProviderStatus(tt.code))
		})
	}
}

func TestNormalizeProviderStatus_UnknownCodesAreNeverActive(t *testing.T) {
	// Unrecognized codes fall back to inactive: an unknown upstream state
	// must not be shown as a usable plan.
	unknown := []string{
		"",
		"CREATE",
		"PAYING",
		"IN_PROGRESS",
		"got_resource", // case-sensitive vocabulary
		"DELETED",
		"garbage",
	}

	for _, code := range unknown {
		assert.Equal(t, EsimStatusInactive, NormalizeProviderStatus(code), "code %q", code)
	}
}

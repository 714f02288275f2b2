package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookConfigValidate(t *testing.T) {
	t.Run("secret set", func(t *testing.T) {
		cfg := WebhookConfig{Secret: "abc123"}
		require.NoError(t, cfg.Validate())
	})

	t.Run("explicitly disabled", func(t *testing.T) {
		cfg := WebhookConfig{InsecureSkipVerify: true}
		require.NoError(t, cfg.Validate())
	})

	t.Run("empty secret is a configuration error, not a bypass", func(t *testing.T) {
		cfg := WebhookConfig{Secret: ""}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "insecureSkipVerify")
	})

	t.Run("whitespace secret rejected", func(t *testing.T) {
		cfg := WebhookConfig{Secret: "   "}
		assert.Error(t, cfg.Validate())
	})
}

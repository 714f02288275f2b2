package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"log/slog"
	"net/http"

	"esimhub/config"
	"esimhub/internal/delivery/http/response"
	"esimhub/internal/domain/constants"
	domainerrors "esimhub/internal/domain/errors"
	"esimhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// signatureHeaders are checked in order; the first non-empty one is used.
var signatureHeaders = []string{"X-Signature", "Signature", "RT-Signature"}

// WebhookHandler ingests provider push deliveries.
type WebhookHandler struct {
	uc     usecase.WebhookUsecase
	cfg    config.WebhookConfig
	logger *slog.Logger
}

// NewWebhookHandler is the constructor for WebhookHandler
func NewWebhookHandler(uc usecase.WebhookUsecase, cfg *config.Config, logger *slog.Logger) *WebhookHandler {
	if cfg.Webhook.InsecureSkipVerify && cfg.Env.Env != constants.EnvDevelop {
		logger.Warn("webhook signature verification is disabled outside develop")
	}

	return &WebhookHandler{
		uc:     uc,
		cfg:    cfg.Webhook,
		logger: logger,
	}
}

// Receive handles one webhook delivery. The signature is computed over the
// raw request body exactly as received; any re-serialization would change
// the bytes and break verification.
func (h *WebhookHandler) Receive(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(err, "failed to read webhook body")
	}

	if !h.cfg.InsecureSkipVerify {
		if err := h.verifySignature(c, payload); err != nil {
			return err
		}
	}

	result, err := h.uc.Handle(c.Request().Context(), payload)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, result, "Webhook processed")
}

func (h *WebhookHandler) verifySignature(c echo.Context, payload []byte) error {
	var provided string
	for _, header := range signatureHeaders {
		if value := c.Request().Header.Get(header); value != "" {
			provided = value

			break
		}
	}
	if provided == "" {
		return domainerrors.ErrWebhookSignatureInvalid.WithDetails("missing signature header")
	}

	providedMAC, err := hex.DecodeString(provided)
	if err != nil {
		return domainerrors.ErrWebhookSignatureInvalid.WithDetails("signature is not valid hex")
	}

	mac := hmac.New(sha256.New, []byte(h.cfg.Secret))
	mac.Write(payload)
	if !hmac.Equal(providedMAC, mac.Sum(nil)) {
		h.logger.LogAttrs(c.Request().Context(), slog.LevelWarn, "webhook signature mismatch",
			slog.String("remote_ip", c.RealIP()),
		)

		return domainerrors.ErrWebhookSignatureInvalid
	}

	return nil
}

package notification

import (
	"context"
	"log/slog"

	"esimhub/config"
	"esimhub/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// noopPushService is a no-op implementation when push delivery is disabled
type noopPushService struct {
	logger *slog.Logger
}

func (s *noopPushService) SendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) error {
	s.logger.Debug("[NoopPush] Push delivery disabled, skipping",
		slog.String("user_id", userID.String()),
		slog.String("title", title),
	)

	return nil
}

// PushParams holds dependencies for PushService, injected by Fx
type PushParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewPushService creates a PushService based on configuration
func NewPushService(params PushParams) (service.PushService, error) {
	cfg := params.Config.Firebase
	logger := params.Logger

	// If Firebase is not configured, return a no-op push service
	if cfg == nil || cfg.CredentialsPath == "" {
		logger.Info("Firebase not configured, using no-op push service")

		return &noopPushService{logger: logger}, nil
	}

	logger.Info("Using Firebase push service",
		slog.String("project_id", cfg.ProjectID),
	)

	return NewFirebaseService(params.Ctx, cfg.CredentialsPath)
}

// Module provides the push notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPushService),
)

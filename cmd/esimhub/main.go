package main

import (
	"context"
	"log/slog"
	"os"

	"esimhub/config"
	"esimhub/internal/delivery"
	"esimhub/internal/delivery/http"
	"esimhub/internal/delivery/http/middleware"
	"esimhub/internal/delivery/http/router/handler"
	"esimhub/internal/domain/service"
	"esimhub/internal/infra/auth"
	logs "esimhub/internal/infra/log"
	"esimhub/internal/infra/notification"
	"esimhub/internal/infra/persistence/postgres"
	"esimhub/internal/infra/provisioning"
	"esimhub/internal/infra/pubsub"
	"esimhub/internal/infra/qrcode"
	"esimhub/internal/usecase"
	"esimhub/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startScheduler,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewEsimRepository,
			postgres.NewOrderRepository,
			postgres.NewNotificationRepository,
			postgres.NewWebhookLogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		notification.Module,
		pubsub.Module,
		fx.Provide(
			auth.NewJWTService,
			provisioning.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewEsimService,
			impl.NewOrderService,
			impl.NewCatalogService,
			impl.NewNotificationService,
			impl.NewSyncService,
			impl.NewWebhookService,
			newPollScheduler,
		),
	)
}

// newPollScheduler creates the pull-flow scheduler with the configured
// interval and the production ticker.
func newPollScheduler(logger *slog.Logger, syncUC usecase.SyncUsecase, cfg *config.Config) *impl.PollScheduler {
	return impl.NewPollScheduler(logger, syncUC, cfg.Sync.Interval, nil)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewEsimHandler,
			handler.NewOrderHandler,
			handler.NewCatalogHandler,
			handler.NewNotificationHandler,
			handler.NewWebhookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startScheduler(lc fx.Lifecycle, ctx context.Context, scheduler *impl.PollScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			scheduler.Start(ctx)

			return nil
		},
		OnStop: func(context.Context) error {
			scheduler.Stop()

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}

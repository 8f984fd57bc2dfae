package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"greenloop/config"
	"greenloop/internal/delivery"
	"greenloop/internal/delivery/worker"
	"greenloop/internal/delivery/worker/handler"
	"greenloop/internal/domain/service"
	logs "greenloop/internal/infra/log"
	"greenloop/internal/infra/notification"
	"greenloop/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			postgres.NewDeviceRepository,
			newFirebaseService,
			handler.NewPushHandler,
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// newFirebaseService creates the FCM client. The worker cannot run without it.
func newFirebaseService(ctx context.Context, cfg *config.Config) (service.NotificationService, error) {
	if cfg.Firebase == nil {
		return nil, fmt.Errorf("firebase configuration is required for the notification worker")
	}

	svc, err := notification.NewFirebaseService(ctx, cfg.Firebase.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create Firebase service: %w", err)
	}

	return svc, nil
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

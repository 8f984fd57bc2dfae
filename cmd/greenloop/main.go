package main

import (
	"context"
	"log/slog"
	"os"

	"greenloop/config"
	"greenloop/internal/delivery"
	"greenloop/internal/delivery/api"
	apimiddleware "greenloop/internal/delivery/api/middleware"
	"greenloop/internal/delivery/api/router/handler"
	"greenloop/internal/domain/service"
	"greenloop/internal/infra/auth"
	logs "greenloop/internal/infra/log"
	"greenloop/internal/infra/persistence/postgres"
	"greenloop/internal/infra/pubsub"
	"greenloop/internal/infra/qrcode"
	"greenloop/internal/infra/storage"
	"greenloop/internal/usecase/impl"

	"go.uber.org/fx"
	"golang.org/x/crypto/bcrypt"
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
			postgres.NewAnnouncementRepository,
			postgres.NewCollectionRepository,
			postgres.NewUserRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		pubsub.Module,
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
			storage.NewBlobImageStore,
		),
	)
}

// newBcryptHasher creates the password hasher with the configured cost
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		cost = cfg.Auth.BcryptCost
	}

	return auth.NewBcryptHasher(cost)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "H")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAnnouncementService,
			impl.NewCollectionService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			handler.NewAnnouncementHandler,
			handler.NewCollectionHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
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

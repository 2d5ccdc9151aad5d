package main

import (
	"context"
	"log/slog"
	"os"

	"mimapa/config"
	"mimapa/internal/delivery"
	"mimapa/internal/delivery/http"
	"mimapa/internal/delivery/http/middleware"
	"mimapa/internal/delivery/http/router/handler"
	"mimapa/internal/domain/service"
	"mimapa/internal/infra/auth"
	"mimapa/internal/infra/auth/google"
	"mimapa/internal/infra/cache"
	"mimapa/internal/infra/geocode"
	"mimapa/internal/infra/imagestore"
	logs "mimapa/internal/infra/log"
	"mimapa/internal/infra/metrics"
	"mimapa/internal/infra/persistence/postgres"
	"mimapa/internal/infra/pubsub"
	"mimapa/internal/infra/qrcode"
	"mimapa/internal/infra/sanitize"
	"mimapa/internal/usecase/impl"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// A local .env only seeds variables that are not already set.
	_ = godotenv.Load()

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
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			cache.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewReviewRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewOAuthService,
			google.NewAuthService,
			sanitize.NewPlainText,
			newQRCodeService,
		),
		pubsub.Module,
		imagestore.Module,
		geocode.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewIdentityService,
			impl.NewAuthService,
			impl.NewReviewService,
			impl.NewMediaService,
			impl.NewGeocodeService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewReviewHandler,
			handler.NewMediaHandler,
			handler.NewGeocodeHandler,
			handler.NewHealthHandler,
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

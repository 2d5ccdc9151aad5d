package handler

import (
	"context"
	"log/slog"
	"net/http"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/domain/lifecycle"
	"mimapa/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	serviceVersion     = "1.0.0"
	serviceDescription = "API para gestión de reseñas de establecimientos con OAuth 2.0, geocoding e imágenes"
)

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Config *config.Config
	Logger *slog.Logger
}

// HealthHandler serves the banner and the liveness probe.
type HealthHandler struct {
	db          Pinger
	serviceName string
	logger      *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) (*HealthHandler, error) {
	sqlDB, err := params.DB.DB()
	if err != nil {
		return nil, errors.Wrap(err, "get sql.DB for health checks")
	}

	return newHealthHandler(sqlDB, params.Config.Env.ServiceName, params.Logger), nil
}

func newHealthHandler(db Pinger, serviceName string, logger *slog.Logger) *HealthHandler {
	if serviceName == "" {
		serviceName = "mimapa"
	}

	return &HealthHandler{
		db:          db,
		serviceName: serviceName,
		logger:      logger,
	}
}

// BannerResponse describes the running service.
type BannerResponse struct {
	Status      string `json:"status"`
	Service     string `json:"service"`
	Version     string `json:"version"`
	Description string `json:"description"`
}

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Banner handles GET /
func (h *HealthHandler) Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, BannerResponse{
		Status:      "ok",
		Service:     h.serviceName,
		Version:     serviceVersion,
		Description: serviceDescription,
	})
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), lifecycle.ProbeTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Health check failed", slog.Any("error", err))

		return c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "unavailable", Database: "down"})
	}

	return c.JSON(http.StatusOK, HealthResponse{Status: "ok", Database: "up"})
}

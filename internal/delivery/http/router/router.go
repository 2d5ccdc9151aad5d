// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mimapa/config"
	"mimapa/internal/delivery/http/middleware"
	"mimapa/internal/delivery/http/router/handler"
	"mimapa/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ReviewHandler  *handler.ReviewHandler
	MediaHandler   *handler.MediaHandler
	GeocodeHandler *handler.GeocodeHandler
	HealthHandler  *handler.HealthHandler
	AuthMiddleware *middleware.AuthMiddleware
	Gatherer       *prometheus.Registry
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	reviewHandler  *handler.ReviewHandler
	mediaHandler   *handler.MediaHandler
	geocodeHandler *handler.GeocodeHandler
	healthHandler  *handler.HealthHandler
	authMiddleware *middleware.AuthMiddleware
	gatherer       prometheus.Gatherer
	config         *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		reviewHandler:  params.ReviewHandler,
		mediaHandler:   params.MediaHandler,
		geocodeHandler: params.GeocodeHandler,
		healthHandler:  params.HealthHandler,
		authMiddleware: params.AuthMiddleware,
		gatherer:       params.Gatherer,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", r.healthHandler.Banner)
	e.GET("/health", r.healthHandler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.GET("/login/google", r.authHandler.GoogleLogin)
		authGroup.GET("/callback/google", r.authHandler.GoogleCallback)
		authGroup.POST("/google/id-token", r.authHandler.GoogleIDToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.GET("/session", r.authHandler.Session, r.authMiddleware.OptionalAuthenticate)
	}

	// Every review route requires a resolved identity.
	reviewsGroup := api.Group("/resenas")
	reviewsGroup.Use(r.authMiddleware.Authenticate)
	{
		reviewsGroup.POST("", r.reviewHandler.CreateReview)
		reviewsGroup.GET("", r.reviewHandler.ListReviews)
		reviewsGroup.GET("/mis-resenas", r.reviewHandler.MyReviews)
		reviewsGroup.GET("/establecimiento/:nombre", r.reviewHandler.SearchByEstablishment)
		reviewsGroup.GET("/ubicacion", r.reviewHandler.SearchByLocation)
		reviewsGroup.GET("/ubicacion/geojson", r.reviewHandler.SearchByLocationGeoJSON)
		reviewsGroup.GET("/valoracion", r.reviewHandler.SearchByRating)
		reviewsGroup.POST("/upload-image", r.mediaHandler.UploadImage)
		reviewsGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewsGroup.PUT("/:id", r.reviewHandler.UpdateReview)
		reviewsGroup.DELETE("/:id", r.reviewHandler.DeleteReview)
		reviewsGroup.GET("/:id/qr", r.reviewHandler.ShareQR)
	}

	geocodingGroup := api.Group("/geocoding")
	geocodingGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		geocodingGroup.GET("/search", r.geocodeHandler.Search)
		geocodingGroup.GET("/reverse", r.geocodeHandler.Reverse)
	}
}

// RegisterMetricsRoute exposes the Prometheus registry when enabled.
func (r *router) RegisterMetricsRoute(e *echo.Echo) {
	if r.config.Metrics == nil || !r.config.Metrics.Enabled {
		return
	}

	e.GET(r.config.Metrics.Path, echo.WrapHandler(metrics.Handler(r.gatherer)))
}

package geocode

import (
	"log/slog"

	"mimapa/config"
	"mimapa/internal/domain/service"
	"mimapa/internal/infra/cache"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Cache   *cache.Client
	Metrics service.MetricsRecorder
	Logger  *slog.Logger
}

// New builds the Nominatim geocoder, cached when redis is configured
func New(params Params) service.Geocoder {
	cfg := params.Config.Geocoding
	geocoder := NewNominatimClient(cfg, params.Logger)

	if !params.Cache.Enabled() || cfg.CacheTTL <= 0 {
		return geocoder
	}

	params.Logger.Info("Geocode cache enabled", slog.Duration("ttl", cfg.CacheTTL))

	return NewCachedGeocoder(geocoder, params.Cache, cfg.CacheTTL, params.Metrics, params.Logger)
}

// Module provides the geocoder
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)

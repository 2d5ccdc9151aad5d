package geocode

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"mimapa/internal/domain/entity"
	"mimapa/internal/domain/service"
	"mimapa/internal/infra/cache"

	"github.com/pkg/errors"
)

const (
	operationSearch  = "search"
	operationReverse = "reverse"
)

// cachedGeocoder stores results, misses included, in redis in front of another Geocoder.
// Cache failures fall through to the provider.
type cachedGeocoder struct {
	next    service.Geocoder
	cache   *cache.Client
	ttl     time.Duration
	metrics service.MetricsRecorder
	logger  *slog.Logger
}

// NewCachedGeocoder wraps next with a redis cache
func NewCachedGeocoder(next service.Geocoder, client *cache.Client, ttl time.Duration, metrics service.MetricsRecorder, logger *slog.Logger) service.Geocoder {
	return &cachedGeocoder{
		next:    next,
		cache:   client,
		ttl:     ttl,
		metrics: metrics,
		logger:  logger,
	}
}

type cachedSearch struct {
	Found    bool    `json:"found"`
	Latitud  float64 `json:"latitud"`
	Longitud float64 `json:"longitud"`
}

type cachedReverse struct {
	Found     bool   `json:"found"`
	Direccion string `json:"direccion"`
}

func searchKey(query string) string {
	return cache.Key("geocode", operationSearch, strings.ToLower(strings.TrimSpace(query)))
}

func reverseKey(point entity.GeoPoint) string {
	return cache.Key("geocode", operationReverse,
		strconv.FormatFloat(point.Latitud, 'f', 6, 64),
		strconv.FormatFloat(point.Longitud, 'f', 6, 64),
	)
}

func (g *cachedGeocoder) Geocode(ctx context.Context, query string) (*entity.GeocodeResult, error) {
	key := searchKey(query)

	var hit cachedSearch
	if g.lookup(ctx, operationSearch, key, &hit) {
		return &entity.GeocodeResult{
			Found: hit.Found,
			Point: entity.GeoPoint{Latitud: hit.Latitud, Longitud: hit.Longitud},
		}, nil
	}

	result, err := g.next.Geocode(ctx, query)
	if err != nil {
		return nil, err
	}

	g.store(ctx, key, cachedSearch{
		Found:    result.Found,
		Latitud:  result.Point.Latitud,
		Longitud: result.Point.Longitud,
	})

	return result, nil
}

func (g *cachedGeocoder) Reverse(ctx context.Context, point entity.GeoPoint) (*entity.ReverseGeocodeResult, error) {
	key := reverseKey(point)

	var hit cachedReverse
	if g.lookup(ctx, operationReverse, key, &hit) {
		return &entity.ReverseGeocodeResult{Found: hit.Found, Direccion: hit.Direccion}, nil
	}

	result, err := g.next.Reverse(ctx, point)
	if err != nil {
		return nil, err
	}

	g.store(ctx, key, cachedReverse{Found: result.Found, Direccion: result.Direccion})

	return result, nil
}

func (g *cachedGeocoder) lookup(ctx context.Context, operation, key string, out any) bool {
	raw, err := g.cache.Get(ctx, key)
	if err == nil {
		err = json.Unmarshal(raw, out)
	}

	hit := err == nil
	if g.metrics != nil {
		g.metrics.RecordGeocodeCache(operation, hit)
	}
	if err != nil && !errors.Is(err, cache.ErrMiss) {
		g.logger.Warn("Geocode cache read failed", slog.String("key", key), slog.Any("error", err))
	}

	return hit
}

func (g *cachedGeocoder) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err == nil {
		err = g.cache.Set(ctx, key, raw, g.ttl)
	}
	if err != nil {
		g.logger.Warn("Geocode cache write failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Package geocode resolves place names through a Nominatim server.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"mimapa/config"
	"mimapa/internal/domain/entity"
	"mimapa/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// reverseZoom asks Nominatim for city-level detail.
const reverseZoom = "10"

// nominatimClient implements service.Geocoder against the Nominatim HTTP API.
// Every request waits on a shared limiter; the public server allows one request per second.
type nominatimClient struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewNominatimClient creates a throttled Nominatim client
func NewNominatimClient(cfg *config.GeocodingConfig, logger *slog.Logger) service.Geocoder {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}

	return &nominatimClient{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 1),
		logger:     logger,
	}
}

type searchHit struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

type reverseHit struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

func (c *nominatimClient) Geocode(ctx context.Context, query string) (*entity.GeocodeResult, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", "1")

	var hits []searchHit
	if err := c.get(ctx, "/search", params, &hits); err != nil {
		return nil, err
	}

	if len(hits) == 0 {
		c.logger.Debug("Geocode returned no results", slog.String("query", query))

		return &entity.GeocodeResult{Found: false}, nil
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid latitude in geocode response")
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid longitude in geocode response")
	}

	return &entity.GeocodeResult{
		Found: true,
		Point: entity.GeoPoint{Latitud: lat, Longitud: lon},
	}, nil
}

func (c *nominatimClient) Reverse(ctx context.Context, point entity.GeoPoint) (*entity.ReverseGeocodeResult, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(point.Latitud, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(point.Longitud, 'f', -1, 64))
	params.Set("format", "json")
	params.Set("zoom", reverseZoom)

	var hit reverseHit
	if err := c.get(ctx, "/reverse", params, &hit); err != nil {
		return nil, err
	}

	// Nominatim answers 200 with an "error" member when nothing is near the point.
	if hit.DisplayName == "" {
		return &entity.ReverseGeocodeResult{Found: false}, nil
	}

	return &entity.ReverseGeocodeResult{Found: true, Direccion: hit.DisplayName}, nil
}

func (c *nominatimClient) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return errors.Wrap(err, "geocode rate limiter")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return errors.Wrap(err, "failed to build geocode request")
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "geocode request failed")
	}
	defer resp.Body.Close()

	c.logger.Debug("Geocode request completed",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("geocode provider returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode geocode response")
	}

	return nil
}

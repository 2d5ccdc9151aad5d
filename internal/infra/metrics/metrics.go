// Package metrics exposes Prometheus collectors for the HTTP API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"mimapa/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "mimapa"

// Collector implements service.MetricsRecorder on Prometheus collectors.
type Collector struct {
	httpRequests    *prometheus.CounterVec
	httpDuration    *prometheus.HistogramVec
	reviewMutations *prometheus.CounterVec
	geocodeCache    *prometheus.CounterVec
	uploadBytes     prometheus.Histogram
	reviewEvents    *prometheus.CounterVec
}

var _ service.MetricsRecorder = (*Collector)(nil)

// NewCollector registers the collectors on reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	factory := promauto.With(reg)

	return &Collector{
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		httpDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		reviewMutations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_mutations_total",
			Help:      "Committed review mutations by kind.",
		}, []string{"kind"}),
		geocodeCache: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "geocode_cache_lookups_total",
			Help:      "Geocode cache lookups by operation and result.",
		}, []string{"operation", "result"}),
		uploadBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upload_bytes",
			Help:      "Size of accepted image uploads.",
			Buckets:   prometheus.ExponentialBuckets(16<<10, 4, 6),
		}),
		reviewEvents: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "review_events_consumed_total",
			Help:      "Review events received by the worker by type and outcome.",
		}, []string{"type", "outcome"}),
	}
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

func (c *Collector) RecordReviewMutation(kind string) {
	c.reviewMutations.WithLabelValues(kind).Inc()
}

func (c *Collector) RecordGeocodeCache(operation string, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	c.geocodeCache.WithLabelValues(operation, result).Inc()
}

func (c *Collector) RecordUpload(size int64) {
	c.uploadBytes.Observe(float64(size))
}

func (c *Collector) RecordReviewEvent(eventType, outcome string) {
	c.reviewEvents.WithLabelValues(eventType, outcome).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// NewRegistry creates the application registry with Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// Module provides the registry and the recorder
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(reg *prometheus.Registry) *Collector { return NewCollector(reg) },
		func(c *Collector) service.MetricsRecorder { return c },
	),
)

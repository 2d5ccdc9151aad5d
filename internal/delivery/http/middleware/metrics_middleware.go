package middleware

import (
	"net/http"
	"time"

	"mimapa/internal/domain/service"
	"mimapa/internal/errors"

	"github.com/labstack/echo/v4"
)

const unmatchedRoute = "unmatched"

// MetricsMiddleware records request counts and latency per route template.
type MetricsMiddleware struct {
	recorder service.MetricsRecorder
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(recorder service.MetricsRecorder) *MetricsMiddleware {
	return &MetricsMiddleware{recorder: recorder}
}

// Handle must run outside the logger middleware, which renders errors, so the final
// status is visible here.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)

		// Route templates keep label cardinality bounded; raw paths would not.
		route := c.Path()
		if route == "" {
			route = unmatchedRoute
		}

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			var httpErr *echo.HTTPError
			if errors.As(err, &httpErr) {
				status = httpErr.Code
			} else {
				status = http.StatusInternalServerError
			}
		}

		m.recorder.RecordHTTPRequest(c.Request().Method, route, status, time.Since(start))

		return err
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	mockSvc "mimapa/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/mock"
)

func TestMetricsMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name       string
		route      string
		handler    echo.HandlerFunc
		wantRoute  string
		wantStatus int
	}{
		{
			name:       "records the route template",
			route:      "/api/resenas/:id",
			handler:    func(c echo.Context) error { return c.NoContent(http.StatusNoContent) },
			wantRoute:  "/api/resenas/:id",
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "unrendered http errors use their status",
			route:      "/api/resenas",
			handler:    func(echo.Context) error { return echo.ErrTooManyRequests },
			wantRoute:  "/api/resenas",
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:       "unrendered plain errors count as 500",
			route:      "",
			handler:    func(echo.Context) error { return errors.New("boom") },
			wantRoute:  unmatchedRoute,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := mockSvc.NewMockMetricsRecorder(t)
			recorder.EXPECT().
				RecordHTTPRequest(http.MethodGet, tt.wantRoute, tt.wantStatus, mock.AnythingOfType("time.Duration")).
				Return()

			c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), httptest.NewRecorder())
			c.SetPath(tt.route)

			_ = NewMetricsMiddleware(recorder).Handle(tt.handler)(c)
		})
	}
}


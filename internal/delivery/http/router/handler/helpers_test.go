package handler

import (
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"time"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/domain/entity"
	"mimapa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Reviews: &config.ReviewsConfig{DefaultLimit: 100, MaxLimit: 100},
	}
	cfg.Frontend.URL = "http://localhost:4200/"

	return cfg
}

func newIdentity(email string) *usecase.Identity {
	return &usecase.Identity{
		User: &entity.User{
			ID:            uuid.New(),
			Email:         email,
			Name:          "Autora",
			OAuthProvider: entity.ProviderTypeGoogle,
			OAuthID:       "google-sub",
		},
		Token: "token-de-" + email,
	}
}

func newReview(author string) *entity.Review {
	return &entity.Review{
		ID:                    uuid.Must(uuid.NewV7()),
		NombreEstablecimiento: "Café Central",
		Direccion:             "Calle Mayor 1",
		Latitud:               40.4168,
		Longitud:              -3.7038,
		Valoracion:            4.5,
		EmailAutor:            author,
		NombreAutor:           "Autora",
		Provenance: entity.TokenProvenance{
			IssuedAt:  time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC),
			ExpiresAt: time.Date(2026, 1, 1, 10, 30, 0, 0, time.UTC),
			RawToken:  "raw-token",
		},
		CreatedAt: time.Date(2026, 1, 1, 10, 5, 0, 0, time.UTC),
	}
}

// newContext builds an echo context; identity may be nil for anonymous requests.
func newContext(method, target, body string, identity *usecase.Identity) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if identity != nil {
		deliverycontext.SetIdentity(c, identity)
	}

	return c, rec
}

func ptr[T any](v T) *T {
	return &v
}

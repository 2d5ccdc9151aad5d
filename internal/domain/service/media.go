package service

import (
	"context"

	"mimapa/internal/domain/entity"
)

// ImageStore persists uploaded images and returns their public URL.
type ImageStore interface {
	Store(ctx context.Context, data []byte, filename, contentType string) (string, error)
}

// Geocoder resolves place names to coordinates and back.
// A lookup without results is reported through Found=false, never as an error.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*entity.GeocodeResult, error)
	Reverse(ctx context.Context, point entity.GeoPoint) (*entity.ReverseGeocodeResult, error)
}

// TextSanitizer strips markup from user supplied text.
type TextSanitizer interface {
	PlainText(input string) string
}

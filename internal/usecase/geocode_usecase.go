package usecase

import (
	"context"

	"mimapa/internal/domain/entity"
)

// GeocodeUsecase exposes forward and reverse lookups.
// A lookup without results is a normal outcome (Found=false).
type GeocodeUsecase interface {
	Search(ctx context.Context, query string) (*entity.GeocodeResult, error)
	Reverse(ctx context.Context, latitud, longitud float64) (*entity.ReverseGeocodeResult, error)
}

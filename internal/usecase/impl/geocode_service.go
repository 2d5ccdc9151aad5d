package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/service"
	"mimapa/internal/usecase"

	"go.uber.org/fx"
)

// geocodeService implements the GeocodeUsecase interface.
type geocodeService struct {
	geocoder service.Geocoder
	logger   *slog.Logger
}

// GeocodeServiceParams holds dependencies for GeocodeService, injected by Fx.
type GeocodeServiceParams struct {
	fx.In

	Geocoder service.Geocoder
	Logger   *slog.Logger
}

// NewGeocodeService is the constructor for geocodeService.
func NewGeocodeService(params GeocodeServiceParams) usecase.GeocodeUsecase {
	return &geocodeService{
		geocoder: params.Geocoder,
		logger:   params.Logger,
	}
}

func (srv *geocodeService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *geocodeService) Search(ctx context.Context, query string) (*entity.GeocodeResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "q",
			Rule:    "required",
			Message: "es obligatorio",
		})
	}

	result, err := srv.geocoder.Geocode(ctx, query)
	if err != nil {
		srv.log(ctx).Warn("Geocode lookup failed", slog.String("query", query), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}

	return result, nil
}

func (srv *geocodeService) Reverse(ctx context.Context, latitud, longitud float64) (*entity.ReverseGeocodeResult, error) {
	var violations []domainerrors.FieldViolation
	violations = appendRange(violations, "latitud", latitud, -90, 90)
	violations = appendRange(violations, "longitud", longitud, -180, 180)
	if len(violations) > 0 {
		return nil, domainerrors.NewValidationError(violations...)
	}

	result, err := srv.geocoder.Reverse(ctx, entity.GeoPoint{Latitud: latitud, Longitud: longitud})
	if err != nil {
		srv.log(ctx).Warn("Reverse geocode lookup failed", slog.Float64("latitud", latitud), slog.Float64("longitud", longitud), slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}

	return result, nil
}

package impl

import (
	"context"
	"testing"

	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	mockSvc "mimapa/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeService_Search(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		geocoder := mockSvc.NewMockGeocoder(t)
		srv := NewGeocodeService(GeocodeServiceParams{Geocoder: geocoder, Logger: newDiscardLogger()})
		want := &entity.GeocodeResult{Found: true, Point: entity.GeoPoint{Latitud: 40.41, Longitud: -3.70}}
		geocoder.EXPECT().Geocode(ctx, "Madrid").Return(want, nil)

		got, err := srv.Search(ctx, " Madrid ")

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("miss is not an error", func(t *testing.T) {
		geocoder := mockSvc.NewMockGeocoder(t)
		srv := NewGeocodeService(GeocodeServiceParams{Geocoder: geocoder, Logger: newDiscardLogger()})
		geocoder.EXPECT().Geocode(ctx, "zzzz").Return(&entity.GeocodeResult{}, nil)

		got, err := srv.Search(ctx, "zzzz")

		require.NoError(t, err)
		assert.False(t, got.Found)
	})

	t.Run("blank query", func(t *testing.T) {
		srv := NewGeocodeService(GeocodeServiceParams{Geocoder: mockSvc.NewMockGeocoder(t), Logger: newDiscardLogger()})

		_, err := srv.Search(ctx, "  ")

		requireViolation(t, err, "q")
	})

	t.Run("provider failure", func(t *testing.T) {
		geocoder := mockSvc.NewMockGeocoder(t)
		srv := NewGeocodeService(GeocodeServiceParams{Geocoder: geocoder, Logger: newDiscardLogger()})
		geocoder.EXPECT().Geocode(ctx, "Madrid").Return(nil, errors.New("503 from nominatim"))

		_, err := srv.Search(ctx, "Madrid")

		assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
	})
}

func TestGeocodeService_Reverse(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		geocoder := mockSvc.NewMockGeocoder(t)
		srv := NewGeocodeService(GeocodeServiceParams{Geocoder: geocoder, Logger: newDiscardLogger()})
		geocoder.EXPECT().Reverse(ctx, entity.GeoPoint{Latitud: 40.41, Longitud: -3.70}).
			Return(&entity.ReverseGeocodeResult{Found: true, Direccion: "Madrid, España"}, nil)

		got, err := srv.Reverse(ctx, 40.41, -3.70)

		require.NoError(t, err)
		assert.Equal(t, "Madrid, España", got.Direccion)
	})

	t.Run("out of range", func(t *testing.T) {
		srv := NewGeocodeService(GeocodeServiceParams{Geocoder: mockSvc.NewMockGeocoder(t), Logger: newDiscardLogger()})

		_, err := srv.Reverse(ctx, 91, 181)

		requireViolation(t, err, "latitud")
		requireViolation(t, err, "longitud")
	})
}

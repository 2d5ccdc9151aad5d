package postgres

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mimapa/config"
	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/service"
	"mimapa/internal/infra/auth"
	"mimapa/internal/infra/qrcode"
	"mimapa/internal/infra/sanitize"
	mockSvc "mimapa/internal/mocks/service"
	"mimapa/internal/usecase"
	"mimapa/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// reviewFlow runs the review service against the sqlite store with real tokens.
type reviewFlow struct {
	reviews usecase.ReviewUsecase
	tokens  service.TokenService
}

func newReviewFlow(t *testing.T) *reviewFlow {
	t.Helper()

	db := newTestDB(t)
	cfg := &config.Config{
		JWT: config.JWTConfig{Secret: "review-flow-secret", Algorithm: "HS256"},
		Reviews: &config.ReviewsConfig{
			DefaultLimit:    100,
			MaxLimit:        100,
			DefaultRadiusKm: 5,
			MinRadiusKm:     0.1,
			MaxRadiusKm:     100,
		},
	}

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishReviewEvent(mock.Anything, mock.Anything).Return(nil).Maybe()
	recorder := mockSvc.NewMockMetricsRecorder(t)
	recorder.EXPECT().RecordReviewMutation(mock.Anything).Maybe()

	reviews := impl.NewReviewService(impl.ReviewServiceParams{
		TxManager:    NewTransactionManager(db),
		ReviewRepo:   NewReviewRepository(db),
		TokenService: tokenService,
		Sanitizer:    sanitize.NewPlainText(),
		Publisher:    publisher,
		QRService:    qrcode.NewQRCodeService(128, "M", ""),
		Metrics:      recorder,
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &reviewFlow{reviews: reviews, tokens: tokenService}
}

func (f *reviewFlow) identity(t *testing.T, email string) *usecase.Identity {
	t.Helper()

	issued, err := f.tokens.Issue(email)
	require.NoError(t, err)

	return &usecase.Identity{
		User:  &entity.User{ID: uuid.New(), Email: email, Name: "Autor"},
		Token: issued.AccessToken,
	}
}

func (f *reviewFlow) create(t *testing.T, author *usecase.Identity, nombre string, lat, lon, rating float64) *entity.Review {
	t.Helper()

	review, err := f.reviews.Create(context.Background(), author, &usecase.CreateReviewInput{
		NombreEstablecimiento: &nombre,
		Direccion:             ptr("Calle Mayor 1"),
		Latitud:               &lat,
		Longitud:              &lon,
		Valoracion:            &rating,
	})
	require.NoError(t, err)

	return review
}

func ptr[T any](v T) *T {
	return &v
}

func containsReview(reviews []*entity.Review, id uuid.UUID) bool {
	for _, r := range reviews {
		if r.ID == id {
			return true
		}
	}

	return false
}

func TestReviewFlow_CreateThenSearch(t *testing.T) {
	ctx := context.Background()
	flow := newReviewFlow(t)
	ana := flow.identity(t, "ana@example.com")

	cafe := flow.create(t, ana, "Cafe X", 40, -3, 4.5)
	assert.Equal(t, "ana@example.com", cafe.EmailAutor)
	assert.False(t, cafe.Provenance.ExpiresAt.Before(cafe.Provenance.IssuedAt))

	first, err := flow.reviews.Get(ctx, cafe.ID)
	require.NoError(t, err)
	second, err := flow.reviews.Get(ctx, cafe.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, "Cafe X", first.NombreEstablecimiento)

	high, err := flow.reviews.SearchByRating(ctx, usecase.SearchByRatingInput{Min: ptr(4.0), Max: ptr(5.0)})
	require.NoError(t, err)
	assert.True(t, containsReview(high, cafe.ID))

	low, err := flow.reviews.SearchByRating(ctx, usecase.SearchByRatingInput{Min: ptr(0.0), Max: ptr(3.0)})
	require.NoError(t, err)
	assert.False(t, containsReview(low, cafe.ID))
}

func TestReviewFlow_SearchByLocation(t *testing.T) {
	ctx := context.Background()
	flow := newReviewFlow(t)
	ana := flow.identity(t, "ana@example.com")

	near := flow.create(t, ana, "Cafe X", 40, -3, 4.5)
	far := flow.create(t, ana, "Cafe Lejano", 41, -3, 3)

	found, err := flow.reviews.SearchByLocation(ctx, usecase.SearchByLocationInput{
		Latitud:  40,
		Longitud: -3,
		RadioKm:  ptr(5.0),
	})
	require.NoError(t, err)
	assert.True(t, containsReview(found, near.ID))
	assert.False(t, containsReview(found, far.ID))
}

func TestReviewFlow_DeleteThenGet(t *testing.T) {
	ctx := context.Background()
	flow := newReviewFlow(t)
	ana := flow.identity(t, "ana@example.com")

	cafe := flow.create(t, ana, "Cafe X", 40, -3, 4.5)
	require.NoError(t, flow.reviews.Delete(ctx, ana, cafe.ID))

	_, err := flow.reviews.Get(ctx, cafe.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)

	err = flow.reviews.Delete(ctx, ana, cafe.ID)
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
}

func TestReviewFlow_NonOwnerCannotMutate(t *testing.T) {
	ctx := context.Background()
	flow := newReviewFlow(t)
	ana := flow.identity(t, "ana@example.com")
	bob := flow.identity(t, "bob@example.com")

	cafe := flow.create(t, ana, "Cafe X", 40, -3, 4.5)

	_, err := flow.reviews.Update(ctx, bob, cafe.ID, &usecase.UpdateReviewInput{Valoracion: ptr(1.0)})
	assert.ErrorIs(t, err, domainerrors.ErrReviewNotFound)
	assert.ErrorIs(t, flow.reviews.Delete(ctx, bob, cafe.ID), domainerrors.ErrReviewNotFound)

	stored, err := flow.reviews.Get(ctx, cafe.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.5, stored.Valoracion, 1e-9)
}

func TestReviewFlow_BoundaryValuesAccepted(t *testing.T) {
	ctx := context.Background()
	flow := newReviewFlow(t)
	ana := flow.identity(t, "ana@example.com")

	corners := []struct {
		lat, lon, rating float64
	}{
		{90, 180, 5},
		{-90, -180, 0},
		{90, -180, 0},
		{-90, 180, 5},
	}
	for _, c := range corners {
		review := flow.create(t, ana, "Esquina", c.lat, c.lon, c.rating)
		assert.InDelta(t, c.lat, review.Latitud, 1e-9)
		assert.InDelta(t, c.lon, review.Longitud, 1e-9)
		assert.InDelta(t, c.rating, review.Valoracion, 1e-9)
	}

	cafe := flow.create(t, ana, "Cafe X", 40, -3, 4.5)
	for _, c := range corners {
		updated, err := flow.reviews.Update(ctx, ana, cafe.ID, &usecase.UpdateReviewInput{
			Latitud:    ptr(c.lat),
			Longitud:   ptr(c.lon),
			Valoracion: ptr(c.rating),
		})
		require.NoError(t, err)
		assert.InDelta(t, c.lat, updated.Latitud, 1e-9)
		assert.InDelta(t, c.lon, updated.Longitud, 1e-9)
		assert.InDelta(t, c.rating, updated.Valoracion, 1e-9)
	}
}

func TestReviewFlow_ListPagesPartitionAuthorReviews(t *testing.T) {
	ctx := context.Background()
	flow := newReviewFlow(t)
	ana := flow.identity(t, "ana@example.com")
	bob := flow.identity(t, "bob@example.com")

	const anaReviews = 150
	for range anaReviews {
		flow.create(t, ana, "Cafe X", 40, -3, 4)
	}
	for range 5 {
		flow.create(t, bob, "Bar Y", 40, -3, 3)
	}

	firstPage, err := flow.reviews.List(ctx, usecase.ListReviewsInput{
		Page:       usecase.PageInput{Skip: 0, Limit: ptr(100)},
		EmailAutor: "ana@example.com",
	})
	require.NoError(t, err)
	secondPage, err := flow.reviews.List(ctx, usecase.ListReviewsInput{
		Page:       usecase.PageInput{Skip: 100, Limit: ptr(100)},
		EmailAutor: "ana@example.com",
	})
	require.NoError(t, err)

	assert.Len(t, firstPage.Reviews, 100)
	assert.Len(t, secondPage.Reviews, anaReviews-100)
	assert.EqualValues(t, anaReviews, firstPage.Total)
	assert.EqualValues(t, anaReviews, secondPage.Total)

	seen := make(map[uuid.UUID]struct{}, anaReviews)
	for _, r := range append(firstPage.Reviews, secondPage.Reviews...) {
		assert.Equal(t, "ana@example.com", r.EmailAutor)
		seen[r.ID] = struct{}{}
	}
	assert.Len(t, seen, anaReviews)
}

package postgres

import (
	"context"
	"testing"
	"time"

	"mimapa/internal/domain/entity"
	"mimapa/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedReview(t *testing.T, repo repository.ReviewRepository, mutate func(*entity.Review)) *entity.Review {
	t.Helper()

	issued := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	review := &entity.Review{
		ID:                    uuid.Must(uuid.NewV7()),
		NombreEstablecimiento: "Café Central",
		Direccion:             "Calle 1",
		Latitud:               40.0,
		Longitud:              -3.0,
		Valoracion:            4.5,
		EmailAutor:            "a@x.com",
		NombreAutor:           "Ana",
		Provenance: entity.TokenProvenance{
			IssuedAt:  issued,
			ExpiresAt: issued.Add(30 * time.Minute),
			RawToken:  "raw.jwt.token",
		},
		Imagenes:  []string{},
		CreatedAt: issued,
	}
	if mutate != nil {
		mutate(review)
	}
	require.NoError(t, repo.Create(context.Background(), review))

	return review
}

func reviewIDs(reviews []*entity.Review) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(reviews))
	for _, r := range reviews {
		ids = append(ids, r.ID)
	}

	return ids
}

func TestReviewRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDB(t))

	created := seedReview(t, repo, func(r *entity.Review) {
		r.Imagenes = []string{"https://img.example.com/1.png"}
	})

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Café Central", found.NombreEstablecimiento)
	assert.Equal(t, 4.5, found.Valoracion)
	assert.Equal(t, "raw.jwt.token", found.Provenance.RawToken)
	assert.True(t, found.Provenance.IssuedAt.Equal(created.Provenance.IssuedAt))
	assert.True(t, found.Provenance.ExpiresAt.Equal(created.Provenance.ExpiresAt))
	assert.Equal(t, []string{"https://img.example.com/1.png"}, found.Imagenes)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)
}

func TestReviewRepository_ListPagingAndFilter(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDB(t))

	first := seedReview(t, repo, nil)
	second := seedReview(t, repo, func(r *entity.Review) { r.EmailAutor = "b@x.com" })
	third := seedReview(t, repo, nil)

	all, total, err := repo.List(ctx, entity.ReviewFilter{}, entity.Page{Skip: 0, Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID}, reviewIDs(all))

	window, total, err := repo.List(ctx, entity.ReviewFilter{}, entity.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total, "total ignores the page window")
	assert.Equal(t, []uuid.UUID{second.ID}, reviewIDs(window))

	mine, total, err := repo.List(ctx, entity.ReviewFilter{EmailAutor: "a@x.com"}, entity.Page{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, []uuid.UUID{first.ID, third.ID}, reviewIDs(mine))

	none, total, err := repo.List(ctx, entity.ReviewFilter{EmailAutor: "A@x.com"}, entity.Page{Limit: 100})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, none)
}

// SQLite folds ASCII case only, so case-insensitive matching of accented names
// ("CAFÉ" for "café") is a Postgres behaviour and is not asserted here.
func TestReviewRepository_SearchByEstablishment(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDB(t))

	cafe := seedReview(t, repo, func(r *entity.Review) { r.NombreEstablecimiento = "Bar CAFETERIA Sol" })
	seedReview(t, repo, func(r *entity.Review) { r.NombreEstablecimiento = "Panadería" })
	percent := seedReview(t, repo, func(r *entity.Review) { r.NombreEstablecimiento = "100% Vegano" })

	found, err := repo.SearchByEstablishment(ctx, "cafe", entity.Page{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{cafe.ID}, reviewIDs(found))

	found, err = repo.SearchByEstablishment(ctx, "%", entity.Page{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{percent.ID}, reviewIDs(found), "wildcards match literally")

	found, err = repo.SearchByEstablishment(ctx, "zzz", entity.Page{Limit: 100})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestReviewRepository_SearchInBound(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDB(t))

	center := seedReview(t, repo, func(r *entity.Review) { r.Latitud, r.Longitud = 40.0, -3.0 })
	edge := seedReview(t, repo, func(r *entity.Review) { r.Latitud, r.Longitud = 41.0, -3.0 })
	seedReview(t, repo, func(r *entity.Review) { r.Latitud, r.Longitud = 42.0, -3.0 })

	bound := orb.Bound{Min: orb.Point{-4.0, 39.0}, Max: orb.Point{-2.0, 41.0}}
	found, err := repo.SearchInBound(ctx, bound)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{center.ID, edge.ID}, reviewIDs(found))
}

func TestReviewRepository_SearchByRating(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDB(t))

	low := seedReview(t, repo, func(r *entity.Review) { r.Valoracion = 0 })
	mid := seedReview(t, repo, func(r *entity.Review) { r.Valoracion = 3 })
	top := seedReview(t, repo, func(r *entity.Review) { r.Valoracion = 5 })

	found, err := repo.SearchByRating(ctx, 3, 5, entity.Page{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mid.ID, top.ID}, reviewIDs(found))

	found, err = repo.SearchByRating(ctx, 0, 5, entity.Page{Skip: 1, Limit: 1})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{mid.ID}, reviewIDs(found))

	found, err = repo.SearchByRating(ctx, 0, 0, entity.Page{Limit: 100})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{low.ID}, reviewIDs(found))
}

func TestReviewRepository_UpdateOwned(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDB(t))
	review := seedReview(t, repo, nil)

	rating := 2.0
	name := "Nuevo nombre"
	images := []string{"https://img.example.com/2.png"}
	patch := &entity.ReviewPatch{Valoracion: &rating, NombreEstablecimiento: &name, Imagenes: &images}

	ok, err := repo.UpdateOwned(ctx, review.ID, "b@x.com", patch)
	require.NoError(t, err)
	assert.False(t, ok, "non-author cannot update")

	unchanged, err := repo.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.5, unchanged.Valoracion)

	ok, err = repo.UpdateOwned(ctx, review.ID, "a@x.com", patch)
	require.NoError(t, err)
	assert.True(t, ok)

	updated, err := repo.FindByID(ctx, review.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.0, updated.Valoracion)
	assert.Equal(t, "Nuevo nombre", updated.NombreEstablecimiento)
	assert.Equal(t, images, updated.Imagenes)
	assert.Equal(t, "Calle 1", updated.Direccion)
	assert.Equal(t, "raw.jwt.token", updated.Provenance.RawToken, "provenance never changes")
	assert.Equal(t, "a@x.com", updated.EmailAutor)

	ok, err = repo.UpdateOwned(ctx, review.ID, "a@x.com", &entity.ReviewPatch{})
	require.NoError(t, err)
	assert.True(t, ok, "empty patch still reports ownership")

	ok, err = repo.UpdateOwned(ctx, uuid.New(), "a@x.com", patch)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReviewRepository_DeleteOwned(t *testing.T) {
	ctx := context.Background()
	repo := NewReviewRepository(newTestDB(t))
	review := seedReview(t, repo, nil)

	ok, err := repo.DeleteOwned(ctx, review.ID, "b@x.com")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.DeleteOwned(ctx, review.ID, "a@x.com")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = repo.FindByID(ctx, review.ID)
	assert.ErrorIs(t, err, repository.ErrReviewNotFound)

	ok, err = repo.DeleteOwned(ctx, review.ID, "a@x.com")
	require.NoError(t, err)
	assert.False(t, ok)
}

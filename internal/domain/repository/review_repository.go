package repository

import (
	"context"

	"mimapa/internal/domain/entity"
	"mimapa/internal/errors"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// ErrReviewNotFound is returned when no review matches the lookup.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository is the only writer of review rows.
// Listings are returned in insertion order.
type ReviewRepository interface {
	// Create persists a new review. ID and CreatedAt must already be set.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID returns ErrReviewNotFound when the id does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// List returns one page and the filtered total, which ignores the page window.
	List(ctx context.Context, filter entity.ReviewFilter, page entity.Page) ([]*entity.Review, int64, error)

	// SearchByEstablishment matches a case-insensitive substring of nombre_establecimiento.
	SearchByEstablishment(ctx context.Context, term string, page entity.Page) ([]*entity.Review, error)

	// SearchInBound returns every review whose coordinates fall inside bound (edges included).
	SearchInBound(ctx context.Context, bound orb.Bound) ([]*entity.Review, error)

	// SearchByRating returns reviews whose rating lies in [min, max].
	SearchByRating(ctx context.Context, minRating, maxRating float64, page entity.Page) ([]*entity.Review, error)

	// UpdateOwned applies patch to the review only when emailAutor is its author.
	// It reports false when the review is missing or owned by someone else.
	UpdateOwned(ctx context.Context, id uuid.UUID, emailAutor string, patch *entity.ReviewPatch) (bool, error)

	// DeleteOwned removes the review only when emailAutor is its author.
	DeleteOwned(ctx context.Context, id uuid.UUID, emailAutor string) (bool, error)
}

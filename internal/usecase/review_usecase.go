package usecase

import (
	"context"

	"mimapa/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// CreateReviewInput is the client-supplied part of a new review.
// Author and token snapshot fields never come from the client.
type CreateReviewInput struct {
	NombreEstablecimiento *string  `json:"nombre_establecimiento" validate:"required,min=1,max=200"`
	Direccion             *string  `json:"direccion" validate:"required,max=300"`
	Latitud               *float64 `json:"latitud" validate:"required,gte=-90,lte=90"`
	Longitud              *float64 `json:"longitud" validate:"required,gte=-180,lte=180"`
	Valoracion            *float64 `json:"valoracion" validate:"required,gte=0,lte=5"`
	Imagenes              []string `json:"imagenes" validate:"omitempty,dive,url"`
}

// UpdateReviewInput is a partial update. Absent and null fields stay unchanged.
type UpdateReviewInput struct {
	NombreEstablecimiento *string   `json:"nombre_establecimiento" validate:"omitempty,min=1,max=200"`
	Direccion             *string   `json:"direccion" validate:"omitempty,max=300"`
	Latitud               *float64  `json:"latitud" validate:"omitempty,gte=-90,lte=90"`
	Longitud              *float64  `json:"longitud" validate:"omitempty,gte=-180,lte=180"`
	Valoracion            *float64  `json:"valoracion" validate:"omitempty,gte=0,lte=5"`
	Imagenes              *[]string `json:"imagenes" validate:"omitempty,dive,url"`
}

// Patch converts the input into the domain patch.
func (in *UpdateReviewInput) Patch() *entity.ReviewPatch {
	if in == nil {
		return &entity.ReviewPatch{}
	}

	return &entity.ReviewPatch{
		NombreEstablecimiento: in.NombreEstablecimiento,
		Direccion:             in.Direccion,
		Latitud:               in.Latitud,
		Longitud:              in.Longitud,
		Valoracion:            in.Valoracion,
		Imagenes:              in.Imagenes,
	}
}

// PageInput is an offset window. A nil Limit selects the configured default.
type PageInput struct {
	Skip  int
	Limit *int
}

// ListReviewsInput filters the review listing.
type ListReviewsInput struct {
	Page       PageInput
	EmailAutor string
}

// SearchByLocationInput centres a square search window on a point.
type SearchByLocationInput struct {
	Latitud  float64
	Longitud float64
	RadioKm  *float64 // nil selects the configured default radius.
}

// SearchByRatingInput selects reviews whose rating lies in [Min, Max].
type SearchByRatingInput struct {
	Min  *float64
	Max  *float64
	Page PageInput
}

// --- Output DTOs ---

// ReviewList is one listing page plus the filtered total.
type ReviewList struct {
	Reviews []*entity.Review
	Total   int64
}

// ReviewUsecase defines the review operations. Mutations take the resolved author
// and succeed only when it equals the stored email_autor.
type ReviewUsecase interface {
	Create(ctx context.Context, author *Identity, input *CreateReviewInput) (*entity.Review, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Review, error)
	List(ctx context.Context, input ListReviewsInput) (*ReviewList, error)
	SearchByEstablishment(ctx context.Context, nombre string, page PageInput) ([]*entity.Review, error)
	SearchByLocation(ctx context.Context, input SearchByLocationInput) ([]*entity.Review, error)
	SearchByRating(ctx context.Context, input SearchByRatingInput) ([]*entity.Review, error)
	Update(ctx context.Context, author *Identity, id uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	Delete(ctx context.Context, author *Identity, id uuid.UUID) error

	// ShareQR renders a PNG QR code linking to an existing review.
	ShareQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}

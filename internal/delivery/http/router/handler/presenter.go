package handler

import (
	"time"

	"mimapa/internal/domain/entity"
	"mimapa/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// ReviewResponse is the review wire document. The identifier is exposed as _id.
type ReviewResponse struct {
	ID                    uuid.UUID `json:"_id"`
	NombreEstablecimiento string    `json:"nombre_establecimiento"`
	Direccion             string    `json:"direccion"`
	Latitud               float64   `json:"latitud"`
	Longitud              float64   `json:"longitud"`
	Valoracion            float64   `json:"valoracion"`
	EmailAutor            string    `json:"email_autor"`
	NombreAutor           string    `json:"nombre_autor"`
	TokenEmision          time.Time `json:"token_emision"`
	TokenCaducidad        time.Time `json:"token_caducidad"`
	TokenOAuth            *string   `json:"token_oauth,omitempty"`
	Imagenes              []string  `json:"imagenes"`
	CreatedAt             time.Time `json:"created_at"`
}

// ReviewListResponse is a listing page plus the filtered total.
type ReviewListResponse struct {
	Resenas []*ReviewResponse `json:"resenas"`
	Total   int64             `json:"total"`
}

// UserResponse is the user wire document.
type UserResponse struct {
	ID            uuid.UUID `json:"_id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Picture       *string   `json:"picture"`
	OAuthProvider string    `json:"oauth_provider"`
	OAuthID       string    `json:"oauth_id"`
	CreatedAt     time.Time `json:"created_at"`
	LastLogin     time.Time `json:"last_login"`
}

// TokenResponse is returned by the ID-token login.
type TokenResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	ExpiresIn   int64         `json:"expires_in"`
	User        *UserResponse `json:"user"`
}

// SessionResponse reports whether the caller holds a usable credential.
type SessionResponse struct {
	Authenticated bool          `json:"authenticated"`
	User          *UserResponse `json:"user,omitempty"`
}

// reviewPresenter decides how much of the token snapshot a caller may see.
type reviewPresenter struct {
	exposeTokenInListings bool
}

// single renders one review. The raw credential is shown to its author only.
func (p reviewPresenter) single(review *entity.Review, viewer *usecase.Identity) *ReviewResponse {
	return newReviewResponse(review, review.IsAuthoredBy(viewer.Email()))
}

// many renders listing and search results.
func (p reviewPresenter) many(reviews []*entity.Review) []*ReviewResponse {
	out := make([]*ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		out = append(out, newReviewResponse(review, p.exposeTokenInListings))
	}

	return out
}

// featureCollection renders search results as GeoJSON points in [lon, lat] order.
func (p reviewPresenter) featureCollection(reviews []*entity.Review) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, doc := range p.many(reviews) {
		feature := geojson.NewFeature(orb.Point{doc.Longitud, doc.Latitud})
		feature.ID = doc.ID.String()
		feature.Properties = geojson.Properties{
			"nombre_establecimiento": doc.NombreEstablecimiento,
			"direccion":              doc.Direccion,
			"valoracion":             doc.Valoracion,
			"email_autor":            doc.EmailAutor,
			"nombre_autor":           doc.NombreAutor,
			"imagenes":               doc.Imagenes,
			"created_at":             doc.CreatedAt,
		}
		fc.Append(feature)
	}

	return fc
}

func newReviewResponse(review *entity.Review, withToken bool) *ReviewResponse {
	imagenes := review.Imagenes
	if imagenes == nil {
		imagenes = []string{}
	}

	doc := &ReviewResponse{
		ID:                    review.ID,
		NombreEstablecimiento: review.NombreEstablecimiento,
		Direccion:             review.Direccion,
		Latitud:               review.Latitud,
		Longitud:              review.Longitud,
		Valoracion:            review.Valoracion,
		EmailAutor:            review.EmailAutor,
		NombreAutor:           review.NombreAutor,
		TokenEmision:          review.Provenance.IssuedAt,
		TokenCaducidad:        review.Provenance.ExpiresAt,
		Imagenes:              imagenes,
		CreatedAt:             review.CreatedAt,
	}
	if withToken {
		token := review.Provenance.RawToken
		doc.TokenOAuth = &token
	}

	return doc
}

func newUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:            user.ID,
		Email:         user.Email,
		Name:          user.Name,
		Picture:       user.Picture,
		OAuthProvider: user.OAuthProvider.String(),
		OAuthID:       user.OAuthID,
		CreatedAt:     user.CreatedAt,
		LastLogin:     user.LastLogin,
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// Field bounds shared by validation, persistence and migrations.
const (
	MaxEstablishmentNameLength = 200
	MaxAddressLength           = 300
	MinRating                  = 0.0
	MaxRating                  = 5.0
)

// Review is a location-tagged rating of an establishment.
type Review struct {
	ID                    uuid.UUID
	NombreEstablecimiento string
	Direccion             string
	Latitud               float64
	Longitud              float64
	Valoracion            float64
	EmailAutor            string // Author identity, never changes after creation.
	NombreAutor           string // Author display name at creation time.
	Provenance            TokenProvenance
	Imagenes              []string
	CreatedAt             time.Time
}

// IsAuthoredBy reports whether email is exactly the recorded author.
func (r *Review) IsAuthoredBy(email string) bool {
	return r != nil && email != "" && r.EmailAutor == email
}

// ReviewPatch lists the mutable review fields. Nil means "leave unchanged".
type ReviewPatch struct {
	NombreEstablecimiento *string
	Direccion             *string
	Latitud               *float64
	Longitud              *float64
	Valoracion            *float64
	Imagenes              *[]string
}

// IsEmpty reports whether the patch changes nothing.
func (p *ReviewPatch) IsEmpty() bool {
	return p == nil ||
		(p.NombreEstablecimiento == nil && p.Direccion == nil && p.Latitud == nil &&
			p.Longitud == nil && p.Valoracion == nil && p.Imagenes == nil)
}

// Apply copies the present fields onto review.
func (p *ReviewPatch) Apply(review *Review) {
	if p == nil || review == nil {
		return
	}
	if p.NombreEstablecimiento != nil {
		review.NombreEstablecimiento = *p.NombreEstablecimiento
	}
	if p.Direccion != nil {
		review.Direccion = *p.Direccion
	}
	if p.Latitud != nil {
		review.Latitud = *p.Latitud
	}
	if p.Longitud != nil {
		review.Longitud = *p.Longitud
	}
	if p.Valoracion != nil {
		review.Valoracion = *p.Valoracion
	}
	if p.Imagenes != nil {
		review.Imagenes = append([]string{}, (*p.Imagenes)...)
	}
}

// ReviewFilter narrows a review listing.
type ReviewFilter struct {
	EmailAutor string // Empty means every author.
}

// Page is an offset pagination window.
type Page struct {
	Skip  int
	Limit int
}

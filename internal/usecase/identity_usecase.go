// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mimapa/internal/domain/entity"
)

// Identity is the caller behind a verified bearer credential.
type Identity struct {
	User  *entity.User
	Token string // Raw credential as presented, needed for provenance on create.
}

// Email returns the identity key, or "" for a nil identity.
func (i *Identity) Email() string {
	if i == nil || i.User == nil {
		return ""
	}

	return i.User.Email
}

// IdentityUsecase maps bearer credentials to persisted users.
type IdentityUsecase interface {
	// ResolveRequired fails with ErrUnauthenticated when the credential is absent,
	// malformed, expired, has no subject, or names an unknown user.
	ResolveRequired(ctx context.Context, credential string) (*Identity, error)

	// ResolveOptional never fails; every failure of ResolveRequired yields nil.
	ResolveOptional(ctx context.Context, credential string) *Identity
}

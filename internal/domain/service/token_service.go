package service

import (
	"time"

	"mimapa/internal/domain/entity"
	"mimapa/internal/errors"
)

// ErrCredentialInvalid is returned for any bearer credential that cannot be trusted:
// bad signature, wrong algorithm, malformed structure, expired, or missing claims.
// Implementations must not leak which of those applied.
var ErrCredentialInvalid = errors.New("credential invalid")

// TokenService mints and decodes the bearer credentials issued by this service.
// A single secret and algorithm are used for every operation.
type TokenService interface {
	// Issue mints a credential whose subject is the user's email.
	Issue(subject string) (*entity.IssuedToken, error)

	// ParseSubject verifies the credential and returns its subject.
	ParseSubject(rawToken string) (string, error)

	// ExtractProvenance verifies the credential and returns its issue and expiry times
	// together with the raw string. A missing iat defaults to now; a missing exp fails.
	ExtractProvenance(rawToken string) (*entity.TokenProvenance, error)

	// TTL returns the lifetime of issued credentials.
	TTL() time.Duration
}

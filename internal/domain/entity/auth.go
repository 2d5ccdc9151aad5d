package entity

import "time"

// ProviderType identifies an external OAuth identity provider.
type ProviderType string

const (
	// ProviderTypeGoogle is Google Sign-In.
	ProviderTypeGoogle ProviderType = "google"
)

// String returns the string representation of the provider.
func (p ProviderType) String() string {
	return string(p)
}

// TokenProvenance is the snapshot of the bearer credential that authored a review.
// It is captured once at creation time and never recomputed.
type TokenProvenance struct {
	IssuedAt  time.Time // iat claim, or the extraction time when the claim is missing.
	ExpiresAt time.Time // exp claim.
	RawToken  string    // The credential exactly as presented.
}

// IssuedToken is a freshly minted bearer credential.
type IssuedToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

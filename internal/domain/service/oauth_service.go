package service

import (
	"context"

	"mimapa/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider (google, apple, etc.)
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// OAuthService drives the server-side authorization code flow.
type OAuthService interface {
	// BuildAuthorizationURL returns the consent URL and the one-time state it embeds.
	BuildAuthorizationURL() (authURL string, state string, err error)

	// ValidateState consumes a state previously returned by BuildAuthorizationURL.
	ValidateState(state string) bool

	// ExchangeCode trades an authorization code for the provider's user profile.
	ExchangeCode(ctx context.Context, code string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}

// OAuthAuthService defines the interface for OAuth authentication operations
// This is specifically for ID token verification (like Google ID tokens)
type OAuthAuthService interface {
	// VerifyIDToken verifies an OAuth ID token and returns user information
	// This is primarily used for Google Sign-In where the client sends an ID token directly
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}

package usecase

import (
	"context"
	"time"

	"mimapa/internal/domain/entity"
)

// TokenTypeBearer is the token_type reported with every issued credential.
const TokenTypeBearer = "bearer"

// LoginOutput returns the credential minted after a successful login.
type LoginOutput struct {
	AccessToken string
	TokenType   string
	ExpiresIn   int64 // Seconds until ExpiresAt.
	ExpiresAt   time.Time
	User        *entity.User
}

// AuthUsecase defines the login flows. Both end in the same user upsert and credential.
type AuthUsecase interface {
	// BeginGoogleLogin returns the consent URL the browser is redirected to.
	BeginGoogleLogin() (string, error)

	// CompleteGoogleLogin finishes the authorization code flow.
	CompleteGoogleLogin(ctx context.Context, code, state string) (*LoginOutput, error)

	// LoginWithGoogleIDToken trusts a Google ID token obtained client-side.
	LoginWithGoogleIDToken(ctx context.Context, idToken string) (*LoginOutput, error)
}

package google

import (
	"context"
	"log/slog"

	"mimapa/config"
	"mimapa/internal/domain/entity"
	"mimapa/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"
)

type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthServiceImpl verifies Google ID tokens sent directly by clients
type AuthServiceImpl struct {
	clientID string
	validate idTokenValidator
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return &AuthServiceImpl{
		clientID: cfg.GoogleOAuth.ClientID,
		validate: idtoken.Validate,
		logger:   logger,
	}
}

// VerifyIDToken checks signature, issuer, audience and expiry through Google's public keys
func (s *AuthServiceImpl) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "token verification failed")
	}

	email := claimString(payload.Claims, "email")
	if email == "" {
		return nil, errors.New("token verification failed: email claim missing")
	}

	verified, _ := payload.Claims["email_verified"].(bool)

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          claimString(payload.Claims, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: verified,
	}, nil
}

// GetProvider returns the OAuth provider type
func (s *AuthServiceImpl) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

func claimString(claims map[string]any, key string) string {
	value, _ := claims[key].(string)

	return value
}

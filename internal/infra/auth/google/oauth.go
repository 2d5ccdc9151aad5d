package google

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"mimapa/config"
	"mimapa/internal/domain/entity"
	"mimapa/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
)

const (
	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
	stateTTL          = 10 * time.Minute
	defaultScopes     = "openid email profile"
)

// OAuthService handles the Google authorization code flow
type OAuthService struct {
	oauthConfig *oauth2.Config
	userInfoURL string
	logger      *slog.Logger
	now         func() time.Time

	// State storage for CSRF protection
	stateStore map[string]time.Time
	stateMutex sync.Mutex
}

// NewOAuthService creates a new Google OAuth service
func NewOAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthService {
	return newOAuthService(cfg, logger, googleoauth.Endpoint, googleUserInfoURL)
}

func newOAuthService(cfg *config.Config, logger *slog.Logger, endpoint oauth2.Endpoint, userInfoURL string) *OAuthService {
	scopes := cfg.GoogleOAuth.Scopes
	if strings.TrimSpace(scopes) == "" {
		scopes = defaultScopes
	}

	return &OAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleOAuth.ClientID,
			ClientSecret: cfg.GoogleOAuth.ClientSecret,
			RedirectURL:  cfg.GoogleOAuth.RedirectURI,
			Scopes:       strings.Fields(scopes),
			Endpoint:     endpoint,
		},
		userInfoURL: userInfoURL,
		logger:      logger,
		now:         time.Now,
		stateStore:  make(map[string]time.Time),
	}
}

// generateState generates a cryptographically secure random state string
func generateState() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return hex.EncodeToString(buf), nil
}

// BuildAuthorizationURL constructs the Google consent URL with a fresh one-time state
func (s *OAuthService) BuildAuthorizationURL() (string, string, error) {
	state, err := generateState()
	if err != nil {
		return "", "", err
	}

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	s.cleanupExpiredStates()
	s.stateStore[state] = s.now().Add(stateTTL)

	return s.oauthConfig.AuthCodeURL(state, oauth2.AccessTypeOnline), state, nil
}

// cleanupExpiredStates removes expired state parameters. Callers hold stateMutex.
func (s *OAuthService) cleanupExpiredStates() {
	now := s.now()
	for state, expiry := range s.stateStore {
		if now.After(expiry) {
			delete(s.stateStore, state)
		}
	}
}

// ValidateState consumes the state; a state validates at most once
func (s *OAuthService) ValidateState(state string) bool {
	if state == "" {
		return false
	}

	s.stateMutex.Lock()
	defer s.stateMutex.Unlock()

	expiry, exists := s.stateStore[state]
	if !exists {
		return false
	}
	delete(s.stateStore, state)

	return !s.now().After(expiry)
}

// GetProvider returns the OAuth provider type
func (s *OAuthService) GetProvider() entity.ProviderType {
	return entity.ProviderTypeGoogle
}

// ExchangeCode exchanges an authorization code and fetches the user's Google profile
func (s *OAuthService) ExchangeCode(ctx context.Context, code string) (*service.OAuthUser, error) {
	if strings.TrimSpace(code) == "" {
		return nil, errors.New("authorization code is empty")
	}

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange code for token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.userInfoURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create user info request")
	}

	resp, err := s.oauthConfig.Client(ctx, token).Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))

		return nil, errors.Errorf("user info request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var googleUser struct {
		ID            string `json:"id"`
		Email         string `json:"email"`
		Name          string `json:"name"`
		Picture       string `json:"picture"`
		VerifiedEmail bool   `json:"verified_email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&googleUser); err != nil {
		return nil, errors.Wrap(err, "failed to decode user info response")
	}

	if googleUser.Email == "" {
		return nil, errors.New("google profile has no email")
	}

	s.logger.Debug("Google profile fetched", slog.String("email", googleUser.Email))

	return &service.OAuthUser{
		ID:            googleUser.ID,
		Email:         googleUser.Email,
		Name:          googleUser.Name,
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     googleUser.Picture,
		EmailVerified: googleUser.VerifiedEmail,
	}, nil
}

package handler

import (
	"net/http"
	"net/url"
	"testing"
	"time"

	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/infra/auth/google"
	"mimapa/internal/usecase"
	"mimapa/internal/usecase/impl"
	mockRepo "mimapa/internal/mocks/repository"
	mockSvc "mimapa/internal/mocks/service"
	mockUC "mimapa/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestAuthHandler(t *testing.T) (*AuthHandler, *mockUC.MockAuthUsecase) {
	authUC := mockUC.NewMockAuthUsecase(t)

	return NewAuthHandler(AuthHandlerParams{
		AuthUC: authUC,
		Config: newTestConfig(),
		Logger: newDiscardLogger(),
	}), authUC
}

func TestAuthHandler_GoogleLogin_RedirectsToConsent(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, rec := newContext(http.MethodGet, "/api/auth/login/google", "", nil)

	authUC.EXPECT().BeginGoogleLogin().Return("https://accounts.google.com/o/oauth2/auth?state=abc", nil)

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state=abc", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthHandler_GoogleCallback(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		setup    func(authUC *mockUC.MockAuthUsecase)
		wantKey  string
		wantCode string
	}{
		{
			name:   "success hands the token to the frontend",
			target: "/api/auth/callback/google?code=c0de&state=st4te",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().CompleteGoogleLogin(mock.Anything, "c0de", "st4te").
					Return(&usecase.LoginOutput{AccessToken: "jwt.value.sig", TokenType: usecase.TokenTypeBearer}, nil)
			},
			wantKey:  "token",
			wantCode: "jwt.value.sig",
		},
		{
			name:   "invalid state is reported by code",
			target: "/api/auth/callback/google?code=c0de&state=forged",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().CompleteGoogleLogin(mock.Anything, "c0de", "forged").
					Return(nil, domainerrors.ErrOAuthStateInvalid)
			},
			wantKey:  "error",
			wantCode: "OAUTH_STATE_INVALID",
		},
		{
			name:   "unexpected failures become internal errors",
			target: "/api/auth/callback/google?code=c0de&state=st4te",
			setup: func(authUC *mockUC.MockAuthUsecase) {
				authUC.EXPECT().CompleteGoogleLogin(mock.Anything, "c0de", "st4te").
					Return(nil, errors.New("boom"))
			},
			wantKey:  "error",
			wantCode: "INTERNAL_ERROR",
		},
		{
			name:     "provider error skips the exchange",
			target:   "/api/auth/callback/google?error=access_denied",
			setup:    func(*mockUC.MockAuthUsecase) {},
			wantKey:  "error",
			wantCode: "OAUTH_FAILED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, authUC := newTestAuthHandler(t)
			tt.setup(authUC)
			c, rec := newContext(http.MethodGet, tt.target, "", nil)

			require.NoError(t, h.GoogleCallback(c))
			assert.Equal(t, http.StatusFound, rec.Code)

			location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
			require.NoError(t, err)
			assert.Equal(t, "localhost:4200", location.Host)
			assert.Equal(t, "/auth/callback", location.Path)
			assert.Equal(t, tt.wantCode, location.Query().Get(tt.wantKey))
		})
	}
}

func TestAuthHandler_GoogleIDToken(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	identity := newIdentity("ana@example.com")
	c, rec := newContext(http.MethodPost, "/api/auth/google/id-token", `{"id_token":"google-id-token"}`, nil)

	authUC.EXPECT().LoginWithGoogleIDToken(mock.Anything, "google-id-token").Return(&usecase.LoginOutput{
		AccessToken: "jwt.value.sig",
		TokenType:   usecase.TokenTypeBearer,
		ExpiresIn:   1800,
		ExpiresAt:   time.Now().Add(30 * time.Minute),
		User:        identity.User,
	}, nil)

	require.NoError(t, h.GoogleIDToken(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	doc := decodeMap(t, rec.Body.Bytes())
	assert.Equal(t, "jwt.value.sig", doc["access_token"])
	assert.Equal(t, "bearer", doc["token_type"])
	assert.Equal(t, 1800.0, doc["expires_in"])
	user, ok := doc["user"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "ana@example.com", user["email"])
	assert.Equal(t, "google", user["oauth_provider"])
}

func TestAuthHandler_GoogleIDToken_Rejected(t *testing.T) {
	h, authUC := newTestAuthHandler(t)
	c, _ := newContext(http.MethodPost, "/api/auth/google/id-token", `{"id_token":"forged"}`, nil)

	authUC.EXPECT().LoginWithGoogleIDToken(mock.Anything, "forged").Return(nil, domainerrors.ErrOAuthTokenInvalid)

	require.ErrorIs(t, h.GoogleIDToken(c), domainerrors.ErrOAuthTokenInvalid)
}

func TestAuthHandler_Logout(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodPost, "/api/auth/logout", "", nil)

	require.NoError(t, h.Logout(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"`+logoutMessage+`"}`, rec.Body.String())
}

func TestAuthHandler_Me(t *testing.T) {
	h, _ := newTestAuthHandler(t)
	c, rec := newContext(http.MethodGet, "/api/auth/me", "", newIdentity("ana@example.com"))

	require.NoError(t, h.Me(c))
	assert.Equal(t, "ana@example.com", decodeMap(t, rec.Body.Bytes())["email"])

	anonymous, _ := newContext(http.MethodGet, "/api/auth/me", "", nil)
	require.ErrorIs(t, h.Me(anonymous), domainerrors.ErrUnauthenticated)
}

func TestAuthHandler_Session(t *testing.T) {
	h, _ := newTestAuthHandler(t)

	c, rec := newContext(http.MethodGet, "/api/auth/session", "", nil)
	require.NoError(t, h.Session(c))
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())

	c, rec = newContext(http.MethodGet, "/api/auth/session", "", newIdentity("ana@example.com"))
	require.NoError(t, h.Session(c))
	doc := decodeMap(t, rec.Body.Bytes())
	assert.Equal(t, true, doc["authenticated"])
	assert.Contains(t, doc, "user")
}

// The consent redirect is produced by the real Google OAuth client.
func TestAuthHandler_GoogleLogin_Integration(t *testing.T) {
	cfg := newTestConfig()
	cfg.GoogleOAuth.ClientID = "test_client_id"
	cfg.GoogleOAuth.ClientSecret = "test_client_secret"
	cfg.GoogleOAuth.RedirectURI = "http://localhost:8000/api/auth/callback/google"
	cfg.GoogleOAuth.Scopes = "openid email profile"

	tokenService := mockSvc.NewMockTokenService(t)
	tokenService.EXPECT().TTL().Return(30 * time.Minute).Maybe()

	authUC := impl.NewAuthService(impl.AuthServiceParams{
		TxManager:         mockRepo.NewMockTransactionManager(t),
		OAuthService:      google.NewOAuthService(cfg, newDiscardLogger()),
		GoogleAuthService: mockSvc.NewMockOAuthAuthService(t),
		TokenService:      tokenService,
		Logger:            newDiscardLogger(),
	})

	h := NewAuthHandler(AuthHandlerParams{AuthUC: authUC, Config: cfg, Logger: newDiscardLogger()})
	c, rec := newContext(http.MethodGet, "/api/auth/login/google", "", nil)

	require.NoError(t, h.GoogleLogin(c))
	assert.Equal(t, http.StatusFound, rec.Code)

	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)
	query := location.Query()
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "http://localhost:8000/api/auth/callback/google", query.Get("redirect_uri"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
	assert.NotEmpty(t, query.Get("state"))
}

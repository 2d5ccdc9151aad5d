package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	mockUC "mimapa/internal/mocks/usecase"
	"mimapa/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) echo.Context {
	req := httptest.NewRequest(http.MethodGet, "/api/resenas", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}

	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	identity := &usecase.Identity{User: &entity.User{Email: "ana@example.com"}, Token: "abc.def.ghi"}

	t.Run("valid credential reaches the handler", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.EXPECT().ResolveRequired(mock.Anything, "abc.def.ghi").Return(identity, nil)

		c := newAuthContext("Bearer abc.def.ghi")
		called := false
		err := NewAuthMiddleware(identityUC).Authenticate(func(c echo.Context) error {
			called = true
			assert.Equal(t, identity, deliverycontext.GetIdentity(c))

			return nil
		})(c)

		require.NoError(t, err)
		assert.True(t, called)
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.EXPECT().ResolveRequired(mock.Anything, "abc.def.ghi").Return(identity, nil)

		err := NewAuthMiddleware(identityUC).Authenticate(func(echo.Context) error { return nil })(newAuthContext("bearer abc.def.ghi"))

		require.NoError(t, err)
	})

	t.Run("missing credential is rejected", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.EXPECT().ResolveRequired(mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated)

		err := NewAuthMiddleware(identityUC).Authenticate(func(echo.Context) error {
			t.Fatal("handler must not run")

			return nil
		})(newAuthContext(""))

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})

	t.Run("other schemes are not credentials", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.EXPECT().ResolveRequired(mock.Anything, "").Return(nil, domainerrors.ErrUnauthenticated)

		err := NewAuthMiddleware(identityUC).Authenticate(func(echo.Context) error { return nil })(newAuthContext("Basic YW5hOnNlY3JldA=="))

		require.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
	})
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	t.Run("invalid credential degrades to anonymous", func(t *testing.T) {
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.EXPECT().ResolveOptional(mock.Anything, "expired").Return(nil)

		var seen *usecase.Identity
		err := NewAuthMiddleware(identityUC).OptionalAuthenticate(func(c echo.Context) error {
			seen = deliverycontext.GetIdentity(c)

			return nil
		})(newAuthContext("Bearer expired"))

		require.NoError(t, err)
		assert.Nil(t, seen)
	})

	t.Run("valid credential attaches the identity", func(t *testing.T) {
		identity := &usecase.Identity{User: &entity.User{Email: "ana@example.com"}, Token: "ok"}
		identityUC := mockUC.NewMockIdentityUsecase(t)
		identityUC.EXPECT().ResolveOptional(mock.Anything, "ok").Return(identity)

		var seen *usecase.Identity
		err := NewAuthMiddleware(identityUC).OptionalAuthenticate(func(c echo.Context) error {
			seen = deliverycontext.GetIdentity(c)

			return nil
		})(newAuthContext("Bearer ok"))

		require.NoError(t, err)
		assert.Equal(t, "ana@example.com", seen.Email())
	})
}

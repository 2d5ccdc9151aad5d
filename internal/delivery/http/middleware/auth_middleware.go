package middleware

import (
	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware resolves bearer credentials into identities.
type AuthMiddleware struct {
	identity usecase.IdentityUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(identity usecase.IdentityUsecase) *AuthMiddleware {
	return &AuthMiddleware{identity: identity}
}

// Authenticate rejects the request with 401 unless the credential resolves to a known user.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, err := m.identity.ResolveRequired(c.Request().Context(), deliverycontext.BearerToken(c))
		if err != nil {
			return errors.WithStack(err)
		}

		deliverycontext.SetIdentity(c, identity)

		return next(c)
	}
}

// OptionalAuthenticate attaches the identity when one resolves and lets anonymous requests through.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if identity := m.identity.ResolveOptional(c.Request().Context(), deliverycontext.BearerToken(c)); identity != nil {
			deliverycontext.SetIdentity(c, identity)
		}

		return next(c)
	}
}

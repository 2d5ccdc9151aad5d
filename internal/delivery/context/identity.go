package context

import (
	"strings"

	"mimapa/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	// KeyIdentity is the key for storing the resolved caller in echo.Context.
	KeyIdentity ContextKey = "identity"

	bearerScheme = "bearer"
)

// SetIdentity stores the resolved caller in echo.Context.
func SetIdentity(c echo.Context, identity *usecase.Identity) {
	c.Set(string(KeyIdentity), identity)
}

// GetIdentity returns the resolved caller, or nil for anonymous requests.
func GetIdentity(c echo.Context) *usecase.Identity {
	identity, _ := c.Get(string(KeyIdentity)).(*usecase.Identity)

	return identity
}

// BearerToken extracts the credential from "Authorization: Bearer <token>".
// It returns "" when the header is absent or uses another scheme.
func BearerToken(c echo.Context) string {
	header := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, bearerScheme) {
		return ""
	}

	return strings.TrimSpace(token)
}

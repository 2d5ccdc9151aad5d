package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/delivery/http/response"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	frontendCallbackPath = "/auth/callback"
	logoutMessage        = "Sesión cerrada correctamente. Elimina el token del cliente."
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler serves /api/auth.
type AuthHandler struct {
	authUC      usecase.AuthUsecase
	frontendURL string
	logger      *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:      params.AuthUC,
		frontendURL: strings.TrimRight(params.Config.Frontend.URL, "/"),
		logger:      params.Logger,
	}
}

// IDTokenRequest carries a Google ID token obtained by the client.
type IDTokenRequest struct {
	IDToken string `json:"id_token"`
}

// GoogleLogin redirects the browser to the Google consent screen.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	consentURL, err := h.authUC.BeginGoogleLogin()
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, consentURL)
}

// GoogleCallback completes the code flow and hands the credential to the frontend.
// Failures are reported to the frontend as an error code, never as a JSON body.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if providerErr := c.QueryParam("error"); providerErr != "" {
		logger.Warn("Google login declined", slog.String("provider_error", providerErr))

		return c.Redirect(http.StatusFound, h.callbackURL("error", domainerrors.ErrOAuthFailed.ErrorCode()))
	}

	output, err := h.authUC.CompleteGoogleLogin(ctx, c.QueryParam("code"), c.QueryParam("state"))
	if err != nil {
		code := domainerrors.ErrInternalError.ErrorCode()
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			code = appErr.ErrorCode()
		}
		logger.Warn("Google login failed", slog.String("code", code), slog.Any("error", err))

		return c.Redirect(http.StatusFound, h.callbackURL("error", code))
	}

	return c.Redirect(http.StatusFound, h.callbackURL("token", output.AccessToken))
}

// GoogleIDToken handles POST /api/auth/google/id-token
func (h *AuthHandler) GoogleIDToken(c echo.Context) error {
	var req IDTokenRequest
	if err := c.Bind(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.LoginWithGoogleIDToken(c.Request().Context(), req.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, TokenResponse{
		AccessToken: output.AccessToken,
		TokenType:   output.TokenType,
		ExpiresIn:   output.ExpiresIn,
		User:        newUserResponse(output.User),
	})
}

// Logout is informational; credentials are stateless and discarded by the client.
func (h *AuthHandler) Logout(c echo.Context) error {
	return response.Message(c, logoutMessage)
}

// Me returns the authenticated user.
func (h *AuthHandler) Me(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return domainerrors.ErrUnauthenticated
	}

	return c.JSON(http.StatusOK, newUserResponse(identity.User))
}

// Session reports whether the request carries a usable credential.
func (h *AuthHandler) Session(c echo.Context) error {
	identity := deliverycontext.GetIdentity(c)
	if identity == nil {
		return c.JSON(http.StatusOK, SessionResponse{Authenticated: false})
	}

	return c.JSON(http.StatusOK, SessionResponse{
		Authenticated: true,
		User:          newUserResponse(identity.User),
	})
}

func (h *AuthHandler) callbackURL(key, value string) string {
	return h.frontendURL + frontendCallbackPath + "?" + url.Values{key: []string{value}}.Encode()
}

package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/delivery/http/response"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	if handled, _ := response.HandleAppError(c, err); handled {
		return
	}

	// Query and path parameters that failed type conversion
	var bindErr *echo.BindingError
	if errors.As(err, &bindErr) {
		_ = response.Error(c, http.StatusBadRequest, "VALIDATION_FAILED", "Los datos de entrada no son válidos",
			[]domainerrors.FieldViolation{{Field: bindErr.Field, Rule: "type", Message: "tiene un formato inválido"}})

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code, message := httpErrorCode(httpErr.Code)
		_ = response.Error(c, httpErr.Code, code, message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message())
}

func httpErrorCode(status int) (code, message string) {
	switch status {
	case http.StatusBadRequest:
		return domainerrors.ErrInvalidInput.ErrorCode(), domainerrors.ErrInvalidInput.Message()
	case http.StatusUnauthorized:
		return domainerrors.ErrUnauthenticated.ErrorCode(), domainerrors.ErrUnauthenticated.Message()
	case http.StatusNotFound:
		return domainerrors.ErrNotFound.ErrorCode(), domainerrors.ErrNotFound.Message()
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED", "Método no permitido"
	case http.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE", "La solicitud supera el tamaño máximo permitido"
	case http.StatusUnsupportedMediaType:
		return "UNSUPPORTED_MEDIA_TYPE", "Tipo de contenido no soportado"
	case http.StatusTooManyRequests:
		return domainerrors.ErrRateLimited.ErrorCode(), domainerrors.ErrRateLimited.Message()
	}

	if status >= http.StatusInternalServerError {
		return domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message()
	}

	return "HTTP_ERROR", http.StatusText(status)
}

package handler

import (
	"net/http"

	"mimapa/internal/errors"
	"mimapa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GeocodeHandlerParams holds dependencies for GeocodeHandler, injected by Fx.
type GeocodeHandlerParams struct {
	fx.In

	GeocodeUC usecase.GeocodeUsecase
}

// GeocodeHandler serves /api/geocoding. A lookup without results answers 200 with found=false.
type GeocodeHandler struct {
	geocodeUC usecase.GeocodeUsecase
}

// NewGeocodeHandler is the constructor for GeocodeHandler
func NewGeocodeHandler(params GeocodeHandlerParams) *GeocodeHandler {
	return &GeocodeHandler{geocodeUC: params.GeocodeUC}
}

// GeocodeResponse is the forward lookup outcome.
type GeocodeResponse struct {
	Found    bool     `json:"found"`
	Latitud  *float64 `json:"latitud,omitempty"`
	Longitud *float64 `json:"longitud,omitempty"`
}

// ReverseGeocodeResponse is the reverse lookup outcome.
type ReverseGeocodeResponse struct {
	Found     bool   `json:"found"`
	Direccion string `json:"direccion,omitempty"`
}

// Search handles GET /api/geocoding/search?q=
func (h *GeocodeHandler) Search(c echo.Context) error {
	result, err := h.geocodeUC.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	res := GeocodeResponse{Found: result.Found}
	if result.Found {
		lat, lon := result.Point.Latitud, result.Point.Longitud
		res.Latitud, res.Longitud = &lat, &lon
	}

	return c.JSON(http.StatusOK, res)
}

// Reverse handles GET /api/geocoding/reverse?latitud&longitud
func (h *GeocodeHandler) Reverse(c echo.Context) error {
	var latitud, longitud float64
	if err := echo.QueryParamsBinder(c).
		MustFloat64("latitud", &latitud).
		MustFloat64("longitud", &longitud).
		BindError(); err != nil {
		return errors.WithStack(err)
	}

	result, err := h.geocodeUC.Reverse(c.Request().Context(), latitud, longitud)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ReverseGeocodeResponse{
		Found:     result.Found,
		Direccion: result.Direccion,
	})
}

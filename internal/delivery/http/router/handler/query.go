package handler

import (
	"strconv"

	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// bindPage reads skip and limit. An absent limit stays nil so the use case applies its default.
func bindPage(c echo.Context) (usecase.PageInput, error) {
	var (
		page  usecase.PageInput
		limit int
	)

	if err := echo.QueryParamsBinder(c).
		Int("skip", &page.Skip).
		Int("limit", &limit).
		BindError(); err != nil {
		return page, err
	}

	if c.QueryParam("limit") != "" {
		page.Limit = &limit
	}

	return page, nil
}

// optionalFloat returns nil when the query parameter is absent.
func optionalFloat(c echo.Context, name string) (*float64, error) {
	if c.QueryParam(name) == "" {
		return nil, nil
	}

	var value float64
	if err := echo.QueryParamsBinder(c).Float64(name, &value).BindError(); err != nil {
		return nil, err
	}

	return &value, nil
}

func reviewID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WrapMessage("parse review id " + strconv.Quote(c.Param("id")))
	}

	return id, nil
}

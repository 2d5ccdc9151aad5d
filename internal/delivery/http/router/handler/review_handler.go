package handler

import (
	"log/slog"
	"net/http"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const mimeGeoJSON = "application/geo+json"

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// ReviewHandler serves /api/resenas. Every route runs behind required authentication.
type ReviewHandler struct {
	reviewUC  usecase.ReviewUsecase
	presenter reviewPresenter
	logger    *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		presenter: reviewPresenter{
			exposeTokenInListings: params.Config.Reviews.ExposeTokenInListings,
		},
		logger: params.Logger,
	}
}

// CreateReview handles POST /api/resenas
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var input usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	author := deliverycontext.GetIdentity(c)
	review, err := h.reviewUC.Create(c.Request().Context(), author, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusCreated, h.presenter.single(review, author))
}

// ListReviews handles GET /api/resenas?skip&limit&email_autor
func (h *ReviewHandler) ListReviews(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, usecase.ListReviewsInput{
		Page:       page,
		EmailAutor: c.QueryParam("email_autor"),
	})
}

// MyReviews handles GET /api/resenas/mis-resenas
func (h *ReviewHandler) MyReviews(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	return h.list(c, usecase.ListReviewsInput{
		Page:       page,
		EmailAutor: deliverycontext.GetIdentity(c).Email(),
	})
}

func (h *ReviewHandler) list(c echo.Context, input usecase.ListReviewsInput) error {
	result, err := h.reviewUC.List(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, ReviewListResponse{
		Resenas: h.presenter.many(result.Reviews),
		Total:   result.Total,
	})
}

// SearchByEstablishment handles GET /api/resenas/establecimiento/:nombre
func (h *ReviewHandler) SearchByEstablishment(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.reviewUC.SearchByEstablishment(c.Request().Context(), c.Param("nombre"), page)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.many(reviews))
}

// SearchByLocation handles GET /api/resenas/ubicacion?latitud&longitud&radio_km
func (h *ReviewHandler) SearchByLocation(c echo.Context) error {
	input, err := bindLocationSearch(c)
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.reviewUC.SearchByLocation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.many(reviews))
}

// SearchByLocationGeoJSON runs the location search and answers with a FeatureCollection.
func (h *ReviewHandler) SearchByLocationGeoJSON(c echo.Context) error {
	input, err := bindLocationSearch(c)
	if err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.reviewUC.SearchByLocation(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	body, err := h.presenter.featureCollection(reviews).MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "marshal feature collection")
	}

	return c.Blob(http.StatusOK, mimeGeoJSON, body)
}

func bindLocationSearch(c echo.Context) (usecase.SearchByLocationInput, error) {
	var input usecase.SearchByLocationInput
	if err := echo.QueryParamsBinder(c).
		MustFloat64("latitud", &input.Latitud).
		MustFloat64("longitud", &input.Longitud).
		BindError(); err != nil {
		return input, err
	}

	radius, err := optionalFloat(c, "radio_km")
	if err != nil {
		return input, err
	}
	input.RadioKm = radius

	return input, nil
}

// SearchByRating handles GET /api/resenas/valoracion?min_valoracion&max_valoracion
func (h *ReviewHandler) SearchByRating(c echo.Context) error {
	page, err := bindPage(c)
	if err != nil {
		return errors.WithStack(err)
	}

	input := usecase.SearchByRatingInput{Page: page}
	if input.Min, err = optionalFloat(c, "min_valoracion"); err != nil {
		return errors.WithStack(err)
	}
	if input.Max, err = optionalFloat(c, "max_valoracion"); err != nil {
		return errors.WithStack(err)
	}

	reviews, err := h.reviewUC.SearchByRating(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.many(reviews))
}

// GetReview handles GET /api/resenas/:id
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := reviewID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	review, err := h.reviewUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.single(review, deliverycontext.GetIdentity(c)))
}

// UpdateReview handles PUT /api/resenas/:id
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := reviewID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	var input usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return errors.WithStack(err)
	}

	author := deliverycontext.GetIdentity(c)
	review, err := h.reviewUC.Update(c.Request().Context(), author, id, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, h.presenter.single(review, author))
}

// DeleteReview handles DELETE /api/resenas/:id
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := reviewID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.reviewUC.Delete(c.Request().Context(), deliverycontext.GetIdentity(c), id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ShareQR handles GET /api/resenas/:id/qr
func (h *ReviewHandler) ShareQR(c echo.Context) error {
	id, err := reviewID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	png, err := h.reviewUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

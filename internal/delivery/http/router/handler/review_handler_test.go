package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"mimapa/internal/domain/entity"
	domainerrors "mimapa/internal/domain/errors"
	mockUC "mimapa/internal/mocks/usecase"
	"mimapa/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReviewHandler(t *testing.T, exposeToken bool) (*ReviewHandler, *mockUC.MockReviewUsecase) {
	reviewUC := mockUC.NewMockReviewUsecase(t)
	cfg := newTestConfig()
	cfg.Reviews.ExposeTokenInListings = exposeToken

	return NewReviewHandler(ReviewHandlerParams{
		ReviewUC: reviewUC,
		Config:   cfg,
		Logger:   newDiscardLogger(),
	}), reviewUC
}

func decodeMap(t *testing.T, body []byte) map[string]any {
	t.Helper()

	var doc map[string]any
	require.NoError(t, json.Unmarshal(body, &doc))

	return doc
}

func TestReviewHandler_CreateReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	author := newIdentity("ana@example.com")
	review := newReview(author.Email())

	body := `{"nombre_establecimiento":"Café Central","direccion":"Calle Mayor 1","latitud":40.4168,"longitud":-3.7038,"valoracion":4.5,"email_autor":"intrusa@example.com"}`
	c, rec := newContext(http.MethodPost, "/api/resenas", body, author)

	reviewUC.EXPECT().
		Create(mock.Anything, author, mock.MatchedBy(func(in *usecase.CreateReviewInput) bool {
			return *in.NombreEstablecimiento == "Café Central" && *in.Valoracion == 4.5
		})).
		Return(review, nil)

	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	doc := decodeMap(t, rec.Body.Bytes())
	assert.Equal(t, review.ID.String(), doc["_id"])
	assert.Equal(t, "ana@example.com", doc["email_autor"])
	assert.Equal(t, "raw-token", doc["token_oauth"])
	assert.Equal(t, []any{}, doc["imagenes"])
	assert.NotContains(t, doc, "id")
}

func TestReviewHandler_CreateReview_PropagatesValidationError(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	author := newIdentity("ana@example.com")
	c, _ := newContext(http.MethodPost, "/api/resenas", `{"valoracion":5.1}`, author)

	violation := domainerrors.NewValidationError(domainerrors.FieldViolation{Field: "valoracion", Rule: "lte"})
	reviewUC.EXPECT().Create(mock.Anything, author, mock.Anything).Return(nil, violation)

	err := h.CreateReview(c)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestReviewHandler_GetReview_TokenVisibleToAuthorOnly(t *testing.T) {
	tests := []struct {
		name      string
		viewer    string
		wantToken bool
	}{
		{name: "author sees token", viewer: "ana@example.com", wantToken: true},
		{name: "other user does not", viewer: "luis@example.com", wantToken: false},
		{name: "case differs", viewer: "Ana@example.com", wantToken: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, reviewUC := newTestReviewHandler(t, false)
			review := newReview("ana@example.com")

			c, rec := newContext(http.MethodGet, "/api/resenas/"+review.ID.String(), "", newIdentity(tt.viewer))
			c.SetParamNames("id")
			c.SetParamValues(review.ID.String())

			reviewUC.EXPECT().Get(mock.Anything, review.ID).Return(review, nil)

			require.NoError(t, h.GetReview(c))
			assert.Equal(t, http.StatusOK, rec.Code)

			doc := decodeMap(t, rec.Body.Bytes())
			if tt.wantToken {
				assert.Equal(t, "raw-token", doc["token_oauth"])
			} else {
				assert.NotContains(t, doc, "token_oauth")
			}
			assert.Equal(t, "2026-01-01T10:00:00Z", doc["token_emision"])
			assert.Equal(t, "2026-01-01T10:30:00Z", doc["token_caducidad"])
		})
	}
}

// callerFrame names the first frame outside the errors helper package.
func callerFrame(stack pkgerrors.StackTrace) string {
	for _, frame := range stack {
		name := fmt.Sprintf("%+s", frame)
		if !strings.HasPrefix(name, "mimapa/internal/errors.") {
			return name
		}
	}

	return ""
}

func TestReviewHandler_MalformedID(t *testing.T) {
	tests := []struct {
		name    string
		method  string
		target  string
		handler func(h *ReviewHandler) echo.HandlerFunc
		frame   string
	}{
		{"get", http.MethodGet, "/api/resenas/no-es-un-id", func(h *ReviewHandler) echo.HandlerFunc { return h.GetReview }, "GetReview"},
		{"update", http.MethodPut, "/api/resenas/no-es-un-id", func(h *ReviewHandler) echo.HandlerFunc { return h.UpdateReview }, "UpdateReview"},
		{"delete", http.MethodDelete, "/api/resenas/no-es-un-id", func(h *ReviewHandler) echo.HandlerFunc { return h.DeleteReview }, "DeleteReview"},
		{"qr", http.MethodGet, "/api/resenas/no-es-un-id/qr", func(h *ReviewHandler) echo.HandlerFunc { return h.ShareQR }, "ShareQR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestReviewHandler(t, false)
			c, _ := newContext(tt.method, tt.target, "", newIdentity("ana@example.com"))
			c.SetParamNames("id")
			c.SetParamValues("no-es-un-id")

			err := tt.handler(h)(c)
			require.ErrorIs(t, err, domainerrors.ErrInvalidID)

			// The outermost stack is recorded where the handler returned the error.
			var traced interface{ StackTrace() pkgerrors.StackTrace }
			require.ErrorAs(t, err, &traced)
			assert.Contains(t, callerFrame(traced.StackTrace()), tt.frame)
		})
	}
}

func TestReviewHandler_GetReview_NotFound(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	id := uuid.New()
	c, _ := newContext(http.MethodGet, "/api/resenas/"+id.String(), "", newIdentity("ana@example.com"))
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	reviewUC.EXPECT().Get(mock.Anything, id).Return(nil, domainerrors.ErrReviewNotFound)

	require.ErrorIs(t, h.GetReview(c), domainerrors.ErrReviewNotFound)
}

func TestReviewHandler_ListReviews(t *testing.T) {
	t.Run("defaults leave limit unset and hide tokens", func(t *testing.T) {
		h, reviewUC := newTestReviewHandler(t, false)
		c, rec := newContext(http.MethodGet, "/api/resenas", "", newIdentity("ana@example.com"))

		reviewUC.EXPECT().
			List(mock.Anything, usecase.ListReviewsInput{Page: usecase.PageInput{Skip: 0, Limit: nil}}).
			Return(&usecase.ReviewList{Reviews: []*entity.Review{newReview("ana@example.com")}, Total: 7}, nil)

		require.NoError(t, h.ListReviews(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var res struct {
			Resenas []map[string]any `json:"resenas"`
			Total   int64            `json:"total"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		assert.Equal(t, int64(7), res.Total)
		require.Len(t, res.Resenas, 1)
		assert.NotContains(t, res.Resenas[0], "token_oauth")
	})

	t.Run("query parameters are forwarded", func(t *testing.T) {
		h, reviewUC := newTestReviewHandler(t, true)
		c, rec := newContext(http.MethodGet, "/api/resenas?skip=10&limit=5&email_autor=luis@example.com", "", newIdentity("ana@example.com"))

		reviewUC.EXPECT().
			List(mock.Anything, usecase.ListReviewsInput{
				Page:       usecase.PageInput{Skip: 10, Limit: ptr(5)},
				EmailAutor: "luis@example.com",
			}).
			Return(&usecase.ReviewList{Reviews: []*entity.Review{newReview("luis@example.com")}, Total: 11}, nil)

		require.NoError(t, h.ListReviews(c))

		var res struct {
			Resenas []map[string]any `json:"resenas"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Len(t, res.Resenas, 1)
		assert.Equal(t, "raw-token", res.Resenas[0]["token_oauth"])
	})

	t.Run("non numeric limit is a binding error", func(t *testing.T) {
		h, _ := newTestReviewHandler(t, false)
		c, _ := newContext(http.MethodGet, "/api/resenas?limit=muchos", "", newIdentity("ana@example.com"))

		err := h.ListReviews(c)

		var bindErr *echo.BindingError
		require.ErrorAs(t, err, &bindErr)
		assert.Equal(t, "limit", bindErr.Field)
	})
}

func TestReviewHandler_MyReviews_FiltersByCaller(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	c, rec := newContext(http.MethodGet, "/api/resenas/mis-resenas?email_autor=otra@example.com", "", newIdentity("ana@example.com"))

	reviewUC.EXPECT().
		List(mock.Anything, usecase.ListReviewsInput{EmailAutor: "ana@example.com"}).
		Return(&usecase.ReviewList{Reviews: []*entity.Review{}, Total: 0}, nil)

	require.NoError(t, h.MyReviews(c))
	assert.JSONEq(t, `{"resenas":[],"total":0}`, rec.Body.String())
}

func TestReviewHandler_SearchByEstablishment(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	c, rec := newContext(http.MethodGet, "/api/resenas/establecimiento/caf", "", newIdentity("ana@example.com"))
	c.SetParamNames("nombre")
	c.SetParamValues("caf")

	reviewUC.EXPECT().
		SearchByEstablishment(mock.Anything, "caf", usecase.PageInput{}).
		Return([]*entity.Review{newReview("ana@example.com")}, nil)

	require.NoError(t, h.SearchByEstablishment(c))

	var docs []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Café Central", docs[0]["nombre_establecimiento"])
}

func TestReviewHandler_SearchByLocation(t *testing.T) {
	t.Run("radius is optional", func(t *testing.T) {
		h, reviewUC := newTestReviewHandler(t, false)
		c, _ := newContext(http.MethodGet, "/api/resenas/ubicacion?latitud=40.4&longitud=-3.7", "", newIdentity("ana@example.com"))

		reviewUC.EXPECT().
			SearchByLocation(mock.Anything, usecase.SearchByLocationInput{Latitud: 40.4, Longitud: -3.7}).
			Return([]*entity.Review{}, nil)

		require.NoError(t, h.SearchByLocation(c))
	})

	t.Run("radius is forwarded", func(t *testing.T) {
		h, reviewUC := newTestReviewHandler(t, false)
		c, _ := newContext(http.MethodGet, "/api/resenas/ubicacion?latitud=40.4&longitud=-3.7&radio_km=2.5", "", newIdentity("ana@example.com"))

		reviewUC.EXPECT().
			SearchByLocation(mock.Anything, usecase.SearchByLocationInput{Latitud: 40.4, Longitud: -3.7, RadioKm: ptr(2.5)}).
			Return([]*entity.Review{}, nil)

		require.NoError(t, h.SearchByLocation(c))
	})

	t.Run("latitude is required", func(t *testing.T) {
		h, _ := newTestReviewHandler(t, false)
		c, _ := newContext(http.MethodGet, "/api/resenas/ubicacion?longitud=-3.7", "", newIdentity("ana@example.com"))

		var bindErr *echo.BindingError
		require.ErrorAs(t, h.SearchByLocation(c), &bindErr)
		assert.Equal(t, "latitud", bindErr.Field)
	})
}

func TestReviewHandler_SearchByLocationGeoJSON(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	review := newReview("ana@example.com")
	c, rec := newContext(http.MethodGet, "/api/resenas/ubicacion/geojson?latitud=40.4&longitud=-3.7", "", newIdentity("ana@example.com"))

	reviewUC.EXPECT().
		SearchByLocation(mock.Anything, mock.Anything).
		Return([]*entity.Review{review}, nil)

	require.NoError(t, h.SearchByLocationGeoJSON(c))
	assert.Equal(t, mimeGeoJSON, rec.Header().Get(echo.HeaderContentType))

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			ID       string `json:"id"`
			Geometry struct {
				Type        string    `json:"type"`
				Coordinates []float64 `json:"coordinates"`
			} `json:"geometry"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fc))
	assert.Equal(t, "FeatureCollection", fc.Type)
	require.Len(t, fc.Features, 1)
	assert.Equal(t, review.ID.String(), fc.Features[0].ID)
	assert.Equal(t, "Point", fc.Features[0].Geometry.Type)
	assert.Equal(t, []float64{-3.7038, 40.4168}, fc.Features[0].Geometry.Coordinates)
	assert.NotContains(t, fc.Features[0].Properties, "token_oauth")
}

func TestReviewHandler_SearchByRating(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	c, _ := newContext(http.MethodGet, "/api/resenas/valoracion?min_valoracion=3&max_valoracion=4.5&limit=20", "", newIdentity("ana@example.com"))

	reviewUC.EXPECT().
		SearchByRating(mock.Anything, usecase.SearchByRatingInput{
			Min:  ptr(3.0),
			Max:  ptr(4.5),
			Page: usecase.PageInput{Limit: ptr(20)},
		}).
		Return([]*entity.Review{}, nil)

	require.NoError(t, h.SearchByRating(c))
}

func TestReviewHandler_UpdateReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	author := newIdentity("ana@example.com")
	review := newReview(author.Email())
	review.Valoracion = 3

	c, rec := newContext(http.MethodPut, "/api/resenas/"+review.ID.String(), `{"valoracion":3,"direccion":null}`, author)
	c.SetParamNames("id")
	c.SetParamValues(review.ID.String())

	reviewUC.EXPECT().
		Update(mock.Anything, author, review.ID, mock.MatchedBy(func(in *usecase.UpdateReviewInput) bool {
			return in.Valoracion != nil && *in.Valoracion == 3 && in.Direccion == nil && in.NombreEstablecimiento == nil
		})).
		Return(review, nil)

	require.NoError(t, h.UpdateReview(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3.0, decodeMap(t, rec.Body.Bytes())["valoracion"])
}

func TestReviewHandler_DeleteReview(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	author := newIdentity("ana@example.com")
	id := uuid.New()
	c, rec := newContext(http.MethodDelete, "/api/resenas/"+id.String(), "", author)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	reviewUC.EXPECT().Delete(mock.Anything, author, id).Return(nil)

	require.NoError(t, h.DeleteReview(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestReviewHandler_DeleteReview_NotOwner(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	intruder := newIdentity("luis@example.com")
	id := uuid.New()
	c, _ := newContext(http.MethodDelete, "/api/resenas/"+id.String(), "", intruder)
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	reviewUC.EXPECT().Delete(mock.Anything, intruder, id).Return(domainerrors.ErrReviewNotFound)

	require.ErrorIs(t, h.DeleteReview(c), domainerrors.ErrReviewNotFound)
}

func TestReviewHandler_ShareQR(t *testing.T) {
	h, reviewUC := newTestReviewHandler(t, false)
	id := uuid.New()
	c, rec := newContext(http.MethodGet, "/api/resenas/"+id.String()+"/qr", "", newIdentity("ana@example.com"))
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	png := []byte{0x89, 'P', 'N', 'G'}
	reviewUC.EXPECT().ShareQR(mock.Anything, id).Return(png, nil)

	require.NoError(t, h.ShareQR(c))
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

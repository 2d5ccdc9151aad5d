package handler

import (
	"log/slog"
	"net/http"

	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler accepts review photos.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// UploadResponse carries the public URL of a stored image.
type UploadResponse struct {
	URL string `json:"url"`
}

// UploadImage handles POST /api/resenas/upload-image (multipart field "file")
func (h *MediaHandler) UploadImage(c echo.Context) error {
	header, err := c.FormFile(uploadFormField)
	if err != nil {
		return domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   uploadFormField,
			Rule:    "required",
			Message: "es obligatorio",
		})
	}

	file, err := header.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	url, err := h.mediaUC.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		Filename: header.Filename,
		Size:     header.Size,
		Content:  file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, UploadResponse{URL: url})
}

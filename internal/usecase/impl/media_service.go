package impl

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"mimapa/config"
	deliverycontext "mimapa/internal/delivery/context"
	domainerrors "mimapa/internal/domain/errors"
	"mimapa/internal/domain/service"
	"mimapa/internal/errors"
	"mimapa/internal/usecase"
	"mimapa/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/fx"
)

const defaultMaxImageBytes = 10 << 20

// mediaService implements the MediaUsecase interface.
type mediaService struct {
	store    service.ImageStore
	metrics  service.MetricsRecorder
	maxBytes int64
	logger   *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Store   service.ImageStore
	Metrics service.MetricsRecorder
	Config  *config.Config
	Logger  *slog.Logger
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	maxBytes := int64(defaultMaxImageBytes)
	if params.Config.Images != nil && params.Config.Images.MaxBytes > 0 {
		maxBytes = params.Config.Images.MaxBytes
	}

	return &mediaService{
		store:    params.Store,
		metrics:  params.Metrics,
		maxBytes: maxBytes,
		logger:   params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage accepts only content sniffed as image/*; the declared content type and
// file extension are not trusted.
func (srv *mediaService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	if input == nil || input.Content == nil {
		return "", domainerrors.NewValidationError(domainerrors.FieldViolation{
			Field:   "file",
			Rule:    "required",
			Message: "es obligatorio",
		})
	}
	if input.Size > srv.maxBytes {
		return "", domainerrors.ErrImageTooLarge.WrapMessage("declared size " + util.FormatBytes(input.Size))
	}

	data, err := io.ReadAll(io.LimitReader(input.Content, srv.maxBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read uploaded file")
	}
	if int64(len(data)) > srv.maxBytes {
		return "", domainerrors.ErrImageTooLarge.WrapMessage("content exceeds " + util.FormatBytes(srv.maxBytes))
	}
	if len(data) == 0 {
		return "", domainerrors.ErrInvalidImage.WrapMessage("empty upload")
	}

	detected := mimetype.Detect(data)
	if !strings.HasPrefix(detected.String(), "image/") {
		return "", domainerrors.ErrInvalidImage.WrapMessage("detected " + detected.String())
	}

	filename := input.Filename
	if path.Ext(filename) == "" {
		filename += detected.Extension()
	}

	url, err := srv.store.Store(ctx, data, filename, detected.String())
	if err != nil {
		srv.log(ctx).Error("Failed to store uploaded image", slog.String("filename", input.Filename), slog.Any("error", err))

		return "", domainerrors.ErrUpstreamFailure.WrapMessage(err.Error())
	}

	srv.metrics.RecordUpload(int64(len(data)))
	srv.log(ctx).Info("Image uploaded", slog.String("url", url), slog.String("size", util.FormatBytes(int64(len(data)))))

	return url, nil
}

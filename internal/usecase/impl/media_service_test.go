package impl

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"testing"

	domainerrors "mimapa/internal/domain/errors"
	mockSvc "mimapa/internal/mocks/service"
	"mimapa/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mediaServiceFixtures struct {
	service usecase.MediaUsecase
	store   *mockSvc.MockImageStore
	metrics *mockSvc.MockMetricsRecorder
}

func createTestMediaService(t *testing.T) mediaServiceFixtures {
	store := mockSvc.NewMockImageStore(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	return mediaServiceFixtures{
		service: NewMediaService(MediaServiceParams{
			Store:   store,
			Metrics: metrics,
			Config:  newTestConfig(),
			Logger:  newDiscardLogger(),
		}),
		store:   store,
		metrics: metrics,
	}
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))

	return buf.Bytes()
}

func TestMediaService_UploadImage_Success(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	data := tinyPNG(t)

	fx.store.EXPECT().Store(ctx, data, "foto.png", "image/png").Return("https://cdn.example.com/foto.png", nil)
	fx.metrics.EXPECT().RecordUpload(int64(len(data))).Return()

	url, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{
		Filename: "foto.png",
		Size:     int64(len(data)),
		Content:  bytes.NewReader(data),
	})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/foto.png", url)
}

func TestMediaService_UploadImage_AddsSniffedExtension(t *testing.T) {
	fx := createTestMediaService(t)
	ctx := context.Background()
	data := tinyPNG(t)

	fx.store.EXPECT().Store(ctx, data, "captura.png", "image/png").Return("/captura.png", nil)
	fx.metrics.EXPECT().RecordUpload(mock.Anything).Return()

	_, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{Filename: "captura", Content: bytes.NewReader(data)})

	require.NoError(t, err)
}

func TestMediaService_UploadImage_RejectsNonImages(t *testing.T) {
	fx := createTestMediaService(t)

	_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{
		Filename: "fake.png",
		Content:  bytes.NewReader([]byte("just some text pretending to be a png")),
	})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidImage)
}

func TestMediaService_UploadImage_TooLarge(t *testing.T) {
	t.Run("declared size", func(t *testing.T) {
		fx := createTestMediaService(t)

		_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{
			Filename: "big.png",
			Size:     2 << 10,
			Content:  bytes.NewReader(nil),
		})

		assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	})

	t.Run("actual content", func(t *testing.T) {
		fx := createTestMediaService(t)
		data := append(tinyPNG(t), make([]byte, 2<<10)...)

		_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{
			Filename: "big.png",
			Content:  bytes.NewReader(data),
		})

		assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
	})
}

func TestMediaService_UploadImage_StoreFailureIsUpstream(t *testing.T) {
	fx := createTestMediaService(t)
	data := tinyPNG(t)

	fx.store.EXPECT().Store(mock.Anything, data, "foto.png", "image/png").Return("", errors.New("bucket unavailable"))

	_, err := fx.service.UploadImage(context.Background(), &usecase.UploadImageInput{
		Filename: "foto.png",
		Content:  bytes.NewReader(data),
	})

	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailure)
}

func TestMediaService_UploadImage_MissingFile(t *testing.T) {
	fx := createTestMediaService(t)

	_, err := fx.service.UploadImage(context.Background(), nil)

	requireViolation(t, err, "file")
}

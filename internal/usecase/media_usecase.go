package usecase

import (
	"context"
	"io"
)

// UploadImageInput carries one multipart file.
type UploadImageInput struct {
	Filename string
	Size     int64 // Declared size; the content is still capped while reading.
	Content  io.Reader
}

// MediaUsecase stores review photos.
type MediaUsecase interface {
	// UploadImage returns the public URL of the stored image.
	UploadImage(ctx context.Context, input *UploadImageInput) (string, error)
}

// Package imagestore writes uploaded images to a gocloud.dev bucket.
package imagestore

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"mimapa/config"
	"mimapa/internal/domain/service"
	"mimapa/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Bucket drivers selectable through images.bucketUrl.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
	_ "gocloud.dev/blob/s3blob"
)

// blobStore implements service.ImageStore. Objects are content addressed, so
// uploading the same bytes twice yields the same URL.
type blobStore struct {
	bucket        *blob.Bucket
	keyPrefix     string
	publicBaseURL string
	logger        *slog.Logger
}

// NewBlobStore wraps an open bucket
func NewBlobStore(bucket *blob.Bucket, cfg *config.ImagesConfig, logger *slog.Logger) service.ImageStore {
	return &blobStore{
		bucket:        bucket,
		keyPrefix:     strings.Trim(cfg.KeyPrefix, "/"),
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        logger,
	}
}

// Store uploads data and returns its public URL
func (s *blobStore) Store(ctx context.Context, data []byte, filename, contentType string) (string, error) {
	key := path.Join(s.keyPrefix, util.ChecksumBytes(data)+strings.ToLower(path.Ext(filename)))

	err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000, immutable",
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write object %s", key)
	}

	s.logger.Info("Image stored",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return s.publicURL(key), nil
}

func (s *blobStore) publicURL(key string) string {
	if s.publicBaseURL == "" {
		return "/" + key
	}

	return s.publicBaseURL + "/" + key
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and closes it on shutdown
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.Images

	bucket, err := blob.OpenBucket(context.Background(), cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Image bucket opened", slog.String("bucket", cfg.BucketURL))

	return NewBlobStore(bucket, cfg, params.Logger), nil
}

// Module provides the image store
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)

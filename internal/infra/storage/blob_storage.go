// Package storage implements blob storage for uploaded media using gocloud.dev,
// so local disk and GCS buckets are interchangeable through the bucket URL.
package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"automo/config"
	domainerrors "automo/internal/domain/errors"
	"automo/internal/domain/lifecycle"
	"automo/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket URL schemes supported out of the box.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns it as a StorageService.
func New(params Params) (service.StorageService, error) {
	cfg := params.Config.Upload
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("upload bucket URL is required")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Blob storage initialized",
		slog.String("bucket", cfg.BucketURL),
	)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the blob at the given key and returns its public URL.
// Callers enforce size ceilings before calling; the ceiling is re-checked here
// against the bytes actually read so a lying Content-Length cannot bypass it.
func (s *blobStorage) Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error) {
	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", domainerrors.ErrUploadFailed.WrapMessage(err, "failed to open blob writer")
	}

	written, err := io.Copy(writer, io.LimitReader(body, size+1))
	if err != nil {
		writer.Close()

		return "", domainerrors.ErrUploadFailed.WrapMessage(err, "failed to write blob")
	}
	if written > size {
		writer.Close()
		s.Delete(ctx, key)

		return "", domainerrors.ErrFileTooLarge
	}

	if err := writer.Close(); err != nil {
		return "", domainerrors.ErrUploadFailed.WrapMessage(err, "failed to finalize blob")
	}

	return s.PublicURL(key), nil
}

// Delete removes the blob at the given key. Missing blobs are not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete blob %s", key)
	}

	return nil
}

// PublicURL derives the public URL for a stored key without any network call.
func (s *blobStorage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + strings.TrimPrefix(key, "/")
}

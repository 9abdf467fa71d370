package service

import (
	"context"
	"io"
)

// StorageService defines the interface for blob storage: avatar, logo and
// photo uploads. Uploads are single-shot; callers enforce size ceilings before
// any network work happens.
type StorageService interface {
	// Upload writes the blob at the given key and returns its public URL.
	Upload(ctx context.Context, key string, contentType string, body io.Reader, size int64) (string, error)

	// Delete removes the blob at the given key. Missing blobs are not an error.
	Delete(ctx context.Context, key string) error

	// PublicURL derives the public URL for a stored key without any network call.
	PublicURL(key string) string
}

package service

import (
	"context"
	"io"
)

// ImageStore defines the interface for storing announcement photos in a blob
// bucket. The lifecycle only keeps the returned key on the announcement.
type ImageStore interface {
	// Put stores the image under a generated key and returns that key.
	Put(ctx context.Context, contentType string, r io.Reader) (key string, err error)

	// Get opens the stored image for reading. The caller must close it.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored image. Missing keys are not an error.
	Delete(ctx context.Context, key string) error
}

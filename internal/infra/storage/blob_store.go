// Package storage implements the image store on top of a portable blob bucket.
package storage

import (
	"context"
	"io"
	"time"

	"greenloop/config"
	"greenloop/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	"gocloud.dev/gcerrors"

	// Bucket drivers resolved by URL scheme.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// blobImageStore stores announcement photos in a gocloud.dev bucket.
type blobImageStore struct {
	bucket *blob.Bucket
}

// BlobStoreParams holds dependencies for the image store, injected by Fx.
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
}

// NewBlobImageStore opens the bucket named by storage.bucketUrl. An empty URL
// disables image storage and yields a nil store.
func NewBlobImageStore(params BlobStoreParams) (service.ImageStore, error) {
	if params.Config.Storage == nil || params.Config.Storage.BucketURL == "" {
		return nil, nil
	}

	bucket, err := blob.OpenBucket(params.Ctx, params.Config.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image bucket")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return &blobImageStore{bucket: bucket}, nil
}

// Put stores the image under a generated key and returns that key.
func (s *blobImageStore) Put(ctx context.Context, contentType string, r io.Reader) (string, error) {
	key := time.Now().UTC().Format("2006/01/02") + "/" + uuid.New().String()

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(w, r); err != nil {
		w.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	return key, nil
}

// Get opens the stored image for reading. The caller must close it.
func (s *blobImageStore) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open bucket reader")
	}

	return r, nil
}

// Delete removes a stored image. Missing keys are not an error.
func (s *blobImageStore) Delete(ctx context.Context, key string) error {
	err := s.bucket.Delete(ctx, key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}

// Package blobstore adapts an S3-compatible object store for image
// storage. Objects are addressed by a composite key {userId}/{imageId}.
// The adapter performs no validation of its own: callers are expected to
// check size and content type before uploading.
package blobstore

import (
	"context"
	"io"
)

// Object is a fetched blob: a byte stream plus the stored content type.
// The caller owns Body and must close it.
type Object struct {
	Body        io.ReadCloser
	ContentType string
}

type Store interface {
	// Upload stores the object and returns its public URL when a public
	// base URL is configured, otherwise the raw key.
	Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)

	// Fetch streams the object. A missing key is common.ErrNotFound.
	Fetch(ctx context.Context, key string) (*Object, error)

	// Delete removes the object. Deleting a missing key is not an error;
	// callers use Exists first when they need to tell the two apart.
	Delete(ctx context.Context, key string) error

	// Exists reports whether the object is present.
	Exists(ctx context.Context, key string) (bool, error)
}

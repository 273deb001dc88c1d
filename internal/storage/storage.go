// Package storage defines the interface for object storage operations.
// Swap implementations by changing the concrete type injected at startup;
// the MinIO implementation works with any S3-compatible provider (MinIO, AWS S3).
package storage

import (
	"context"
	"io"
	"time"
)

// Storage is the interface for writing, signing, and removing objects.
// The bucket is private; reads happen only through time-limited signed URLs.
type Storage interface {
	// Upload streams data to the store under the given key. Every call is an
	// unconditional put: it creates or overwrites, never read-modify-write.
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error
	// SignedURL mints a presigned GET URL for key, valid for expiry.
	SignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
	// Delete removes an object identified by key.
	Delete(ctx context.Context, key string) error
	// List returns the keys of all objects under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

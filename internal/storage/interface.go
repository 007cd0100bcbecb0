package storage

import (
	"context"
	"io"
)

// ObjectStore defines the interface for object-storage operations
type ObjectStore interface {
	// List returns stored objects newest first, capped at the configured
	// page size.
	List(ctx context.Context) ([]Object, error)

	// Upload stores a new object. The object name is derived from the
	// original filename; existing objects are never overwritten. progress
	// may be nil.
	Upload(ctx context.Context, reader io.Reader, filename string, size int64, contentType string, progress ProgressFunc) (*Object, error)

	// Delete removes an object by name. Deleting an absent object is a
	// no-op, matching S3 semantics.
	Delete(ctx context.Context, name string) error

	// PublicURL derives the public playback URL for an object name. Pure;
	// assumes the bucket is public-read.
	PublicURL(name string) string
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}

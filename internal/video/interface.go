package video

import (
	"context"

	"github.com/google/uuid"
	"github.com/vidvault/vidvault/backend/internal/hosting"
)

// LinkStore defines the link-table adapter: create, list and delete
// rows representing externally hosted video URLs.
type LinkStore interface {
	// List returns all link rows, newest first.
	List(ctx context.Context) ([]VideoLink, error)

	// Create inserts a new link row. The URL is only checked for
	// presence; classification happens downstream at listing time.
	Create(ctx context.Context, url string) (*VideoLink, error)

	// Delete removes a single row by id. A missing row is a
	// NotFoundError, not a silent no-op.
	Delete(ctx context.Context, id uuid.UUID) error
}

// HostingStore defines the subset of the hosting API the aggregator
// routes through.
type HostingStore interface {
	ListFiles(ctx context.Context) (*hosting.Envelope, error)
	IngestRemoteURL(ctx context.Context, url string) (*hosting.Envelope, error)
	DeleteFile(ctx context.Context, fileCode string) (*hosting.Envelope, error)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogWarn(msg string, fields map[string]interface{})
}

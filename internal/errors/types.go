package errors

// ValidationError represents bad or missing caller input
type ValidationError struct {
	Field   string
	Message string
}

// StoreError represents a failure in one of our own backing stores
// (link table or object storage)
type StoreError struct {
	Message string
	Cause   error
}

// UpstreamError represents a failure reported by the third-party hosting
// API. Status carries the upstream status code when one was received.
type UpstreamError struct {
	Message string
	Status  int
	Cause   error
}

// NotFoundError represents a delete or lookup target that does not exist
type NotFoundError struct {
	Resource string
	Key      string
}

// CancelledError represents an operation aborted by the caller
type CancelledError struct {
	Op string
}

// AggregateError represents the case where every active source adapter
// failed during an aggregate listing
type AggregateError struct {
	Errs []error
}

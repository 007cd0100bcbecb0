package errors

import (
	"fmt"
	"strings"
)

// Error method implementation for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error method implementation for StoreError
func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Error method implementation for UpstreamError
func (e *UpstreamError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Error method implementation for NotFoundError
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.Key)
}

// Error method implementation for CancelledError
func (e *CancelledError) Error() string {
	return fmt.Sprintf("%s cancelled", e.Op)
}

// Error method implementation for AggregateError
func (e *AggregateError) Error() string {
	msgs := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		msgs = append(msgs, err.Error())
	}
	return fmt.Sprintf("all source adapters failed: %s", strings.Join(msgs, "; "))
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// NewStoreError creates a new StoreError
func NewStoreError(message string, cause error) *StoreError {
	return &StoreError{
		Message: message,
		Cause:   cause,
	}
}

// NewUpstreamError creates a new UpstreamError
func NewUpstreamError(message string, status int, cause error) *UpstreamError {
	return &UpstreamError{
		Message: message,
		Status:  status,
		Cause:   cause,
	}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, key string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Key:      key,
	}
}

// NewCancelledError creates a new CancelledError
func NewCancelledError(op string) *CancelledError {
	return &CancelledError{Op: op}
}

// NewAggregateError creates a new AggregateError
func NewAggregateError(errs []error) *AggregateError {
	return &AggregateError{Errs: errs}
}

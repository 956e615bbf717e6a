package s2

import (
	"errors"
	"fmt"
)

// Stable error kinds exposed to callers of the tool surface.
const (
	KindInvalidField          = "invalid_field"
	KindInvalidIdentifier     = "invalid_identifier"
	KindEmptyBatch            = "empty_batch"
	KindBatchTooLarge         = "batch_too_large"
	KindDuplicateIdentifier   = "duplicate_identifier"
	KindParameterOutOfRange   = "parameter_out_of_range"
	KindConflictingPagination = "conflicting_pagination"
	KindInvalidRange          = "invalid_range"
	KindEmptyQuery            = "empty_query"
	KindNotFound              = "not_found"
	KindInvalidRequest        = "invalid_request"
	KindUnavailable           = "rate_limited_or_unavailable"
	KindNetworkFailure        = "network_failure"
	KindMalformedResponse     = "malformed_response"
	KindInternal              = "internal_error"
)

// Validation errors that carry no extra context.
var (
	// ErrEmptyBatch indicates a batch request with no identifiers.
	ErrEmptyBatch = errors.New("batch is empty")

	// ErrConflictingPagination indicates both an offset and a continuation
	// token were supplied for the same request.
	ErrConflictingPagination = errors.New("offset and continuation token are mutually exclusive")

	// ErrEmptyQuery indicates a required free-text query was empty after
	// trimming.
	ErrEmptyQuery = errors.New("query must be a non-empty string")
)

// InvalidFieldError reports a requested field outside an entity's
// allow-list.
type InvalidFieldError struct {
	Field  string
	Entity Entity
}

func (e *InvalidFieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("empty field name in %s field list", e.Entity)
	}
	return fmt.Sprintf("unknown %s field %q", e.Entity, e.Field)
}

// InvalidIdentifierError reports an identifier that failed normalization.
type InvalidIdentifierError struct {
	Raw string
}

func (e *InvalidIdentifierError) Error() string {
	return fmt.Sprintf("invalid identifier %q", e.Raw)
}

// BatchTooLargeError reports a batch exceeding the endpoint ceiling.
type BatchTooLargeError struct {
	Count int
	Max   int
}

func (e *BatchTooLargeError) Error() string {
	return fmt.Sprintf("batch of %d identifiers exceeds maximum of %d", e.Count, e.Max)
}

// DuplicateIdentifierError reports the first duplicated identifier in a
// batch. The upstream batch endpoint returns undefined results for
// duplicated keys.
type DuplicateIdentifierError struct {
	Ref string
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("duplicate identifier %q in batch", e.Ref)
}

// OutOfRangeError reports a numeric parameter outside its documented
// bounds.
type OutOfRangeError struct {
	Name  string
	Value int
	Max   int
}

func (e *OutOfRangeError) Error() string {
	if e.Value < 0 {
		return fmt.Sprintf("parameter %s=%d must be non-negative", e.Name, e.Value)
	}
	return fmt.Sprintf("parameter %s=%d exceeds maximum of %d", e.Name, e.Value, e.Max)
}

// InvalidRangeError reports a malformed year-range filter.
type InvalidRangeError struct {
	Raw string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid year range %q (want YYYY, YYYY-, -YYYY, or YYYY-YYYY)", e.Raw)
}

// APIError represents an upstream or transport failure classified by the
// dispatcher.
type APIError struct {
	StatusCode int // 0 for transport-level failures
	Kind       string
	Message    string
	Retryable  bool
}

func (e *APIError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("semantic scholar: %s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("semantic scholar: %s (status %d): %s", e.Kind, e.StatusCode, e.Message)
}

// IsNotFound returns true if the error indicates the entity does not exist
// upstream.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindNotFound
}

// IsRateLimited returns true if the error came from upstream rate limiting
// or unavailability.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Kind == KindUnavailable
}

// IsRetryable returns true if the dispatcher classified the failure as
// safe to retry.
func IsRetryable(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Retryable
}

// ErrorKind maps any error produced by this package to its stable kind
// string for the tool surface.
func ErrorKind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyBatch):
		return KindEmptyBatch
	case errors.Is(err, ErrConflictingPagination):
		return KindConflictingPagination
	case errors.Is(err, ErrEmptyQuery):
		return KindEmptyQuery
	}

	var (
		fieldErr *InvalidFieldError
		idErr    *InvalidIdentifierError
		sizeErr  *BatchTooLargeError
		dupErr   *DuplicateIdentifierError
		rangeErr *OutOfRangeError
		yearErr  *InvalidRangeError
		apiErr   *APIError
	)
	switch {
	case errors.As(err, &fieldErr):
		return KindInvalidField
	case errors.As(err, &idErr):
		return KindInvalidIdentifier
	case errors.As(err, &sizeErr):
		return KindBatchTooLarge
	case errors.As(err, &dupErr):
		return KindDuplicateIdentifier
	case errors.As(err, &rangeErr):
		return KindParameterOutOfRange
	case errors.As(err, &yearErr):
		return KindInvalidRange
	case errors.As(err, &apiErr):
		return apiErr.Kind
	}
	return KindInternal
}

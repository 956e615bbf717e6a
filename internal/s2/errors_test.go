package s2

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"empty batch", ErrEmptyBatch, KindEmptyBatch},
		{"conflicting pagination", ErrConflictingPagination, KindConflictingPagination},
		{"empty query", ErrEmptyQuery, KindEmptyQuery},
		{"invalid field", &InvalidFieldError{Field: "x", Entity: EntityPaper}, KindInvalidField},
		{"invalid identifier", &InvalidIdentifierError{Raw: "x"}, KindInvalidIdentifier},
		{"batch too large", &BatchTooLargeError{Count: 501, Max: 500}, KindBatchTooLarge},
		{"duplicate identifier", &DuplicateIdentifierError{Ref: "x"}, KindDuplicateIdentifier},
		{"out of range", &OutOfRangeError{Name: "limit", Value: 101, Max: 100}, KindParameterOutOfRange},
		{"invalid range", &InvalidRangeError{Raw: "abcd"}, KindInvalidRange},
		{"api error keeps its own kind", &APIError{Kind: KindNotFound}, KindNotFound},
		{"wrapped error still classified", fmt.Errorf("searching: %w", ErrEmptyQuery), KindEmptyQuery},
		{"unknown error", errors.New("boom"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorKind(tt.err); got != tt.want {
				t.Errorf("ErrorKind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	notFound := fmt.Errorf("fetching paper: %w", &APIError{StatusCode: 404, Kind: KindNotFound})
	if !IsNotFound(notFound) {
		t.Error("IsNotFound() = false for a wrapped 404")
	}
	if IsRetryable(notFound) {
		t.Error("IsRetryable() = true for a 404")
	}

	limited := &APIError{StatusCode: 429, Kind: KindUnavailable, Retryable: true}
	if !IsRateLimited(limited) {
		t.Error("IsRateLimited() = false for a 429")
	}
	if !IsRetryable(limited) {
		t.Error("IsRetryable() = false for a 429")
	}

	if IsNotFound(errors.New("boom")) || IsRateLimited(nil) {
		t.Error("predicates matched unrelated errors")
	}
}

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/matsen/scholargraph/internal/config"
	"github.com/matsen/scholargraph/internal/s2"
)

// ErrorDetail is the structured error payload for JSON output.
type ErrorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// ErrorResponse wraps an error for JSON output.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// newClient builds the shared API client from the resolved configuration.
func newClient() *s2.Client {
	return s2.NewClient(s2.WithAPIKey(config.APIKey()))
}

// outputJSON writes a value as formatted JSON to stdout.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError writes an error in the appropriate format and returns the
// exit code.
func outputError(err error) int {
	if humanOutput {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
	} else {
		_ = outputJSON(ErrorResponse{Error: ErrorDetail{
			Kind:    s2.ErrorKind(err),
			Message: err.Error(),
		}})
	}
	return exitCode(err)
}

// exitCode maps an error kind to the CLI exit code contract.
func exitCode(err error) int {
	switch s2.ErrorKind(err) {
	case s2.KindNotFound:
		return ExitNotFound
	case s2.KindInvalidRequest, s2.KindUnavailable, s2.KindNetworkFailure, s2.KindMalformedResponse:
		return ExitAPIError
	case s2.KindInternal:
		return ExitError
	default:
		return ExitUsageError
	}
}

// emit prints the result of an operation or exits with its error.
func emit(v any, err error) {
	if err != nil {
		os.Exit(outputError(err))
	}
	if err := outputJSON(v); err != nil {
		os.Exit(ExitError)
	}
}

package tools

import (
	"encoding/json"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matsen/scholargraph/internal/s2"
)

func TestErrorResult(t *testing.T) {
	res := errorResult(s2.ErrEmptyQuery)
	if !res.IsError {
		t.Fatal("IsError = false")
	}
	if len(res.Content) != 1 {
		t.Fatalf("got %d content blocks, want 1", len(res.Content))
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("content type = %T, want *mcp.TextContent", res.Content[0])
	}

	var payload struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Fatalf("payload is not JSON: %v", err)
	}
	if payload.Kind != s2.KindEmptyQuery {
		t.Errorf("kind = %q, want %q", payload.Kind, s2.KindEmptyQuery)
	}
	if payload.Message == "" {
		t.Error("message is empty")
	}
}

func TestErrorResultKinds(t *testing.T) {
	tests := []struct {
		err  error
		kind string
	}{
		{&s2.InvalidIdentifierError{Raw: "x"}, s2.KindInvalidIdentifier},
		{&s2.BatchTooLargeError{Count: 501, Max: 500}, s2.KindBatchTooLarge},
		{&s2.APIError{StatusCode: 404, Kind: s2.KindNotFound}, s2.KindNotFound},
	}
	for _, tt := range tests {
		res := errorResult(tt.err)
		text := res.Content[0].(*mcp.TextContent)
		var payload struct {
			Kind string `json:"kind"`
		}
		if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
			t.Fatalf("payload is not JSON: %v", err)
		}
		if payload.Kind != tt.kind {
			t.Errorf("kind for %T = %q, want %q", tt.err, payload.Kind, tt.kind)
		}
	}
}

func TestNewServerRegistersCatalog(t *testing.T) {
	// Registration panics on malformed tool schemas, so constructing the
	// server is itself the assertion.
	srv := NewServer(s2.NewClient(), "test")
	if srv == nil {
		t.Fatal("NewServer() = nil")
	}
}

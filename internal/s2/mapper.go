package s2

import (
	"encoding/json"
	"fmt"
)

// decode unmarshals a nominal 2xx body, classifying parse failures as
// malformed responses.
func decode(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return &APIError{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("parsing response: %v", err),
		}
	}
	return nil
}

// decodePaperBatch maps a batch response onto the request order. The
// upstream returns a positional array with null at unresolved entries;
// the output always has exactly one slot per requested ref so callers can
// correlate by position.
func decodePaperBatch(data []byte, refs []Ref) ([]*Paper, error) {
	var papers []*Paper
	if err := decode(data, &papers); err != nil {
		return nil, err
	}
	if len(papers) != len(refs) {
		return nil, &APIError{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("batch response has %d entries for %d identifiers", len(papers), len(refs)),
		}
	}
	return papers, nil
}

// decodeAuthorBatch is the author-batch counterpart of decodePaperBatch.
func decodeAuthorBatch(data []byte, refs []Ref) ([]*Author, error) {
	var authors []*Author
	if err := decode(data, &authors); err != nil {
		return nil, err
	}
	if len(authors) != len(refs) {
		return nil, &APIError{
			Kind:    KindMalformedResponse,
			Message: fmt.Sprintf("batch response has %d entries for %d identifiers", len(authors), len(refs)),
		}
	}
	return authors, nil
}

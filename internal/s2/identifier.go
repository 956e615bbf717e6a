package s2

import (
	"strings"
	"unicode"
)

// Batch ceilings per the upstream documentation. Exceeding a ceiling is a
// caller error; batches are never auto-chunked.
const (
	PaperBatchLimit  = 500
	AuthorBatchLimit = 1000
)

// idPrefixes maps upper-cased identifier prefixes to their canonical form.
var idPrefixes = map[string]string{
	"DOI":      "DOI",
	"ARXIV":    "ARXIV",
	"MAG":      "MAG",
	"ACL":      "ACL",
	"PMID":     "PMID",
	"PMCID":    "PMCID",
	"CORPUSID": "CorpusId",
	"URL":      "URL",
}

// Ref is a validated paper or author identifier. Prefix is empty for bare
// graph IDs.
type Ref struct {
	Prefix string
	Value  string
}

// String renders the identifier in the form the upstream API accepts.
func (r Ref) String() string {
	if r.Prefix == "" {
		return r.Value
	}
	return r.Prefix + ":" + r.Value
}

// ParseID validates and canonicalizes a raw identifier. Recognized forms:
//
//	DOI:10.1038/nature12373
//	ARXIV:2106.15928
//	MAG:112218234
//	ACL:W12-3903
//	PMID:19872477
//	PMCID:2323736
//	CorpusId:215416146
//	URL:https://arxiv.org/abs/2106.15928
//	649def34f8be52c8b66281af98ae884c09aef38b   (bare graph ID)
//
// Prefix matching is case-insensitive; the canonical casing is restored in
// the result.
func ParseID(raw string) (Ref, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return Ref{}, &InvalidIdentifierError{Raw: raw}
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return Ref{}, &InvalidIdentifierError{Raw: raw}
		}
	}

	if i := strings.IndexByte(id, ':'); i >= 0 {
		if canonical, ok := idPrefixes[strings.ToUpper(id[:i])]; ok {
			value := id[i+1:]
			if value == "" {
				return Ref{}, &InvalidIdentifierError{Raw: raw}
			}
			return Ref{Prefix: canonical, Value: value}, nil
		}
	}

	// Bare graph IDs are strictly alphanumeric.
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return Ref{}, &InvalidIdentifierError{Raw: raw}
		}
	}
	return Ref{Value: id}, nil
}

// ParseAuthorID validates a graph author ID, which has no prefix grammar:
// a non-empty alphanumeric string.
func ParseAuthorID(raw string) (Ref, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return Ref{}, &InvalidIdentifierError{Raw: raw}
	}
	for _, r := range id {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return Ref{}, &InvalidIdentifierError{Raw: raw}
		}
	}
	return Ref{Value: id}, nil
}

// NormalizeBatch validates every paper identifier in raws and enforces the
// batch invariants: non-empty, at most max entries, no duplicates after
// canonicalization. Order is preserved.
func NormalizeBatch(raws []string, max int) ([]Ref, error) {
	return batchRefs(raws, max, ParseID)
}

// NormalizeAuthorBatch is NormalizeBatch under the author ID grammar.
func NormalizeAuthorBatch(raws []string, max int) ([]Ref, error) {
	return batchRefs(raws, max, ParseAuthorID)
}

func batchRefs(raws []string, max int, parse func(string) (Ref, error)) ([]Ref, error) {
	if len(raws) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(raws) > max {
		return nil, &BatchTooLargeError{Count: len(raws), Max: max}
	}

	refs := make([]Ref, 0, len(raws))
	seen := make(map[string]bool, len(raws))
	for _, raw := range raws {
		ref, err := parse(raw)
		if err != nil {
			return nil, err
		}
		key := ref.String()
		if seen[key] {
			return nil, &DuplicateIdentifierError{Ref: key}
		}
		seen[key] = true
		refs = append(refs, ref)
	}
	return refs, nil
}

// refStrings renders refs for a batch request body.
func refStrings(refs []Ref) []string {
	out := make([]string, len(refs))
	for i, r := range refs {
		out[i] = r.String()
	}
	return out
}

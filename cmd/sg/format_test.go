package main

import (
	"strings"
	"testing"

	"github.com/matsen/scholargraph/internal/s2"
)

func TestFormatAuthorLine(t *testing.T) {
	tests := []struct {
		name    string
		authors []s2.Author
		want    string
	}{
		{
			name: "no authors",
			want: "Unknown",
		},
		{
			name:    "single author abbreviated",
			authors: []s2.Author{{Name: "Frederick Matsen"}},
			want:    "Matsen F",
		},
		{
			name:    "mononym kept as is",
			authors: []s2.Author{{Name: "Aristotle"}},
			want:    "Aristotle",
		},
		{
			name: "three authors listed in full",
			authors: []s2.Author{
				{Name: "Ada Lovelace"},
				{Name: "Alan Turing"},
				{Name: "Grace Hopper"},
			},
			want: "Lovelace A, Turing A, Hopper G",
		},
		{
			name: "four authors truncate to et al",
			authors: []s2.Author{
				{Name: "Ada Lovelace"},
				{Name: "Alan Turing"},
				{Name: "Grace Hopper"},
				{Name: "Claude Shannon"},
			},
			want: "Lovelace A, Turing A, Hopper G et al.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatAuthorLine(tt.authors); got != tt.want {
				t.Errorf("formatAuthorLine() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatPaperHuman(t *testing.T) {
	p := s2.Paper{
		Title:         "Construction of the Literature Graph in Semantic Scholar",
		Year:          2018,
		Venue:         "NAACL",
		CitationCount: 451,
		IsOpenAccess:  true,
		Authors:       []s2.Author{{Name: "Waleed Ammar"}},
	}

	out := formatPaperHuman(p, 1)
	for _, want := range []string{
		"1. Construction of the Literature Graph in Semantic Scholar",
		"Ammar W (2018) - NAACL",
		"Citations: 451 | Open Access",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Index zero drops the list numbering.
	out = formatPaperHuman(p, 0)
	if strings.HasPrefix(out, "0.") || strings.HasPrefix(out, "1.") {
		t.Errorf("unindexed output is numbered:\n%s", out)
	}
}

func TestFormatSnippetHuman(t *testing.T) {
	m := s2.SnippetMatch{
		Score:   0.87,
		Snippet: s2.SnippetBody{Text: "  Codon usage bias varies between genomes.  "},
		Paper:   s2.SnippetPaper{Title: "Codon Bias"},
	}

	out := formatSnippetHuman(m, 2)
	if !strings.Contains(out, "2. [0.87] Codon Bias") {
		t.Errorf("output missing header:\n%s", out)
	}
	if !strings.Contains(out, `"Codon usage bias varies between genomes."`) {
		t.Errorf("output missing trimmed snippet text:\n%s", out)
	}

	long := s2.SnippetMatch{Snippet: s2.SnippetBody{Text: strings.Repeat("x", 300)}}
	out = formatSnippetHuman(long, 1)
	if !strings.Contains(out, "...") {
		t.Errorf("long snippet not truncated:\n%s", out)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", &s2.APIError{StatusCode: 404, Kind: s2.KindNotFound}, ExitNotFound},
		{"unavailable", &s2.APIError{StatusCode: 429, Kind: s2.KindUnavailable}, ExitAPIError},
		{"network failure", &s2.APIError{Kind: s2.KindNetworkFailure}, ExitAPIError},
		{"validation", &s2.InvalidIdentifierError{Raw: "x"}, ExitUsageError},
		{"empty query", s2.ErrEmptyQuery, ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

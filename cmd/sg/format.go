package main

import (
	"fmt"
	"strings"

	"github.com/matsen/scholargraph/internal/s2"
)

// formatAuthorLine abbreviates an author list for human display.
func formatAuthorLine(authors []s2.Author) string {
	if len(authors) == 0 {
		return "Unknown"
	}
	names := make([]string, len(authors))
	for i, a := range authors {
		parts := strings.Fields(a.Name)
		if len(parts) >= 2 {
			names[i] = parts[len(parts)-1] + " " + string([]rune(parts[0])[0])
		} else {
			names[i] = a.Name
		}
	}
	if len(names) > 3 {
		return strings.Join(names[:3], ", ") + " et al."
	}
	return strings.Join(names, ", ")
}

// formatPaperHuman formats a paper for human-readable output.
func formatPaperHuman(p s2.Paper, index int) string {
	var sb strings.Builder
	if index > 0 {
		sb.WriteString(fmt.Sprintf("%d. %s\n", index, p.Title))
	} else {
		sb.WriteString(p.Title + "\n")
	}
	sb.WriteString(fmt.Sprintf("   %s (%d)", formatAuthorLine(p.Authors), p.Year))
	if p.Venue != "" {
		sb.WriteString(" - " + p.Venue)
	}
	sb.WriteString("\n")
	if p.CitationCount > 0 || p.IsOpenAccess {
		sb.WriteString("   ")
		if p.CitationCount > 0 {
			sb.WriteString(fmt.Sprintf("Citations: %d", p.CitationCount))
		}
		if p.IsOpenAccess {
			if p.CitationCount > 0 {
				sb.WriteString(" | ")
			}
			sb.WriteString("Open Access")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// formatSnippetHuman formats a snippet match for human-readable output.
func formatSnippetHuman(m s2.SnippetMatch, index int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d. [%.2f] %s\n", index, m.Score, m.Paper.Title))
	text := strings.TrimSpace(m.Snippet.Text)
	if len(text) > 200 {
		text = text[:197] + "..."
	}
	sb.WriteString(fmt.Sprintf("   %q\n", text))
	return sb.String()
}

// Package tools exposes the Semantic Scholar operations as MCP tools.
package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/matsen/scholargraph/internal/s2"
)

// NewServer builds an MCP server with the full tool catalog registered.
func NewServer(client *s2.Client, version string) *mcp.Server {
	srv := mcp.NewServer(&mcp.Implementation{Name: "scholargraph", Version: version}, nil)
	AddTools(srv, client)
	return srv
}

// toolError is the structured error payload returned to callers.
type toolError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// errorResult wraps any operation error into a stable {kind, message}
// payload so callers can act on the kind without parsing prose.
func errorResult(err error) *mcp.CallToolResult {
	payload, _ := json.Marshal(toolError{Kind: s2.ErrorKind(err), Message: err.Error()})
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
	}
}

// Tool inputs. Fields accept a list or a comma-separated string; an empty
// fields value requests the upstream defaults.

type GetPaperInput struct {
	PaperID string    `json:"paper_id" jsonschema:"graph paper ID or prefixed external ID (e.g. DOI:10.1038/nature12373, ARXIV:2106.15928)"`
	Fields  FieldList `json:"fields,omitempty" jsonschema:"response fields, as a list or comma-separated string"`
}

type GetPapersBatchInput struct {
	PaperIDs []string  `json:"paper_ids" jsonschema:"paper identifiers, 1-500 per request, no duplicates"`
	Fields   FieldList `json:"fields,omitempty" jsonschema:"response fields for each paper"`
}

type SearchPapersInput struct {
	Query         string    `json:"query" jsonschema:"free-text search query"`
	Fields        FieldList `json:"fields,omitempty" jsonschema:"response fields for returned papers"`
	Limit         int       `json:"limit,omitempty" jsonschema:"page size, 1-100 (default 10)"`
	Offset        int       `json:"offset,omitempty" jsonschema:"pagination offset, >= 0"`
	Year          string    `json:"year,omitempty" jsonschema:"year filter: YYYY, YYYY-, -YYYY, or YYYY-YYYY"`
	Venue         string    `json:"venue,omitempty" jsonschema:"venue filter"`
	FieldsOfStudy FieldList `json:"fields_of_study,omitempty" jsonschema:"fields-of-study filter (e.g. Computer Science)"`
	OpenAccessPDF *bool     `json:"open_access_pdf,omitempty" jsonschema:"filter by presence of an open-access PDF"`
}

type SearchPapersBulkInput struct {
	Query         string    `json:"query" jsonschema:"free-text search query"`
	Fields        FieldList `json:"fields,omitempty" jsonschema:"response fields for returned papers"`
	Limit         int       `json:"limit,omitempty" jsonschema:"page size, 1-1000 (default 1000)"`
	Offset        int       `json:"offset,omitempty" jsonschema:"pagination offset; mutually exclusive with token"`
	Token         string    `json:"token,omitempty" jsonschema:"continuation token from the previous page"`
	Year          string    `json:"year,omitempty" jsonschema:"year filter: YYYY, YYYY-, -YYYY, or YYYY-YYYY"`
	Venue         string    `json:"venue,omitempty" jsonschema:"venue filter"`
	FieldsOfStudy FieldList `json:"fields_of_study,omitempty" jsonschema:"fields-of-study filter"`
	OpenAccessPDF *bool     `json:"open_access_pdf,omitempty" jsonschema:"filter by presence of an open-access PDF"`
	Sort          string    `json:"sort,omitempty" jsonschema:"sort key (e.g. citationCount:desc)"`
}

type MatchPaperInput struct {
	Title   string    `json:"title" jsonschema:"paper title to match"`
	Authors FieldList `json:"authors,omitempty" jsonschema:"author names, as a list or comma-separated string"`
	Year    int       `json:"year,omitempty" jsonschema:"publication year"`
	Venue   string    `json:"venue,omitempty" jsonschema:"venue, journal, or conference name"`
	Fields  FieldList `json:"fields,omitempty" jsonschema:"response fields for matched papers"`
	Limit   int       `json:"limit,omitempty" jsonschema:"max candidates, 1-20 (default 5)"`
}

type AutocompleteInput struct {
	Query string `json:"query" jsonschema:"partial title text to autocomplete"`
	Limit int    `json:"limit,omitempty" jsonschema:"number of suggestions, 1-100 (default 10)"`
}

type PaperRelationInput struct {
	PaperID string    `json:"paper_id" jsonschema:"graph paper ID or prefixed external ID"`
	Fields  FieldList `json:"fields,omitempty" jsonschema:"response fields for listed entries"`
	Limit   int       `json:"limit,omitempty" jsonschema:"page size, 1-1000 (default 100)"`
	Offset  int       `json:"offset,omitempty" jsonschema:"pagination offset, >= 0"`
}

type GetAuthorInput struct {
	AuthorID string    `json:"author_id" jsonschema:"graph author ID"`
	Fields   FieldList `json:"fields,omitempty" jsonschema:"response fields for the author"`
}

type GetAuthorsBatchInput struct {
	AuthorIDs []string  `json:"author_ids" jsonschema:"author IDs, 1-1000 per request, no duplicates"`
	Fields    FieldList `json:"fields,omitempty" jsonschema:"response fields for each author"`
}

type SearchAuthorsInput struct {
	Query  string    `json:"query" jsonschema:"author name or keywords"`
	Fields FieldList `json:"fields,omitempty" jsonschema:"response fields for returned authors"`
	Limit  int       `json:"limit,omitempty" jsonschema:"page size, 1-100 (default 10)"`
	Offset int       `json:"offset,omitempty" jsonschema:"pagination offset, >= 0"`
}

type AuthorPapersInput struct {
	AuthorID string    `json:"author_id" jsonschema:"graph author ID"`
	Fields   FieldList `json:"fields,omitempty" jsonschema:"response fields for listed papers"`
	Limit    int       `json:"limit,omitempty" jsonschema:"page size, 1-1000 (default 100)"`
	Offset   int       `json:"offset,omitempty" jsonschema:"pagination offset, >= 0"`
	Sort     string    `json:"sort,omitempty" jsonschema:"sort key (e.g. year)"`
}

type SnippetSearchInput struct {
	Query         string    `json:"query" jsonschema:"free-text query for snippet retrieval"`
	Fields        FieldList `json:"fields,omitempty" jsonschema:"response fields: snippet, score, paper"`
	Limit         int       `json:"limit,omitempty" jsonschema:"page size, 1-100 (default 10)"`
	Offset        int       `json:"offset,omitempty" jsonschema:"pagination offset, >= 0"`
	FieldsOfStudy FieldList `json:"fields_of_study,omitempty" jsonschema:"fields-of-study filter"`
	Venues        FieldList `json:"venues,omitempty" jsonschema:"venue filter"`
	PaperIDs      []string  `json:"paper_ids,omitempty" jsonschema:"restrict the search to these papers"`
}

// Tool outputs for operations without a natural page envelope.

type PaperBatchOutput struct {
	Papers []*s2.Paper `json:"papers"`
}

type AuthorBatchOutput struct {
	Authors []*s2.Author `json:"authors"`
}

type MatchOutput struct {
	Matches []s2.Paper `json:"matches"`
}

type AutocompleteOutput struct {
	Matches []s2.AutocompleteMatch `json:"matches"`
}

// AddTools registers the full catalog on srv, one tool per public
// operation.
func AddTools(srv *mcp.Server, client *s2.Client) {
	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_paper",
		Description: "Retrieve a single paper by graph ID or external ID (DOI, ArXiv, PMID, ...).",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in GetPaperInput) (*mcp.CallToolResult, s2.Paper, error) {
		paper, err := client.GetPaper(ctx, in.PaperID, in.Fields)
		if err != nil {
			return errorResult(err), s2.Paper{}, nil
		}
		return nil, *paper, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_papers_batch",
		Description: "Retrieve up to 500 papers in one request. Results are positional: null marks identifiers the upstream could not resolve.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in GetPapersBatchInput) (*mcp.CallToolResult, PaperBatchOutput, error) {
		papers, err := client.GetPapersBatch(ctx, in.PaperIDs, in.Fields)
		if err != nil {
			return errorResult(err), PaperBatchOutput{}, nil
		}
		return nil, PaperBatchOutput{Papers: papers}, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_papers",
		Description: "Search papers by free-text query with optional year, venue, field-of-study, and open-access filters.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in SearchPapersInput) (*mcp.CallToolResult, s2.PaperSearchPage, error) {
		page, err := client.SearchPapers(ctx, in.Query, s2.SearchOptions{
			Fields:        in.Fields,
			Limit:         in.Limit,
			Offset:        in.Offset,
			Year:          in.Year,
			Venue:         in.Venue,
			FieldsOfStudy: in.FieldsOfStudy,
			OpenAccessPDF: in.OpenAccessPDF,
		})
		if err != nil {
			return errorResult(err), s2.PaperSearchPage{}, nil
		}
		return nil, *page, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_papers_bulk",
		Description: "Bulk paper search returning up to 1000 results per page with an opaque continuation token for the next page.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in SearchPapersBulkInput) (*mcp.CallToolResult, s2.BulkSearchPage, error) {
		page, err := client.SearchPapersBulk(ctx, in.Query, s2.BulkSearchOptions{
			Fields:        in.Fields,
			Limit:         in.Limit,
			Offset:        in.Offset,
			Token:         in.Token,
			Year:          in.Year,
			Venue:         in.Venue,
			FieldsOfStudy: in.FieldsOfStudy,
			OpenAccessPDF: in.OpenAccessPDF,
			Sort:          in.Sort,
		})
		if err != nil {
			return errorResult(err), s2.BulkSearchPage{}, nil
		}
		return nil, *page, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_papers_match",
		Description: "Find likely matching records for a paper's metadata (title, optionally authors/year/venue), ranked by confidence.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in MatchPaperInput) (*mcp.CallToolResult, MatchOutput, error) {
		matches, err := client.MatchPaper(ctx, in.Title, s2.MatchOptions{
			Fields:  in.Fields,
			Authors: in.Authors,
			Year:    in.Year,
			Venue:   in.Venue,
			Limit:   in.Limit,
		})
		if err != nil {
			return errorResult(err), MatchOutput{}, nil
		}
		return nil, MatchOutput{Matches: matches}, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "paper_autocomplete",
		Description: "Typeahead title suggestions for a partial query.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in AutocompleteInput) (*mcp.CallToolResult, AutocompleteOutput, error) {
		matches, err := client.AutocompletePaper(ctx, in.Query, in.Limit)
		if err != nil {
			return errorResult(err), AutocompleteOutput{}, nil
		}
		return nil, AutocompleteOutput{Matches: matches}, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_paper_authors",
		Description: "List a paper's authors, one page per call.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in PaperRelationInput) (*mcp.CallToolResult, s2.AuthorPage, error) {
		page, err := client.GetPaperAuthors(ctx, in.PaperID, in.Fields, in.Limit, in.Offset)
		if err != nil {
			return errorResult(err), s2.AuthorPage{}, nil
		}
		return nil, *page, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_paper_citations",
		Description: "List papers citing the given paper, one page per call.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in PaperRelationInput) (*mcp.CallToolResult, s2.CitationPage, error) {
		page, err := client.GetPaperCitations(ctx, in.PaperID, in.Fields, in.Limit, in.Offset)
		if err != nil {
			return errorResult(err), s2.CitationPage{}, nil
		}
		return nil, *page, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_paper_references",
		Description: "List papers the given paper cites, one page per call.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in PaperRelationInput) (*mcp.CallToolResult, s2.CitationPage, error) {
		page, err := client.GetPaperReferences(ctx, in.PaperID, in.Fields, in.Limit, in.Offset)
		if err != nil {
			return errorResult(err), s2.CitationPage{}, nil
		}
		return nil, *page, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_author",
		Description: "Retrieve a single author by graph author ID.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in GetAuthorInput) (*mcp.CallToolResult, s2.Author, error) {
		author, err := client.GetAuthor(ctx, in.AuthorID, in.Fields)
		if err != nil {
			return errorResult(err), s2.Author{}, nil
		}
		return nil, *author, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_authors_batch",
		Description: "Retrieve up to 1000 authors in one request. Results are positional: null marks unresolved IDs.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in GetAuthorsBatchInput) (*mcp.CallToolResult, AuthorBatchOutput, error) {
		authors, err := client.GetAuthorsBatch(ctx, in.AuthorIDs, in.Fields)
		if err != nil {
			return errorResult(err), AuthorBatchOutput{}, nil
		}
		return nil, AuthorBatchOutput{Authors: authors}, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "search_authors",
		Description: "Search authors by name or keywords.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in SearchAuthorsInput) (*mcp.CallToolResult, s2.AuthorSearchPage, error) {
		page, err := client.SearchAuthors(ctx, in.Query, s2.AuthorSearchOptions{
			Fields: in.Fields,
			Limit:  in.Limit,
			Offset: in.Offset,
		})
		if err != nil {
			return errorResult(err), s2.AuthorSearchPage{}, nil
		}
		return nil, *page, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "get_author_papers",
		Description: "List an author's papers, one page per call.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in AuthorPapersInput) (*mcp.CallToolResult, s2.PaperListPage, error) {
		page, err := client.GetAuthorPapers(ctx, in.AuthorID, s2.AuthorPapersOptions{
			Fields: in.Fields,
			Limit:  in.Limit,
			Offset: in.Offset,
			Sort:   in.Sort,
		})
		if err != nil {
			return errorResult(err), s2.PaperListPage{}, nil
		}
		return nil, *page, nil
	})

	mcp.AddTool(srv, &mcp.Tool{
		Name:        "snippet_search",
		Description: "Search for relevant text passages in papers.",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in SnippetSearchInput) (*mcp.CallToolResult, s2.SnippetPage, error) {
		page, err := client.SearchSnippets(ctx, in.Query, s2.SnippetOptions{
			Fields:        in.Fields,
			Limit:         in.Limit,
			Offset:        in.Offset,
			FieldsOfStudy: in.FieldsOfStudy,
			Venues:        in.Venues,
			PaperIDs:      in.PaperIDs,
		})
		if err != nil {
			return errorResult(err), s2.SnippetPage{}, nil
		}
		return nil, *page, nil
	})
}

package s2

import (
	"context"
	"net/url"
	"strconv"
)

// batchRequest is the request body for the batch lookup endpoints.
type batchRequest struct {
	IDs []string `json:"ids"`
}

// SearchOptions configures an interactive paper search.
type SearchOptions struct {
	Fields        []string
	Limit         int
	Offset        int
	Year          string // YYYY, YYYY-, -YYYY, or YYYY-YYYY
	Venue         string
	FieldsOfStudy []string
	OpenAccessPDF *bool
}

// BulkSearchOptions configures a bulk paper search. Continuation is
// cursor-based: pass the Token from the previous page to fetch the next
// one. Token and Offset are mutually exclusive.
type BulkSearchOptions struct {
	Fields        []string
	Limit         int
	Offset        int
	Token         string
	Year          string
	Venue         string
	FieldsOfStudy []string
	OpenAccessPDF *bool
	Sort          string // e.g. "citationCount:desc"
}

// MatchOptions configures a metadata-based paper match.
type MatchOptions struct {
	Fields  []string
	Authors []string
	Year    int
	Venue   string
	Limit   int
}

// GetPaper fetches a single paper by graph or external identifier.
func (c *Client) GetPaper(ctx context.Context, id string, fields []string) (*Paper, error) {
	ref, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityPaper, fields)
	if err != nil {
		return nil, err
	}

	data, err := c.get(ctx, "/paper/"+url.PathEscape(ref.String()), newParams(fs))
	if err != nil {
		return nil, err
	}

	var paper Paper
	if err := decode(data, &paper); err != nil {
		return nil, err
	}
	return &paper, nil
}

// GetPapersBatch fetches up to PaperBatchLimit papers in one request. The
// result has one entry per input identifier, in input order, with nil at
// positions the upstream could not resolve.
func (c *Client) GetPapersBatch(ctx context.Context, ids []string, fields []string) ([]*Paper, error) {
	refs, err := NormalizeBatch(ids, PaperBatchLimit)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityPaper, fields)
	if err != nil {
		return nil, err
	}

	data, err := c.post(ctx, "/paper/batch", newParams(fs), batchRequest{IDs: refStrings(refs)})
	if err != nil {
		return nil, err
	}
	return decodePaperBatch(data, refs)
}

// SearchPapers runs a relevance-ranked paper search.
func (c *Client) SearchPapers(ctx context.Context, query string, opt SearchOptions) (*PaperSearchPage, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityPaper, opt.Fields)
	if err != nil {
		return nil, err
	}

	v := newParams(fs)
	v.Set("query", q)
	if err := setLimit(v, opt.Limit, SearchLimits); err != nil {
		return nil, err
	}
	if err := setOffset(v, opt.Offset); err != nil {
		return nil, err
	}
	if err := setYear(v, opt.Year); err != nil {
		return nil, err
	}
	setSearchFilters(v, opt.Venue, opt.FieldsOfStudy, opt.OpenAccessPDF)

	data, err := c.get(ctx, "/paper/search", v)
	if err != nil {
		return nil, err
	}

	var page PaperSearchPage
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// SearchPapersBulk runs one page of a bulk paper search. The returned
// Token, when non-empty, continues the scan on the next call.
func (c *Client) SearchPapersBulk(ctx context.Context, query string, opt BulkSearchOptions) (*BulkSearchPage, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityPaper, opt.Fields)
	if err != nil {
		return nil, err
	}

	v := newParams(fs)
	v.Set("query", q)
	if err := setLimit(v, opt.Limit, BulkSearchLimits); err != nil {
		return nil, err
	}
	if err := setPagination(v, opt.Offset, opt.Token); err != nil {
		return nil, err
	}
	if err := setYear(v, opt.Year); err != nil {
		return nil, err
	}
	setSearchFilters(v, opt.Venue, opt.FieldsOfStudy, opt.OpenAccessPDF)
	if opt.Sort != "" {
		v.Set("sort", opt.Sort)
	}

	data, err := c.get(ctx, "/paper/search/bulk", v)
	if err != nil {
		return nil, err
	}

	var page BulkSearchPage
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MatchPaper finds the closest records for a paper's metadata, ranked by
// match confidence.
func (c *Client) MatchPaper(ctx context.Context, title string, opt MatchOptions) ([]Paper, error) {
	t, err := cleanQuery(title)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityPaper, opt.Fields)
	if err != nil {
		return nil, err
	}
	limit, err := boundedLimit(opt.Limit, MatchLimits)
	if err != nil {
		return nil, err
	}
	if opt.Year < 0 {
		return nil, &OutOfRangeError{Name: "year", Value: opt.Year}
	}

	body := map[string]any{
		"title": t,
		"limit": limit,
	}
	if authors := joinList(opt.Authors); authors != "" {
		body["authors"] = authors
	}
	if opt.Year > 0 {
		body["year"] = opt.Year
	}
	if opt.Venue != "" {
		body["venue"] = opt.Venue
	}
	if len(fs) > 0 {
		body["fields"] = fs.String()
	}

	data, err := c.post(ctx, "/paper/search/match", nil, body)
	if err != nil {
		return nil, err
	}

	var page struct {
		Data []Paper `json:"data"`
	}
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return page.Data, nil
}

// AutocompletePaper returns typeahead title suggestions for a partial
// query.
func (c *Client) AutocompletePaper(ctx context.Context, query string, limit int) ([]AutocompleteMatch, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}

	v := url.Values{}
	v.Set("query", q)
	if err := setLimit(v, limit, AutocompleteLimits); err != nil {
		return nil, err
	}

	data, err := c.get(ctx, "/paper/autocomplete", v)
	if err != nil {
		return nil, err
	}

	var page struct {
		Matches []AutocompleteMatch `json:"matches"`
	}
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return page.Matches, nil
}

// GetPaperAuthors lists one page of a paper's authors.
func (c *Client) GetPaperAuthors(ctx context.Context, id string, fields []string, limit, offset int) (*AuthorPage, error) {
	ref, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityAuthor, fields)
	if err != nil {
		return nil, err
	}

	v := newParams(fs)
	if err := setLimit(v, limit, RelationLimits); err != nil {
		return nil, err
	}
	if err := setOffset(v, offset); err != nil {
		return nil, err
	}

	data, err := c.get(ctx, "/paper/"+url.PathEscape(ref.String())+"/authors", v)
	if err != nil {
		return nil, err
	}

	var page AuthorPage
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetPaperCitations lists one page of papers citing the given paper.
func (c *Client) GetPaperCitations(ctx context.Context, id string, fields []string, limit, offset int) (*CitationPage, error) {
	return c.relationPage(ctx, id, "citations", fields, limit, offset)
}

// GetPaperReferences lists one page of papers the given paper cites.
func (c *Client) GetPaperReferences(ctx context.Context, id string, fields []string, limit, offset int) (*CitationPage, error) {
	return c.relationPage(ctx, id, "references", fields, limit, offset)
}

func (c *Client) relationPage(ctx context.Context, id, relation string, fields []string, limit, offset int) (*CitationPage, error) {
	ref, err := ParseID(id)
	if err != nil {
		return nil, err
	}
	fs, err := SelectCitationFields(fields)
	if err != nil {
		return nil, err
	}

	v := newParams(fs)
	if err := setLimit(v, limit, RelationLimits); err != nil {
		return nil, err
	}
	if err := setOffset(v, offset); err != nil {
		return nil, err
	}

	data, err := c.get(ctx, "/paper/"+url.PathEscape(ref.String())+"/"+relation, v)
	if err != nil {
		return nil, err
	}

	var page CitationPage
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// setSearchFilters applies the optional search filters shared by the
// interactive and bulk search endpoints.
func setSearchFilters(v url.Values, venue string, fieldsOfStudy []string, openAccess *bool) {
	if venue != "" {
		v.Set("venue", venue)
	}
	if fos := joinList(fieldsOfStudy); fos != "" {
		v.Set("fieldsOfStudy", fos)
	}
	if openAccess != nil {
		v.Set("openAccessPdf", strconv.FormatBool(*openAccess))
	}
}

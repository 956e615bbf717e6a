package s2

import (
	"context"
	"net/url"
)

// AuthorSearchOptions configures an author search.
type AuthorSearchOptions struct {
	Fields []string
	Limit  int
	Offset int
}

// AuthorPapersOptions configures an author's paper listing.
type AuthorPapersOptions struct {
	Fields []string
	Limit  int
	Offset int
	Sort   string
}

// GetAuthor fetches a single author by graph ID.
func (c *Client) GetAuthor(ctx context.Context, id string, fields []string) (*Author, error) {
	ref, err := ParseAuthorID(id)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityAuthor, fields)
	if err != nil {
		return nil, err
	}

	data, err := c.get(ctx, "/author/"+url.PathEscape(ref.String()), newParams(fs))
	if err != nil {
		return nil, err
	}

	var author Author
	if err := decode(data, &author); err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAuthorsBatch fetches up to AuthorBatchLimit authors in one request,
// preserving input order with nil at unresolved positions.
func (c *Client) GetAuthorsBatch(ctx context.Context, ids []string, fields []string) ([]*Author, error) {
	refs, err := NormalizeAuthorBatch(ids, AuthorBatchLimit)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityAuthor, fields)
	if err != nil {
		return nil, err
	}

	data, err := c.post(ctx, "/author/batch", newParams(fs), batchRequest{IDs: refStrings(refs)})
	if err != nil {
		return nil, err
	}
	return decodeAuthorBatch(data, refs)
}

// SearchAuthors searches authors by name or keywords.
func (c *Client) SearchAuthors(ctx context.Context, query string, opt AuthorSearchOptions) (*AuthorSearchPage, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntityAuthor, opt.Fields)
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

	data, err := c.get(ctx, "/author/search", v)
	if err != nil {
		return nil, err
	}

	var page AuthorSearchPage
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetAuthorPapers lists one page of an author's papers.
func (c *Client) GetAuthorPapers(ctx context.Context, id string, opt AuthorPapersOptions) (*PaperListPage, error) {
	ref, err := ParseAuthorID(id)
	if err != nil {
		return nil, err
	}
	fs, err := SelectAuthorPaperFields(opt.Fields)
	if err != nil {
		return nil, err
	}

	v := newParams(fs)
	if err := setLimit(v, opt.Limit, RelationLimits); err != nil {
		return nil, err
	}
	if err := setOffset(v, opt.Offset); err != nil {
		return nil, err
	}
	if opt.Sort != "" {
		v.Set("sort", opt.Sort)
	}

	data, err := c.get(ctx, "/author/"+url.PathEscape(ref.String())+"/papers", v)
	if err != nil {
		return nil, err
	}

	var page PaperListPage
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

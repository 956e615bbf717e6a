package s2

import "context"

// SnippetOptions configures a snippet search.
type SnippetOptions struct {
	Fields        []string
	Limit         int
	Offset        int
	FieldsOfStudy []string
	Venues        []string
	PaperIDs      []string // restrict the search to these papers
}

// SearchSnippets retrieves relevant text passages from papers for a
// free-text query.
func (c *Client) SearchSnippets(ctx context.Context, query string, opt SnippetOptions) (*SnippetPage, error) {
	q, err := cleanQuery(query)
	if err != nil {
		return nil, err
	}
	fs, err := SelectFields(EntitySnippet, opt.Fields)
	if err != nil {
		return nil, err
	}

	v := newParams(fs)
	v.Set("query", q)
	if err := setLimit(v, opt.Limit, SnippetLimits); err != nil {
		return nil, err
	}
	if err := setOffset(v, opt.Offset); err != nil {
		return nil, err
	}
	if fos := joinList(opt.FieldsOfStudy); fos != "" {
		v.Set("fieldsOfStudy", fos)
	}
	if venues := joinList(opt.Venues); venues != "" {
		v.Set("venues", venues)
	}
	if len(opt.PaperIDs) > 0 {
		refs, err := NormalizeBatch(opt.PaperIDs, PaperBatchLimit)
		if err != nil {
			return nil, err
		}
		v.Set("paperIds", joinList(refStrings(refs)))
	}

	data, err := c.get(ctx, "/snippet/search", v)
	if err != nil {
		return nil, err
	}

	var page SnippetPage
	if err := decode(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

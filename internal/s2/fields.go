package s2

import "strings"

// Field allow-lists per entity, from the Graph API documentation. Dotted
// subfield requests (e.g. "authors.name") are validated on their head
// segment.
var paperFields = map[string]bool{
	"paperId":                  true,
	"corpusId":                 true,
	"externalIds":              true,
	"url":                      true,
	"title":                    true,
	"abstract":                 true,
	"venue":                    true,
	"publicationVenue":         true,
	"year":                     true,
	"referenceCount":           true,
	"citationCount":            true,
	"influentialCitationCount": true,
	"isOpenAccess":             true,
	"openAccessPdf":            true,
	"fieldsOfStudy":            true,
	"s2FieldsOfStudy":          true,
	"publicationTypes":         true,
	"publicationDate":          true,
	"journal":                  true,
	"citationStyles":           true,
	"authors":                  true,
	"tldr":                     true,
	"embedding":                true,
	"citations":                true,
	"references":               true,
}

var authorFields = map[string]bool{
	"authorId":      true,
	"externalIds":   true,
	"url":           true,
	"name":          true,
	"affiliations":  true,
	"homepage":      true,
	"paperCount":    true,
	"citationCount": true,
	"hIndex":        true,
	"papers":        true,
}

var snippetFields = map[string]bool{
	"snippet": true,
	"score":   true,
	"paper":   true,
}

// citationEdgeFields are the extra heads valid on citations/references
// listings, alongside plain paper fields.
var citationEdgeFields = map[string]bool{
	"contexts":      true,
	"intents":       true,
	"isInfluential": true,
	"citingPaper":   true,
	"citedPaper":    true,
}

func allowList(entity Entity) map[string]bool {
	switch entity {
	case EntityAuthor:
		return authorFields
	case EntitySnippet:
		return snippetFields
	default:
		return paperFields
	}
}

// FieldSet is an ordered, duplicate-free set of validated response field
// names. An empty FieldSet means "use the upstream defaults".
type FieldSet []string

// String renders the set as the comma-joined fields query parameter.
func (fs FieldSet) String() string {
	return strings.Join(fs, ",")
}

// SelectFields validates requested against entity's allow-list. Entries
// are whitespace-trimmed; duplicates collapse to the first occurrence.
// The first empty or unknown field fails the whole selection.
func SelectFields(entity Entity, requested []string) (FieldSet, error) {
	return selectFrom(allowList(entity), nil, entity, requested)
}

// SelectCitationFields validates fields for the citations and references
// listings, which accept paper fields plus the citation edge fields.
func SelectCitationFields(requested []string) (FieldSet, error) {
	return selectFrom(paperFields, citationEdgeFields, EntityPaper, requested)
}

// authorPapersExtra allows the "papers" wrapper head on the author paper
// listing alongside plain paper fields.
var authorPapersExtra = map[string]bool{"papers": true}

// SelectAuthorPaperFields validates fields for an author's paper listing.
func SelectAuthorPaperFields(requested []string) (FieldSet, error) {
	return selectFrom(paperFields, authorPapersExtra, EntityPaper, requested)
}

func selectFrom(allow, extra map[string]bool, entity Entity, requested []string) (FieldSet, error) {
	var fs FieldSet
	seen := make(map[string]bool, len(requested))
	for _, raw := range requested {
		field := strings.TrimSpace(raw)
		if field == "" {
			return nil, &InvalidFieldError{Field: "", Entity: entity}
		}
		head := field
		if i := strings.IndexByte(field, '.'); i >= 0 {
			head = field[:i]
		}
		if !allow[head] && !extra[head] {
			return nil, &InvalidFieldError{Field: field, Entity: entity}
		}
		if seen[field] {
			continue
		}
		seen[field] = true
		fs = append(fs, field)
	}
	return fs, nil
}

// SplitFieldArg splits a comma-separated fields argument into its parts.
// Callers that accept "title,authors" and ["title","authors"] uniformly
// pass the split form to SelectFields.
func SplitFieldArg(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}

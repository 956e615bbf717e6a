// Package s2 provides a validating, rate-limited client for the
// Semantic Scholar Academic Graph API.
package s2

// Entity identifies which field allow-list and identifier grammar apply.
type Entity string

// Entity kinds known to the Graph API.
const (
	EntityPaper   Entity = "paper"
	EntityAuthor  Entity = "author"
	EntitySnippet Entity = "snippet"
)

// Paper represents a paper record from the Graph API.
type Paper struct {
	PaperID             string         `json:"paperId"`
	CorpusID            int64          `json:"corpusId,omitempty"`
	ExternalIDs         map[string]any `json:"externalIds,omitempty"`
	URL                 string         `json:"url,omitempty"`
	Title               string         `json:"title,omitempty"`
	Abstract            string         `json:"abstract,omitempty"`
	Venue               string         `json:"venue,omitempty"`
	PublicationVenue    map[string]any `json:"publicationVenue,omitempty"`
	Year                int            `json:"year,omitempty"`
	ReferenceCount      int            `json:"referenceCount,omitempty"`
	CitationCount       int            `json:"citationCount,omitempty"`
	InfluentialCitCount int            `json:"influentialCitationCount,omitempty"`
	IsOpenAccess        bool           `json:"isOpenAccess,omitempty"`
	OpenAccessPDF       *OpenAccessPDF `json:"openAccessPdf,omitempty"`
	FieldsOfStudy       []string       `json:"fieldsOfStudy,omitempty"`
	S2FieldsOfStudy     []FieldOfStudy `json:"s2FieldsOfStudy,omitempty"`
	PublicationTypes    []string       `json:"publicationTypes,omitempty"`
	PublicationDate     string         `json:"publicationDate,omitempty"` // YYYY-MM-DD
	Journal             *Journal       `json:"journal,omitempty"`
	CitationStyles      map[string]any `json:"citationStyles,omitempty"`
	Authors             []Author       `json:"authors,omitempty"`
	TLDR                *TLDR          `json:"tldr,omitempty"`

	// MatchScore is only present on paper-match results.
	MatchScore float64 `json:"matchScore,omitempty"`
}

// OpenAccessPDF describes an open-access PDF location.
type OpenAccessPDF struct {
	URL    string `json:"url,omitempty"`
	Status string `json:"status,omitempty"`
}

// FieldOfStudy is a classified field-of-study entry.
type FieldOfStudy struct {
	Category string `json:"category"`
	Source   string `json:"source,omitempty"`
}

// Journal holds journal publication details.
type Journal struct {
	Name   string `json:"name,omitempty"`
	Volume string `json:"volume,omitempty"`
	Pages  string `json:"pages,omitempty"`
}

// TLDR is a machine-generated one-sentence summary.
type TLDR struct {
	Model string `json:"model,omitempty"`
	Text  string `json:"text,omitempty"`
}

// Author represents an author record from the Graph API.
type Author struct {
	AuthorID      string         `json:"authorId"`
	ExternalIDs   map[string]any `json:"externalIds,omitempty"`
	URL           string         `json:"url,omitempty"`
	Name          string         `json:"name,omitempty"`
	Affiliations  []string       `json:"affiliations,omitempty"`
	Homepage      string         `json:"homepage,omitempty"`
	PaperCount    int            `json:"paperCount,omitempty"`
	CitationCount int            `json:"citationCount,omitempty"`
	HIndex        int            `json:"hIndex,omitempty"`
	Papers        []Paper        `json:"papers,omitempty"`
}

// Citation is one edge in a citations or references listing. CitingPaper
// is set on the citations endpoint, CitedPaper on references.
type Citation struct {
	Contexts      []string `json:"contexts,omitempty"`
	Intents       []string `json:"intents,omitempty"`
	IsInfluential bool     `json:"isInfluential,omitempty"`
	CitingPaper   *Paper   `json:"citingPaper,omitempty"`
	CitedPaper    *Paper   `json:"citedPaper,omitempty"`
}

// SnippetMatch is one result from the snippet search endpoint.
type SnippetMatch struct {
	Score   float64      `json:"score,omitempty"`
	Snippet SnippetBody  `json:"snippet"`
	Paper   SnippetPaper `json:"paper"`
}

// SnippetBody is the matched text passage.
type SnippetBody struct {
	Text        string `json:"text"`
	SnippetKind string `json:"snippetKind,omitempty"`
	Section     string `json:"section,omitempty"`
}

// SnippetPaper is the paper summary attached to a snippet match.
type SnippetPaper struct {
	CorpusID string   `json:"corpusId,omitempty"`
	Title    string   `json:"title,omitempty"`
	Authors  []string `json:"authors,omitempty"`
}

// AutocompleteMatch is one title suggestion from the autocomplete endpoint.
type AutocompleteMatch struct {
	ID              string `json:"id"`
	Title           string `json:"title,omitempty"`
	AuthorsYear     string `json:"authorsYear,omitempty"`
	CitationCount   int    `json:"citationCount,omitempty"`
	PublicationType string `json:"publicationType,omitempty"`
}

// PaperSearchPage is one page of relevance-ranked paper search results.
// Next carries the offset of the following page; it is absent on the last
// page.
type PaperSearchPage struct {
	Total  int     `json:"total"`
	Offset int     `json:"offset"`
	Next   *int    `json:"next,omitempty"`
	Data   []Paper `json:"data"`
}

// BulkSearchPage is one page of bulk search results. Token is the opaque
// continuation cursor for the next page; empty when exhausted.
type BulkSearchPage struct {
	Total int     `json:"total"`
	Token string  `json:"token,omitempty"`
	Data  []Paper `json:"data"`
}

// AuthorSearchPage is one page of author search results.
type AuthorSearchPage struct {
	Total  int      `json:"total"`
	Offset int      `json:"offset"`
	Next   *int     `json:"next,omitempty"`
	Data   []Author `json:"data"`
}

// AuthorPage is one page of a paper's author listing.
type AuthorPage struct {
	Offset int      `json:"offset"`
	Next   *int     `json:"next,omitempty"`
	Data   []Author `json:"data"`
}

// CitationPage is one page of a citations or references listing.
type CitationPage struct {
	Offset int        `json:"offset"`
	Next   *int       `json:"next,omitempty"`
	Data   []Citation `json:"data"`
}

// PaperListPage is one page of an author's paper listing.
type PaperListPage struct {
	Offset int     `json:"offset"`
	Next   *int    `json:"next,omitempty"`
	Data   []Paper `json:"data"`
}

// SnippetPage holds snippet search results.
type SnippetPage struct {
	Data []SnippetMatch `json:"data"`
}

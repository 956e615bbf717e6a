package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/scholargraph/internal/s2"
)

var paperCmd = &cobra.Command{
	Use:   "paper",
	Short: "Paper lookup, search, and relation listings",
	Long: `Query papers in the Semantic Scholar Academic Graph.

Supported paper ID formats:
  DOI:10.1038/nature12373      DOI
  ARXIV:2106.15928             arXiv ID
  PMID:19872477                PubMed ID
  CorpusId:215416146           corpus ID
  649def34f8be52c8b66281af...  raw graph ID`,
}

func init() {
	rootCmd.AddCommand(paperCmd)
}

var paperGetFields []string

var paperGetCmd = &cobra.Command{
	Use:   "get <paper-id>",
	Short: "Retrieve a single paper",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		paper, err := newClient().GetPaper(context.Background(), args[0], paperGetFields)
		if err != nil {
			os.Exit(outputError(err))
		}
		if humanOutput {
			fmt.Print(formatPaperHuman(*paper, 0))
			return
		}
		emit(paper, nil)
	},
}

func init() {
	paperGetCmd.Flags().StringSliceVarP(&paperGetFields, "fields", "f", nil, "Response fields (default: upstream defaults)")
	paperCmd.AddCommand(paperGetCmd)
}

var paperBatchFields []string

var paperBatchCmd = &cobra.Command{
	Use:   "batch <paper-id>...",
	Short: "Retrieve up to 500 papers in one request",
	Long: `Retrieve multiple papers in a single request.

Results are positional: a null entry marks an identifier the upstream
could not resolve. Duplicate identifiers are rejected.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		papers, err := newClient().GetPapersBatch(context.Background(), args, paperBatchFields)
		emit(papers, err)
	},
}

func init() {
	paperBatchCmd.Flags().StringSliceVarP(&paperBatchFields, "fields", "f", nil, "Response fields per paper")
	paperCmd.AddCommand(paperBatchCmd)
}

var (
	paperSearchFields     []string
	paperSearchLimit      int
	paperSearchOffset     int
	paperSearchYear       string
	paperSearchVenue      string
	paperSearchFOS        []string
	paperSearchOpenAccess bool
)

var paperSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search papers by free-text query",
	Long: `Search for papers by keyword relevance.

Examples:
  sg paper search "phylogenetic inference"
  sg paper search "SARS-CoV-2" --limit 20 --year 2020-2024
  sg paper search "deep learning" --venue Nature --open-access --human`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		opt := s2.SearchOptions{
			Fields:        paperSearchFields,
			Limit:         paperSearchLimit,
			Offset:        paperSearchOffset,
			Year:          paperSearchYear,
			Venue:         paperSearchVenue,
			FieldsOfStudy: paperSearchFOS,
		}
		if cmd.Flags().Changed("open-access") {
			opt.OpenAccessPDF = &paperSearchOpenAccess
		}
		page, err := newClient().SearchPapers(context.Background(), args[0], opt)
		if err != nil {
			os.Exit(outputError(err))
		}
		if humanOutput {
			fmt.Printf("%d results (showing %d from offset %d)\n\n", page.Total, len(page.Data), page.Offset)
			for i, p := range page.Data {
				fmt.Print(formatPaperHuman(p, i+1))
			}
			return
		}
		emit(page, nil)
	},
}

func init() {
	paperSearchCmd.Flags().StringSliceVarP(&paperSearchFields, "fields", "f", nil, "Response fields per paper")
	paperSearchCmd.Flags().IntVar(&paperSearchLimit, "limit", 0, "Page size, 1-100 (default 10)")
	paperSearchCmd.Flags().IntVar(&paperSearchOffset, "offset", 0, "Pagination offset")
	paperSearchCmd.Flags().StringVar(&paperSearchYear, "year", "", "Year filter (YYYY, YYYY-, -YYYY, YYYY-YYYY)")
	paperSearchCmd.Flags().StringVar(&paperSearchVenue, "venue", "", "Filter by venue")
	paperSearchCmd.Flags().StringSliceVar(&paperSearchFOS, "fields-of-study", nil, "Fields-of-study filter")
	paperSearchCmd.Flags().BoolVar(&paperSearchOpenAccess, "open-access", false, "Require (or with =false, exclude) an open-access PDF")
	paperCmd.AddCommand(paperSearchCmd)
}

var (
	paperBulkFields []string
	paperBulkLimit  int
	paperBulkToken  string
	paperBulkYear   string
	paperBulkVenue  string
	paperBulkSort   string
)

var paperBulkCmd = &cobra.Command{
	Use:   "bulk <query>",
	Short: "Bulk paper search with cursor continuation",
	Long: `Bulk search returning up to 1000 results per page.

Each page includes a continuation token; pass it back with --token to
fetch the next page. The scan ends when no token is returned.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := newClient().SearchPapersBulk(context.Background(), args[0], s2.BulkSearchOptions{
			Fields: paperBulkFields,
			Limit:  paperBulkLimit,
			Token:  paperBulkToken,
			Year:   paperBulkYear,
			Venue:  paperBulkVenue,
			Sort:   paperBulkSort,
		})
		emit(page, err)
	},
}

func init() {
	paperBulkCmd.Flags().StringSliceVarP(&paperBulkFields, "fields", "f", nil, "Response fields per paper")
	paperBulkCmd.Flags().IntVar(&paperBulkLimit, "limit", 0, "Page size, 1-1000 (default 1000)")
	paperBulkCmd.Flags().StringVar(&paperBulkToken, "token", "", "Continuation token from the previous page")
	paperBulkCmd.Flags().StringVar(&paperBulkYear, "year", "", "Year filter (YYYY, YYYY-, -YYYY, YYYY-YYYY)")
	paperBulkCmd.Flags().StringVar(&paperBulkVenue, "venue", "", "Filter by venue")
	paperBulkCmd.Flags().StringVar(&paperBulkSort, "sort", "", "Sort key (e.g. citationCount:desc)")
	paperCmd.AddCommand(paperBulkCmd)
}

var (
	paperMatchFields  []string
	paperMatchAuthors []string
	paperMatchYear    int
	paperMatchVenue   string
	paperMatchLimit   int
)

var paperMatchCmd = &cobra.Command{
	Use:   "match <title>",
	Short: "Find likely matches for a paper's metadata",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		matches, err := newClient().MatchPaper(context.Background(), args[0], s2.MatchOptions{
			Fields:  paperMatchFields,
			Authors: paperMatchAuthors,
			Year:    paperMatchYear,
			Venue:   paperMatchVenue,
			Limit:   paperMatchLimit,
		})
		emit(matches, err)
	},
}

func init() {
	paperMatchCmd.Flags().StringSliceVarP(&paperMatchFields, "fields", "f", nil, "Response fields per match")
	paperMatchCmd.Flags().StringSliceVar(&paperMatchAuthors, "authors", nil, "Author names")
	paperMatchCmd.Flags().IntVar(&paperMatchYear, "year", 0, "Publication year")
	paperMatchCmd.Flags().StringVar(&paperMatchVenue, "venue", "", "Venue, journal, or conference name")
	paperMatchCmd.Flags().IntVar(&paperMatchLimit, "limit", 0, "Max candidates, 1-20 (default 5)")
	paperCmd.AddCommand(paperMatchCmd)
}

var paperAutocompleteLimit int

var paperAutocompleteCmd = &cobra.Command{
	Use:   "autocomplete <query>",
	Short: "Typeahead title suggestions",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		matches, err := newClient().AutocompletePaper(context.Background(), args[0], paperAutocompleteLimit)
		emit(matches, err)
	},
}

func init() {
	paperAutocompleteCmd.Flags().IntVar(&paperAutocompleteLimit, "limit", 0, "Number of suggestions, 1-100 (default 10)")
	paperCmd.AddCommand(paperAutocompleteCmd)
}

var (
	paperAuthorsFields []string
	paperAuthorsLimit  int
	paperAuthorsOffset int
)

var paperAuthorsCmd = &cobra.Command{
	Use:   "authors <paper-id>",
	Short: "List a paper's authors",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := newClient().GetPaperAuthors(context.Background(), args[0], paperAuthorsFields, paperAuthorsLimit, paperAuthorsOffset)
		emit(page, err)
	},
}

func init() {
	paperAuthorsCmd.Flags().StringSliceVarP(&paperAuthorsFields, "fields", "f", nil, "Response fields per author")
	paperAuthorsCmd.Flags().IntVar(&paperAuthorsLimit, "limit", 0, "Page size, 1-1000 (default 100)")
	paperAuthorsCmd.Flags().IntVar(&paperAuthorsOffset, "offset", 0, "Pagination offset")
	paperCmd.AddCommand(paperAuthorsCmd)
}

var (
	paperCitationsFields []string
	paperCitationsLimit  int
	paperCitationsOffset int
)

var paperCitationsCmd = &cobra.Command{
	Use:   "citations <paper-id>",
	Short: "List papers citing a paper",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := newClient().GetPaperCitations(context.Background(), args[0], paperCitationsFields, paperCitationsLimit, paperCitationsOffset)
		emit(page, err)
	},
}

func init() {
	paperCitationsCmd.Flags().StringSliceVarP(&paperCitationsFields, "fields", "f", nil, "Response fields per citing paper")
	paperCitationsCmd.Flags().IntVar(&paperCitationsLimit, "limit", 0, "Page size, 1-1000 (default 100)")
	paperCitationsCmd.Flags().IntVar(&paperCitationsOffset, "offset", 0, "Pagination offset")
	paperCmd.AddCommand(paperCitationsCmd)
}

var (
	paperReferencesFields []string
	paperReferencesLimit  int
	paperReferencesOffset int
)

var paperReferencesCmd = &cobra.Command{
	Use:   "references <paper-id>",
	Short: "List papers a paper cites",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := newClient().GetPaperReferences(context.Background(), args[0], paperReferencesFields, paperReferencesLimit, paperReferencesOffset)
		emit(page, err)
	},
}

func init() {
	paperReferencesCmd.Flags().StringSliceVarP(&paperReferencesFields, "fields", "f", nil, "Response fields per cited paper")
	paperReferencesCmd.Flags().IntVar(&paperReferencesLimit, "limit", 0, "Page size, 1-1000 (default 100)")
	paperReferencesCmd.Flags().IntVar(&paperReferencesOffset, "offset", 0, "Pagination offset")
	paperCmd.AddCommand(paperReferencesCmd)
}

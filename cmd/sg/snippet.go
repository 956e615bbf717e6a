package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matsen/scholargraph/internal/s2"
)

var snippetCmd = &cobra.Command{
	Use:   "snippet",
	Short: "Text snippet search across papers",
}

func init() {
	rootCmd.AddCommand(snippetCmd)
}

var (
	snippetSearchFields []string
	snippetSearchLimit  int
	snippetSearchOffset int
	snippetSearchFOS    []string
	snippetSearchVenues []string
	snippetSearchPapers []string
)

var snippetSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for relevant text passages in papers",
	Long: `Search for text snippets matching a query.

Examples:
  sg snippet search "codon usage bias"
  sg snippet search "attention mechanism" --limit 5 --human
  sg snippet search "spike protein" --papers DOI:10.1038/s41586-020-2012-7`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := newClient().SearchSnippets(context.Background(), args[0], s2.SnippetOptions{
			Fields:        snippetSearchFields,
			Limit:         snippetSearchLimit,
			Offset:        snippetSearchOffset,
			FieldsOfStudy: snippetSearchFOS,
			Venues:        snippetSearchVenues,
			PaperIDs:      snippetSearchPapers,
		})
		if err != nil {
			os.Exit(outputError(err))
		}
		if humanOutput {
			for i, m := range page.Data {
				fmt.Print(formatSnippetHuman(m, i+1))
			}
			return
		}
		emit(page, nil)
	},
}

func init() {
	snippetSearchCmd.Flags().StringSliceVarP(&snippetSearchFields, "fields", "f", nil, "Response fields: snippet, score, paper")
	snippetSearchCmd.Flags().IntVar(&snippetSearchLimit, "limit", 0, "Page size, 1-100 (default 10)")
	snippetSearchCmd.Flags().IntVar(&snippetSearchOffset, "offset", 0, "Pagination offset")
	snippetSearchCmd.Flags().StringSliceVar(&snippetSearchFOS, "fields-of-study", nil, "Fields-of-study filter")
	snippetSearchCmd.Flags().StringSliceVar(&snippetSearchVenues, "venues", nil, "Venue filter")
	snippetSearchCmd.Flags().StringSliceVar(&snippetSearchPapers, "papers", nil, "Restrict the search to these paper IDs")
	snippetCmd.AddCommand(snippetSearchCmd)
}

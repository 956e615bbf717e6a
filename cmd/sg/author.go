package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matsen/scholargraph/internal/s2"
)

var authorCmd = &cobra.Command{
	Use:   "author",
	Short: "Author lookup, search, and paper listings",
}

func init() {
	rootCmd.AddCommand(authorCmd)
}

var authorGetFields []string

var authorGetCmd = &cobra.Command{
	Use:   "get <author-id>",
	Short: "Retrieve a single author",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		author, err := newClient().GetAuthor(context.Background(), args[0], authorGetFields)
		emit(author, err)
	},
}

func init() {
	authorGetCmd.Flags().StringSliceVarP(&authorGetFields, "fields", "f", nil, "Response fields (default: upstream defaults)")
	authorCmd.AddCommand(authorGetCmd)
}

var authorBatchFields []string

var authorBatchCmd = &cobra.Command{
	Use:   "batch <author-id>...",
	Short: "Retrieve up to 1000 authors in one request",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		authors, err := newClient().GetAuthorsBatch(context.Background(), args, authorBatchFields)
		emit(authors, err)
	},
}

func init() {
	authorBatchCmd.Flags().StringSliceVarP(&authorBatchFields, "fields", "f", nil, "Response fields per author")
	authorCmd.AddCommand(authorBatchCmd)
}

var (
	authorSearchFields []string
	authorSearchLimit  int
	authorSearchOffset int
)

var authorSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search authors by name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := newClient().SearchAuthors(context.Background(), args[0], s2.AuthorSearchOptions{
			Fields: authorSearchFields,
			Limit:  authorSearchLimit,
			Offset: authorSearchOffset,
		})
		emit(page, err)
	},
}

func init() {
	authorSearchCmd.Flags().StringSliceVarP(&authorSearchFields, "fields", "f", nil, "Response fields per author")
	authorSearchCmd.Flags().IntVar(&authorSearchLimit, "limit", 0, "Page size, 1-100 (default 10)")
	authorSearchCmd.Flags().IntVar(&authorSearchOffset, "offset", 0, "Pagination offset")
	authorCmd.AddCommand(authorSearchCmd)
}

var (
	authorPapersFields []string
	authorPapersLimit  int
	authorPapersOffset int
	authorPapersSort   string
)

var authorPapersCmd = &cobra.Command{
	Use:   "papers <author-id>",
	Short: "List an author's papers",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		page, err := newClient().GetAuthorPapers(context.Background(), args[0], s2.AuthorPapersOptions{
			Fields: authorPapersFields,
			Limit:  authorPapersLimit,
			Offset: authorPapersOffset,
			Sort:   authorPapersSort,
		})
		emit(page, err)
	},
}

func init() {
	authorPapersCmd.Flags().StringSliceVarP(&authorPapersFields, "fields", "f", nil, "Response fields per paper")
	authorPapersCmd.Flags().IntVar(&authorPapersLimit, "limit", 0, "Page size, 1-1000 (default 100)")
	authorPapersCmd.Flags().IntVar(&authorPapersOffset, "offset", 0, "Pagination offset")
	authorPapersCmd.Flags().StringVar(&authorPapersSort, "sort", "", "Sort key (e.g. year)")
	authorCmd.AddCommand(authorPapersCmd)
}

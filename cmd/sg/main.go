// Package main provides the sg CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sg",
	Short: "Agent-first Semantic Scholar Graph API client",
	Long: `sg queries the Semantic Scholar Academic Graph API: papers, authors,
citations, references, and text snippets.

All commands output JSON by default for easy integration with AI agents
and other tools. Use --human for readable summaries.

Environment Variables:
  SEMANTIC_SCHOLAR_API_KEY  API key (optional; unauthenticated access is
                            rate limited to the shared tier)`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Load .env file if present (for SEMANTIC_SCHOLAR_API_KEY)
	_ = godotenv.Load()

	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.Version = Version
}

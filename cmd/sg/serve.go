package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/matsen/scholargraph/internal/tools"
)

var serveHTTPAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the tool catalog over MCP",
	Long: `Expose all query operations as MCP tools.

By default the server speaks MCP over stdio for direct agent use.
With --http it serves the streamable HTTP transport instead.

Examples:
  sg serve
  sg serve --http 127.0.0.1:6666`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		srv := tools.NewServer(newClient(), Version)

		if serveHTTPAddr != "" {
			handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return srv }, nil)
			log.Printf("listening on %s", serveHTTPAddr)
			if err := http.ListenAndServe(serveHTTPAddr, handler); err != nil {
				log.Fatal(err)
			}
			return
		}

		if err := srv.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
			log.Print(err)
			os.Exit(ExitError)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveHTTPAddr, "http", "", "Serve MCP over streamable HTTP on this address instead of stdio")
	rootCmd.AddCommand(serveCmd)
}

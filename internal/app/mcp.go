package app

import (
	"context"
	"log/slog"
	"os"

	"github.com/blackwell-systems/nichewatch/internal/mcp"
	"github.com/blackwell-systems/nichewatch/internal/opportunity"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP stdio server over the opportunity export",
	Long: `Start a Model Context Protocol stdio server that an assistant can query
while you work. The export is re-read on every tool call. The server exposes
three tools:

  get_command_center   KPIs, insights and the top-ranked opportunities
  get_insights         The insight feed, optionally filtered by type
  explain_opportunity  Full detail for one opportunity by ID or name

Add to your MCP client configuration:
  {"mcpServers":{"nichewatch":{"command":"nichewatch","args":["mcp"]}}}`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	// Loading up front surfaces a bad config or missing export before the
	// client connects.
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	srv := mcp.NewServer(s.engine, s.loader(), s.cfg.TopN, appVersion, s.log)
	s.log.Info("mcp server starting", slog.String("source", s.source))
	return srv.Run(cmd.Context(), os.Stdin, os.Stdout)
}

// loader re-reads the session's export paths on every call.
func (s *session) loader() mcp.Loader {
	return func(ctx context.Context) ([]opportunity.Opportunity, error) {
		return opportunity.LoadFiles(ctx, s.paths)
	}
}

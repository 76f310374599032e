package cmd

import (
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/pikescope/internal/model"
	"github.com/mouse-blink/pikescope/internal/server"
)

// serveStdio is replaced in tests.
var serveStdio = func(s *mcpserver.MCPServer) error {
	return mcpserver.ServeStdio(s)
}

// serveCmd represents the serve command.
var serveCmd = newServeCmd()

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve resolver tools over MCP on stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the tools
resolve_scope, lookup_symbol and list_diagnostics for files under --root.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			handler := server.NewHandler(resolver, m.Path(cfg.Root))

			logger.Info("MCP server starting", "root", cfg.Root, "version", version)

			return serveStdio(server.New(handler, version))
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

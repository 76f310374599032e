// Package server exposes the resolver as MCP tools over stdio.
package server

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names.
const (
	ToolResolveScope    = "resolve_scope"
	ToolLookupSymbol    = "lookup_symbol"
	ToolListDiagnostics = "list_diagnostics"
)

// New creates the MCP server and registers the tools. All logic lives in the
// handler; this only maps the protocol.
func New(handler *Handler, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"pikescope",
		version,
		server.WithToolCapabilities(false),
	)

	pathArg := mcp.WithString("path",
		mcp.Required(),
		mcp.Description("Pike source file, absolute or relative to the workspace root"),
	)

	contentArg := mcp.WithString("content",
		mcp.Description("Unsaved buffer contents to use instead of the file on disk"),
	)

	s.AddTool(mcp.NewTool(ToolResolveScope,
		mcp.WithDescription("Resolve the includes of a file and list every symbol visible in it, with the file and line each one is declared at."),
		pathArg,
		contentArg,
	), handler.ResolveScope)

	s.AddTool(mcp.NewTool(ToolLookupSymbol,
		mcp.WithDescription("Find where a name visible in a file is declared, including its doc comment. Unknown names return close matches."),
		pathArg,
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Symbol name to look up"),
		),
		contentArg,
	), handler.LookupSymbol)

	s.AddTool(mcp.NewTool(ToolListDiagnostics,
		mcp.WithDescription("List include problems of a file: malformed directives, missing files, cycles and the include limit."),
		pathArg,
		contentArg,
	), handler.ListDiagnostics)

	return s
}

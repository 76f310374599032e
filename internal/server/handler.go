package server

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mouse-blink/pikescope/internal/domain"
	m "github.com/mouse-blink/pikescope/internal/model"
)

// Handler turns MCP tool calls into resolution requests.
type Handler struct {
	resolver domain.Resolver
	root     m.Path
}

// NewHandler creates a Handler resolving files under root.
func NewHandler(resolver domain.Resolver, root m.Path) *Handler {
	return &Handler{resolver: resolver, root: root}
}

type scopeResult struct {
	File        m.Path          `json:"file"`
	Symbols     []m.Symbol      `json:"symbols"`
	Diagnostics []*m.Diagnostic `json:"diagnostics"`
}

type lookupResult struct {
	Symbol   m.Symbol   `json:"symbol"`
	Shadowed []m.Symbol `json:"shadowed,omitempty"`
}

// ResolveScope handles the resolve_scope tool.
func (h *Handler) ResolveScope(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, errResult := h.resolve(req)
	if errResult != nil {
		return errResult, nil
	}

	out := scopeResult{
		File:        res.File.Path,
		Symbols:     res.Scope.Symbols(),
		Diagnostics: nonNil(res.Diagnostics),
	}

	return jsonResult(out)
}

// LookupSymbol handles the lookup_symbol tool.
func (h *Handler) LookupSymbol(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError("name is required"), nil
	}

	res, errResult := h.resolve(req)
	if errResult != nil {
		return errResult, nil
	}

	sym, diag := domain.LookupSymbol(res, name)
	if diag != nil {
		msg := diag.Error()
		if len(diag.Suggestions) > 0 {
			msg += fmt.Sprintf(" (did you mean: %v)", diag.Suggestions)
		}

		return mcp.NewToolResultError(msg), nil
	}

	return jsonResult(lookupResult{Symbol: sym, Shadowed: res.Scope.Shadowed(name)})
}

// ListDiagnostics handles the list_diagnostics tool.
func (h *Handler) ListDiagnostics(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res, errResult := h.resolve(req)
	if errResult != nil {
		return errResult, nil
	}

	return jsonResult(nonNil(res.Diagnostics))
}

func (h *Handler) resolve(req mcp.CallToolRequest) (m.Resolution, *mcp.CallToolResult) {
	raw, err := req.RequireString("path")
	if err != nil {
		return m.Resolution{}, mcp.NewToolResultError("path is required")
	}

	path := raw
	if !filepath.IsAbs(path) {
		path = filepath.Join(string(h.root), path)
	}

	request := domain.Request{Path: m.Path(path), Root: h.root}
	if content := req.GetString("content", ""); content != "" {
		request.Content = []byte(content)
	}

	res, err := h.resolver.Resolve(request)
	if err != nil {
		return m.Resolution{}, mcp.NewToolResultError(fmt.Sprintf("failed to resolve %s: %v", raw, err))
	}

	return res, nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}

	return mcp.NewToolResultText(string(data)), nil
}

func nonNil(diags []*m.Diagnostic) []*m.Diagnostic {
	if diags == nil {
		return []*m.Diagnostic{}
	}

	return diags
}

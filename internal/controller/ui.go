// Package controller renders resolution results for the CLI.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// Output formats understood by NewUI.
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Option is a functional option for NewUI.
type Option func(*Config)

// Config holds the UI settings chosen on the command line.
type Config struct {
	format string
}

// WithFormat selects the output format. Machine formats always use the plain
// UI, even on a terminal.
func WithFormat(format string) Option {
	return func(c *Config) {
		c.format = format
	}
}

// UI displays resolution results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayScope(res m.Resolution) error
	DisplayDiagnostics(results []m.Resolution) error
	DisplaySymbol(sym m.Symbol, shadowed []m.Symbol) error
	DisplayUnresolved(diag *m.Diagnostic) error
	DisplayIndex(entries []m.IndexEntry) error
	DisplayIndexSaved(count int, dir m.Path) error
}

// NewUI creates a UI based on whether TTY mode is enabled.
// When useTTY is true and the format is text, it returns a TUI (Bubble Tea).
// Otherwise it returns a SimpleUI.
func NewUI(cmd *cobra.Command, useTTY bool, options ...Option) UI {
	cfg := Config{format: FormatText}
	for _, opt := range options {
		opt(&cfg)
	}

	if useTTY && cfg.format == FormatText {
		return NewTUI(cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd, cfg.format)
}

// IsTTY reports whether w is an interactive terminal.
// Returns false if the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(file.Fd()))
}

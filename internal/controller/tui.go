package controller

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "github.com/mouse-blink/pikescope/internal/model"
)

var (
	kindStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	nameStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	docStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).PaddingLeft(2)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
)

// TUI implements UI for interactive terminals. The scope is shown in a Bubble
// Tea browser; everything else is printed with lipgloss styles.
type TUI struct {
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(input io.Reader, output io.Writer) *TUI {
	return &TUI{input: input, output: output}
}

// DisplayScope opens the scope browser and blocks until the user quits.
func (t *TUI) DisplayScope(res m.Resolution) error {
	return t.run(newScopeModel(res))
}

func (t *TUI) run(model tea.Model) error {
	program := tea.NewProgram(model,
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	_, err := program.Run()

	return err
}

// DisplayDiagnostics prints diagnostics grouped per file.
func (t *TUI) DisplayDiagnostics(results []m.Resolution) error {
	total := 0

	for _, res := range results {
		if len(res.Diagnostics) == 0 {
			continue
		}

		t.printf("%s\n", nameStyle.Render(string(res.File.Path)))

		for _, d := range res.Diagnostics {
			t.printf("  %s %s %s\n",
				mutedStyle.Render(fmt.Sprintf("%s:%d", d.File, d.Line)),
				errorStyle.Render(string(d.Kind)),
				d.Message)
		}

		total += len(res.Diagnostics)
	}

	if total == 0 {
		t.printf("%s\n", successStyle.Render(fmt.Sprintf("✓ %d files, no diagnostics", len(results))))

		return nil
	}

	t.printf("\n%s\n", errorStyle.Render(fmt.Sprintf("%d diagnostics in %d files", total, len(results))))

	return nil
}

// DisplaySymbol prints one symbol and what it hides.
func (t *TUI) DisplaySymbol(sym m.Symbol, shadowed []m.Symbol) error {
	t.printf("%s %s\n", kindStyle.Render(string(sym.Kind)), nameStyle.Render(sym.Name))
	t.printf("%s\n", mutedStyle.Render(fmt.Sprintf("  %s:%d", sym.File, sym.Line)))

	if sym.Doc != "" {
		t.printf("%s\n", docStyle.Render(sym.Doc))
	}

	for _, hidden := range shadowed {
		t.printf("%s\n", mutedStyle.Render(fmt.Sprintf("  shadows %s:%d", hidden.File, hidden.Line)))
	}

	return nil
}

// DisplayUnresolved prints a failed lookup with its suggestions.
func (t *TUI) DisplayUnresolved(diag *m.Diagnostic) error {
	t.printf("%s %s\n", errorStyle.Render(string(diag.Kind)), diag.Message)

	if len(diag.Suggestions) > 0 {
		t.printf("%s %s\n", mutedStyle.Render("  did you mean:"), nameStyle.Render(strings.Join(diag.Suggestions, ", ")))
	}

	return nil
}

// DisplayIndex lists stored index entries.
func (t *TUI) DisplayIndex(entries []m.IndexEntry) error {
	if len(entries) == 0 {
		t.printf("%s\n", mutedStyle.Render("Index is empty"))

		return nil
	}

	for _, entry := range entries {
		count := kindStyle.Render(fmt.Sprintf("%6d", len(entry.Symbols)))
		line := fmt.Sprintf("%s  %s", count, nameStyle.Render(string(entry.File)))

		if n := len(entry.Diagnostics); n > 0 {
			line += " " + errorStyle.Render(fmt.Sprintf("(%d diagnostics)", n))
		}

		t.printf("%s\n", line)
	}

	return nil
}

// DisplayIndexSaved confirms an index write.
func (t *TUI) DisplayIndexSaved(count int, dir m.Path) error {
	t.printf("%s\n", successStyle.Render(fmt.Sprintf("✓ indexed %d files into %s", count, dir)))

	return nil
}

func (t *TUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(t.output, format, args...)
}

package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// SimpleUI implements UI with plain tables, or YAML/JSON documents when a
// machine format is selected.
type SimpleUI struct {
	cmd    *cobra.Command
	format string
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command, format string) *SimpleUI {
	if format == "" {
		format = FormatText
	}

	return &SimpleUI{cmd: cmd, format: format}
}

type scopeDocument struct {
	File        m.Path          `json:"file" yaml:"file"`
	Directives  []m.Directive   `json:"directives" yaml:"directives"`
	Symbols     []m.Symbol      `json:"symbols" yaml:"symbols"`
	Diagnostics []*m.Diagnostic `json:"diagnostics" yaml:"diagnostics"`
}

type symbolDocument struct {
	Symbol   m.Symbol   `json:"symbol" yaml:"symbol"`
	Shadowed []m.Symbol `json:"shadowed,omitempty" yaml:"shadowed,omitempty"`
}

func newScopeDocument(res m.Resolution) scopeDocument {
	doc := scopeDocument{
		File:        res.File.Path,
		Directives:  res.File.Directives,
		Diagnostics: res.Diagnostics,
	}

	if res.Scope != nil {
		doc.Symbols = res.Scope.Symbols()
	}

	return doc
}

// DisplayScope prints the visible symbols of the resolved file.
func (s *SimpleUI) DisplayScope(res m.Resolution) error {
	if s.machine() {
		return s.encode(newScopeDocument(res))
	}

	base := filepath.Dir(string(res.File.Path))

	var symbols []m.Symbol
	if res.Scope != nil {
		symbols = res.Scope.Symbols()
	}

	s.printf("Scope of %s\n", res.File.Path)

	table, buf := newTable([]string{"Symbol", "Kind", "Declared In", "Line", "Shadows"})
	for _, sym := range symbols {
		shadows := ""
		if n := len(res.Scope.Shadowed(sym.Name)); n > 0 {
			shadows = fmt.Sprintf("%d", n)
		}

		table.Append([]string{sym.Name, string(sym.Kind), relativeTo(base, sym.File), fmt.Sprintf("%d", sym.Line), shadows})
	}

	table.SetFooter([]string{"Total Symbols", fmt.Sprintf("%d", len(symbols)), "", "", ""})
	table.Render()
	s.printf("\n%s", buf.String())

	if len(res.Diagnostics) > 0 {
		s.printf("\n")
		s.printDiagnostics(res.Diagnostics)
	}

	return nil
}

// DisplayDiagnostics prints every diagnostic of the checked files.
func (s *SimpleUI) DisplayDiagnostics(results []m.Resolution) error {
	if s.machine() {
		docs := make([]scopeDocument, 0, len(results))
		for _, res := range results {
			docs = append(docs, newScopeDocument(res))
		}

		return s.encode(docs)
	}

	var diags []*m.Diagnostic
	for _, res := range results {
		diags = append(diags, res.Diagnostics...)
	}

	if len(diags) == 0 {
		s.printf("No diagnostics in %d files\n", len(results))

		return nil
	}

	s.printDiagnostics(diags)

	return nil
}

// DisplaySymbol prints one symbol and what it hides.
func (s *SimpleUI) DisplaySymbol(sym m.Symbol, shadowed []m.Symbol) error {
	if s.machine() {
		return s.encode(symbolDocument{Symbol: sym, Shadowed: shadowed})
	}

	s.printf("%s %s\n", sym.Kind, sym.Name)
	s.printf("  declared at %s:%d\n", sym.File, sym.Line)

	if sym.Doc != "" {
		for _, line := range strings.Split(sym.Doc, "\n") {
			s.printf("  | %s\n", line)
		}
	}

	for _, hidden := range shadowed {
		s.printf("  shadows %s:%d\n", hidden.File, hidden.Line)
	}

	return nil
}

// DisplayUnresolved prints a failed lookup with its suggestions.
func (s *SimpleUI) DisplayUnresolved(diag *m.Diagnostic) error {
	if s.machine() {
		return s.encode(diag)
	}

	s.printf("%s\n", diag.Error())

	if len(diag.Suggestions) > 0 {
		s.printf("  did you mean: %s\n", strings.Join(diag.Suggestions, ", "))
	}

	return nil
}

// DisplayIndex prints a summary of stored index entries.
func (s *SimpleUI) DisplayIndex(entries []m.IndexEntry) error {
	if s.machine() {
		return s.encode(entries)
	}

	if len(entries) == 0 {
		s.printf("Index is empty\n")

		return nil
	}

	table, buf := newTable([]string{"File", "Includes", "Symbols", "Diagnostics"})
	symbolCount := 0

	for _, entry := range entries {
		symbolCount += len(entry.Symbols)
		table.Append([]string{
			string(entry.File),
			fmt.Sprintf("%d", len(entry.Directives)),
			fmt.Sprintf("%d", len(entry.Symbols)),
			fmt.Sprintf("%d", len(entry.Diagnostics)),
		})
	}

	table.SetFooter([]string{fmt.Sprintf("Total Files %d", len(entries)), "", fmt.Sprintf("%d", symbolCount), ""})
	table.Render()
	s.printf("\n%s", buf.String())

	return nil
}

// DisplayIndexSaved confirms an index write.
func (s *SimpleUI) DisplayIndexSaved(count int, dir m.Path) error {
	if s.machine() {
		return s.encode(map[string]any{"files": count, "dir": dir})
	}

	s.printf("Indexed %d files into %s\n", count, dir)

	return nil
}

func (s *SimpleUI) printDiagnostics(diags []*m.Diagnostic) {
	table, buf := newTable([]string{"Location", "Kind", "Message"})
	for _, d := range diags {
		table.Append([]string{fmt.Sprintf("%s:%d", d.File, d.Line), string(d.Kind), d.Message})
	}

	table.SetFooter([]string{"Total Diagnostics", fmt.Sprintf("%d", len(diags)), ""})
	table.Render()
	s.printf("%s", buf.String())
}

func (s *SimpleUI) machine() bool {
	return s.format == FormatYAML || s.format == FormatJSON
}

func (s *SimpleUI) encode(v any) error {
	out := s.cmd.OutOrStdout()

	if s.format == FormatJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(v)
	}

	enc := yaml.NewEncoder(out)
	enc.SetIndent(2)

	if err := enc.Encode(v); err != nil {
		return err
	}

	return enc.Close()
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func newTable(header []string) (*tablewriter.Table, *bytes.Buffer) {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	return table, &buf
}

func relativeTo(base string, p m.Path) string {
	rel, err := filepath.Rel(base, string(p))
	if err != nil {
		return string(p)
	}

	return rel
}

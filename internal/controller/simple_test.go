package controller

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/pikescope/internal/model"
)

func newTestSimpleUI(format string) (*SimpleUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewSimpleUI(cmd, format), &buf
}

func TestSimpleUI_DisplayScope_PrintsTable(t *testing.T) {
	ui, buf := newTestSimpleUI(FormatText)

	if err := ui.DisplayScope(testResolution()); err != nil {
		t.Fatalf("DisplayScope() error = %v", err)
	}

	output := buf.String()

	for _, want := range []string{
		"Scope of /ws/main.pike",
		"global_constant",
		"global_function",
		"parent/globals.h",
		"main.pike",
		"TOTAL SYMBOLS",
		"4",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayScope_WithDiagnostics(t *testing.T) {
	ui, buf := newTestSimpleUI(FormatText)

	res := testResolution()
	res.Diagnostics = []*m.Diagnostic{testDiagnostic()}

	if err := ui.DisplayScope(res); err != nil {
		t.Fatalf("DisplayScope() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "PathNotFound") || !strings.Contains(output, "/ws/main.pike:2") {
		t.Fatalf("output missing diagnostic\noutput:\n%s", output)
	}
}

func TestSimpleUI_DisplayScope_YAML(t *testing.T) {
	ui, buf := newTestSimpleUI(FormatYAML)

	if err := ui.DisplayScope(testResolution()); err != nil {
		t.Fatalf("DisplayScope() error = %v", err)
	}

	var doc scopeDocument
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("yaml.Unmarshal error = %v\n%s", err, buf.String())
	}

	if doc.File != "/ws/main.pike" {
		t.Fatalf("file = %q", doc.File)
	}

	if len(doc.Symbols) != 4 || doc.Symbols[0].Name != "global_constant" {
		t.Fatalf("symbols = %+v", doc.Symbols)
	}

	if len(doc.Directives) != 1 || doc.Directives[0].Resolved != "/ws/parent/globals.h" {
		t.Fatalf("directives = %+v", doc.Directives)
	}
}

func TestSimpleUI_DisplayDiagnostics(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		ui, buf := newTestSimpleUI(FormatText)

		if err := ui.DisplayDiagnostics([]m.Resolution{testResolution()}); err != nil {
			t.Fatalf("DisplayDiagnostics() error = %v", err)
		}

		if got := buf.String(); got != "No diagnostics in 1 files\n" {
			t.Fatalf("output = %q", got)
		}
	})

	t.Run("table", func(t *testing.T) {
		ui, buf := newTestSimpleUI(FormatText)

		res := testResolution()
		res.Diagnostics = []*m.Diagnostic{testDiagnostic()}

		if err := ui.DisplayDiagnostics([]m.Resolution{res, testResolution()}); err != nil {
			t.Fatalf("DisplayDiagnostics() error = %v", err)
		}

		output := buf.String()
		for _, want := range []string{"PathNotFound", `cannot find "missing.h"`, "TOTAL DIAGNOSTICS"} {
			if !strings.Contains(output, want) {
				t.Fatalf("output missing %q\noutput:\n%s", want, output)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		ui, buf := newTestSimpleUI(FormatJSON)

		res := testResolution()
		res.Diagnostics = []*m.Diagnostic{testDiagnostic()}

		if err := ui.DisplayDiagnostics([]m.Resolution{res}); err != nil {
			t.Fatalf("DisplayDiagnostics() error = %v", err)
		}

		var docs []scopeDocument
		if err := json.Unmarshal(buf.Bytes(), &docs); err != nil {
			t.Fatalf("json.Unmarshal error = %v\n%s", err, buf.String())
		}

		if len(docs) != 1 || len(docs[0].Diagnostics) != 1 || docs[0].Diagnostics[0].Kind != m.PathNotFound {
			t.Fatalf("docs = %+v", docs)
		}
	})
}

func TestSimpleUI_DisplaySymbol(t *testing.T) {
	ui, buf := newTestSimpleUI(FormatText)
	res := testResolution()

	sym, _ := res.Scope.Lookup("global_function")
	if err := ui.DisplaySymbol(sym, nil); err != nil {
		t.Fatalf("DisplaySymbol() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{
		"function global_function",
		"declared at /ws/parent/globals.h:9",
		"  | @decl string global_function()",
		"  |   A global function that returns a test string",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("output missing %q\noutput:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplaySymbol_Shadowed(t *testing.T) {
	ui, buf := newTestSimpleUI(FormatText)
	res := testResolution()

	sym, _ := res.Scope.Lookup("helper")
	if err := ui.DisplaySymbol(sym, res.Scope.Shadowed("helper")); err != nil {
		t.Fatalf("DisplaySymbol() error = %v", err)
	}

	if !strings.Contains(buf.String(), "shadows /ws/parent/globals.h:3") {
		t.Fatalf("output missing shadow line\noutput:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayUnresolved(t *testing.T) {
	ui, buf := newTestSimpleUI(FormatText)

	diag := m.NewDiagnostic(m.UnresolvedSymbol, "/ws/main.pike", 7, "%q is not declared", "helpr")
	diag.Suggestions = []string{"helper"}

	if err := ui.DisplayUnresolved(diag); err != nil {
		t.Fatalf("DisplayUnresolved() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "/ws/main.pike:7: UnresolvedSymbol") || !strings.Contains(output, "did you mean: helper") {
		t.Fatalf("output = %q", output)
	}
}

func TestSimpleUI_DisplayIndex(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		ui, buf := newTestSimpleUI(FormatText)

		if err := ui.DisplayIndex(nil); err != nil {
			t.Fatalf("DisplayIndex() error = %v", err)
		}

		if got := buf.String(); got != "Index is empty\n" {
			t.Fatalf("output = %q", got)
		}
	})

	t.Run("entries", func(t *testing.T) {
		ui, buf := newTestSimpleUI(FormatText)

		entries := []m.IndexEntry{
			{File: "/ws/a.pike", Symbols: []m.Symbol{{Name: "a"}, {Name: "b"}}},
			{File: "/ws/b.pike", Symbols: []m.Symbol{{Name: "c"}}},
		}

		if err := ui.DisplayIndex(entries); err != nil {
			t.Fatalf("DisplayIndex() error = %v", err)
		}

		output := buf.String()
		for _, want := range []string{"/ws/a.pike", "/ws/b.pike", "TOTAL FILES 2", "3"} {
			if !strings.Contains(output, want) {
				t.Fatalf("output missing %q\noutput:\n%s", want, output)
			}
		}
	})
}

func TestSimpleUI_DisplayIndexSaved(t *testing.T) {
	ui, buf := newTestSimpleUI(FormatText)

	if err := ui.DisplayIndexSaved(3, "/tmp/index"); err != nil {
		t.Fatalf("DisplayIndexSaved() error = %v", err)
	}

	if got := buf.String(); got != "Indexed 3 files into /tmp/index\n" {
		t.Fatalf("output = %q", got)
	}
}

func TestRelativeTo(t *testing.T) {
	if got := relativeTo("/ws", "/ws/parent/globals.h"); got != "parent/globals.h" {
		t.Fatalf("relativeTo = %q", got)
	}

	if got := relativeTo("ws", "/abs/file.h"); got != "/abs/file.h" {
		t.Fatalf("relativeTo mixed = %q, want path unchanged", got)
	}
}

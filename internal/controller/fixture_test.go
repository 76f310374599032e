package controller

import (
	m "github.com/mouse-blink/pikescope/internal/model"
)

// testResolution describes /ws/main.pike including parent/globals.h, where
// the local helper shadows the included one.
func testResolution() m.Resolution {
	const (
		main    = m.Path("/ws/main.pike")
		globals = m.Path("/ws/parent/globals.h")
	)

	included := m.NewScopeTable(globals)
	included.Declare(m.Symbol{Name: "global_constant", Kind: m.SymbolConstant, File: globals, Line: 1})
	included.Declare(m.Symbol{Name: "helper", Kind: m.SymbolFunction, File: globals, Line: 3})
	included.Declare(m.Symbol{
		Name: "global_function",
		Kind: m.SymbolFunction,
		File: globals,
		Line: 9,
		Doc:  "@decl string global_function()\n@description\n  A global function that returns a test string",
	})

	scope := m.NewScopeTable(main)
	scope.Merge(included)
	scope.Declare(m.Symbol{Name: "helper", Kind: m.SymbolFunction, File: main, Line: 4})
	scope.Declare(m.Symbol{Name: "main", Kind: m.SymbolFunction, File: main, Line: 6})

	return m.Resolution{
		File: m.SourceFile{
			Path: main,
			Text: "#include \"parent/globals.h\"\n",
			Directives: []m.Directive{
				{Kind: m.DirectiveInclude, Literal: "parent/globals.h", Resolved: globals, Line: 1},
			},
		},
		Scope:    scope,
		Loaded:   []m.Path{main, globals},
		Includes: []m.IncludeEdge{{From: main, To: globals, Line: 1, Kind: m.DirectiveInclude}},
	}
}

func testDiagnostic() *m.Diagnostic {
	return m.NewDiagnostic(m.PathNotFound, "/ws/main.pike", 2, "cannot find %q", "missing.h")
}

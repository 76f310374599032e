package model

import "sort"

// SymbolKind is the category of a top-level declaration.
type SymbolKind string

const (
	// SymbolConstant covers `constant`, `const` and `#define` declarations.
	SymbolConstant SymbolKind = "constant"
	// SymbolFunction covers top-level function definitions.
	SymbolFunction SymbolKind = "function"
)

// Symbol is a top-level declaration visible in some scope.
type Symbol struct {
	Name string     `json:"name" yaml:"name"`
	Kind SymbolKind `json:"kind" yaml:"kind"`
	File Path       `json:"file" yaml:"file"`
	Line int        `json:"line" yaml:"line"`
	Doc  string     `json:"doc,omitempty" yaml:"doc,omitempty"`
}

// ScopeTable maps symbol names to the declaration that wins in a file's scope.
type ScopeTable struct {
	File     Path
	symbols  map[string]Symbol
	shadowed map[string][]Symbol
}

// NewScopeTable returns an empty scope for file.
func NewScopeTable(file Path) *ScopeTable {
	return &ScopeTable{
		File:     file,
		symbols:  make(map[string]Symbol),
		shadowed: make(map[string][]Symbol),
	}
}

// Declare adds a local declaration. It replaces any symbol of the same name,
// whether included or declared earlier in the same file.
func (s *ScopeTable) Declare(sym Symbol) {
	s.put(sym)
}

// Merge brings every symbol of an included scope into s. Later merges win over
// earlier ones, so callers merge includes in source order and declare local
// symbols last.
func (s *ScopeTable) Merge(included *ScopeTable) {
	if included == nil {
		return
	}

	for _, name := range included.Names() {
		s.put(included.symbols[name])
	}
}

func (s *ScopeTable) put(sym Symbol) {
	if existing, ok := s.symbols[sym.Name]; ok && existing != sym {
		s.shadowed[sym.Name] = append(s.shadowed[sym.Name], existing)
	}

	s.symbols[sym.Name] = sym
}

// Lookup returns the visible symbol called name.
func (s *ScopeTable) Lookup(name string) (Symbol, bool) {
	sym, ok := s.symbols[name]

	return sym, ok
}

// Shadowed lists the symbols hidden by the visible declaration of name, oldest
// first.
func (s *ScopeTable) Shadowed(name string) []Symbol {
	return s.shadowed[name]
}

// Len reports the number of visible symbols.
func (s *ScopeTable) Len() int {
	return len(s.symbols)
}

// Names returns the visible symbol names in sorted order.
func (s *ScopeTable) Names() []string {
	names := make([]string, 0, len(s.symbols))
	for name := range s.symbols {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Symbols returns the visible symbols sorted by name.
func (s *ScopeTable) Symbols() []Symbol {
	names := s.Names()

	symbols := make([]Symbol, 0, len(names))
	for _, name := range names {
		symbols = append(symbols, s.symbols[name])
	}

	return symbols
}

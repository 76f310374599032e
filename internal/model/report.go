package model

// IncludeEdge records that From pulled To into scope at Line.
type IncludeEdge struct {
	From Path          `json:"from" yaml:"from"`
	To   Path          `json:"to" yaml:"to"`
	Line int           `json:"line" yaml:"line"`
	Kind DirectiveKind `json:"kind" yaml:"kind"`
}

// Resolution is the outcome of one resolution request.
type Resolution struct {
	File        SourceFile
	Scope       *ScopeTable
	Diagnostics []*Diagnostic
	// Loaded lists every file read during the request, in load order.
	Loaded   []Path
	Includes []IncludeEdge
}

// IndexEntry is the persisted form of a Resolution.
type IndexEntry struct {
	File        Path          `json:"file" yaml:"file"`
	Hash        string        `json:"hash" yaml:"hash"`
	Directives  []Directive   `json:"directives" yaml:"directives"`
	Symbols     []Symbol      `json:"symbols" yaml:"symbols"`
	Diagnostics []*Diagnostic `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Package model defines the data structures shared by the resolver layers.
package model

// Path represents a file system path.
type Path string

// DirectiveKind identifies the textual form a directive was written in.
type DirectiveKind string

const (
	// DirectiveInclude is a preprocessor `#include "file"` line.
	DirectiveInclude DirectiveKind = "include"
	// DirectiveInherit is an `inherit "file";` statement. Its declarations are
	// merged into scope exactly like an include.
	DirectiveInherit DirectiveKind = "inherit"
)

// Directive is a request, found in a source file, to bring another file's
// declarations into scope.
type Directive struct {
	Kind DirectiveKind `json:"kind" yaml:"kind"`
	// Literal is the target path exactly as written between the quotes.
	Literal string `json:"literal" yaml:"literal"`
	// Resolved is empty until the path resolver has located the target.
	Resolved Path `json:"resolved,omitempty" yaml:"resolved,omitempty"`
	Line     int  `json:"line" yaml:"line"`
}

// SourceFile is a file taking part in a resolution request.
type SourceFile struct {
	// Path is absolute and canonicalized.
	Path       Path        `json:"path" yaml:"path"`
	Text       string      `json:"-" yaml:"-"`
	Directives []Directive `json:"directives" yaml:"directives"`
}

// ParsedFile is everything the resolver extracts from a single file without
// following its directives. It depends only on the file content, which makes it
// safe to cache by content hash.
type ParsedFile struct {
	Path       Path
	Hash       string
	Directives []Directive
	// Declarations are in source order; duplicates are kept.
	Declarations []Symbol
	// Diagnostics found while scanning, such as malformed directives.
	Diagnostics []*Diagnostic
}

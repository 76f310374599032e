package model

import (
	"errors"
	"fmt"
)

// DiagnosticKind classifies a problem found while resolving a file.
type DiagnosticKind string

// Diagnostic kinds reported by the resolver.
const (
	MalformedDirective DiagnosticKind = "MalformedDirective"
	PathNotFound       DiagnosticKind = "PathNotFound"
	CyclicInclude      DiagnosticKind = "CyclicInclude"
	IncludeLimit       DiagnosticKind = "IncludeLimit"
	UnreadableFile     DiagnosticKind = "UnreadableFile"
	UnresolvedSymbol   DiagnosticKind = "UnresolvedSymbol"
)

// Sentinel errors matched by errors.Is against a *Diagnostic.
var (
	ErrMalformedDirective = errors.New("malformed directive")
	ErrPathNotFound       = errors.New("include path not found")
	ErrCyclicInclude      = errors.New("cyclic include")
	ErrIncludeLimit       = errors.New("include limit reached")
	ErrUnreadableFile     = errors.New("unreadable file")
	ErrUnresolvedSymbol   = errors.New("unresolved symbol")
)

var sentinels = map[DiagnosticKind]error{
	MalformedDirective: ErrMalformedDirective,
	PathNotFound:       ErrPathNotFound,
	CyclicInclude:      ErrCyclicInclude,
	IncludeLimit:       ErrIncludeLimit,
	UnreadableFile:     ErrUnreadableFile,
	UnresolvedSymbol:   ErrUnresolvedSymbol,
}

// Diagnostic is a non-fatal problem tied to a file and line.
type Diagnostic struct {
	Kind    DiagnosticKind `json:"kind" yaml:"kind"`
	File    Path           `json:"file" yaml:"file"`
	Line    int            `json:"line" yaml:"line"`
	Message string         `json:"message" yaml:"message"`
	// Chain is the include chain for CyclicInclude, starting and ending with
	// the same file.
	Chain []Path `json:"chain,omitempty" yaml:"chain,omitempty"`
	// Suggestions holds near matches for UnresolvedSymbol.
	Suggestions []string `json:"suggestions,omitempty" yaml:"suggestions,omitempty"`
}

// NewDiagnostic builds a diagnostic with a formatted message.
func NewDiagnostic(kind DiagnosticKind, file Path, line int, format string, args ...any) *Diagnostic {
	return &Diagnostic{
		Kind:    kind,
		File:    file,
		Line:    line,
		Message: fmt.Sprintf(format, args...),
	}
}

func (d *Diagnostic) Error() string {
	if d == nil {
		return ""
	}

	return fmt.Sprintf("%s:%d: %s: %s", d.File, d.Line, d.Kind, d.Message)
}

func (d *Diagnostic) Unwrap() error {
	return sentinels[d.Kind]
}

package domain

import (
	"path/filepath"
	"strings"

	"github.com/mouse-blink/pikescope/internal/adapter"
	m "github.com/mouse-blink/pikescope/internal/model"
)

// PathResolver maps directive literals to files inside a workspace root.
type PathResolver struct {
	reader adapter.SourceReader
	root   m.Path
}

// NewPathResolver returns a resolver bounded by root, which must already be
// canonical.
func NewPathResolver(reader adapter.SourceReader, root m.Path) *PathResolver {
	return &PathResolver{reader: reader, root: root}
}

// Resolve locates the file named by d, written in the file from.
//
// A relative literal is looked up next to the including file first. If
// nothing is there it is combined with the including file's own path, so
// "../parent/globals.h" in /ws/main.pike also finds /ws/parent/globals.h.
// An absolute literal is used as is when inside the root, and is otherwise
// taken relative to the root. Candidates outside the root are never used.
//
// The returned error is always a *model.Diagnostic of kind PathNotFound.
func (r *PathResolver) Resolve(d m.Directive, from m.Path) (m.Path, error) {
	if strings.TrimSpace(d.Literal) == "" {
		return "", m.NewDiagnostic(m.PathNotFound, from, d.Line, "empty %s path", d.Kind)
	}

	outside := 0
	candidates := r.candidates(d.Literal, from)

	for _, candidate := range candidates {
		canonical, err := r.reader.Canonical(candidate)
		if err != nil {
			continue
		}

		if !r.Contains(canonical) {
			outside++

			continue
		}

		if r.reader.Exists(canonical) {
			return canonical, nil
		}
	}

	if outside == len(candidates) {
		return "", m.NewDiagnostic(m.PathNotFound, from, d.Line,
			"%q resolves outside the workspace %s", d.Literal, r.root)
	}

	return "", m.NewDiagnostic(m.PathNotFound, from, d.Line,
		"cannot find %q (looked in %s)", d.Literal, candidates[0])
}

// Contains reports whether path lies inside the workspace root.
func (r *PathResolver) Contains(path m.Path) bool {
	rel, err := filepath.Rel(string(r.root), string(path))
	if err != nil {
		return false
	}

	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (r *PathResolver) candidates(literal string, from m.Path) []m.Path {
	literal = filepath.FromSlash(literal)

	var list []m.Path
	if filepath.IsAbs(literal) {
		list = []m.Path{
			m.Path(filepath.Clean(literal)),
			m.Path(filepath.Join(string(r.root), literal)),
		}
	} else {
		list = []m.Path{
			m.Path(filepath.Join(filepath.Dir(string(from)), literal)),
			m.Path(filepath.Join(string(from), literal)),
		}
	}

	if list[0] == list[1] {
		return list[:1]
	}

	return list
}

package domain

import (
	"regexp"
	"strings"

	"github.com/sahilm/fuzzy"

	m "github.com/mouse-blink/pikescope/internal/model"
)

const maxSuggestions = 3

// LookupSymbol finds name in the resolved scope. When the name is not visible
// it returns an UnresolvedSymbol diagnostic pointing at the first use of the
// name in the file, with the closest visible names as suggestions.
func LookupSymbol(res m.Resolution, name string) (m.Symbol, *m.Diagnostic) {
	if res.Scope != nil {
		if sym, ok := res.Scope.Lookup(name); ok {
			return sym, nil
		}
	}

	diag := m.NewDiagnostic(m.UnresolvedSymbol, res.File.Path, firstUse(res.File.Text, name),
		"%q is not declared in this file or its includes", name)
	diag.Suggestions = suggest(res.Scope, name)

	return m.Symbol{}, diag
}

func suggest(scope *m.ScopeTable, name string) []string {
	if scope == nil || name == "" {
		return nil
	}

	matches := fuzzy.Find(strings.ToLower(name), lowerAll(scope.Names()))

	names := scope.Names()
	suggestions := make([]string, 0, maxSuggestions)

	for _, match := range matches {
		if len(suggestions) == maxSuggestions {
			break
		}

		suggestions = append(suggestions, names[match.Index])
	}

	return suggestions
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}

	return out
}

// firstUse returns the line of the first whole-word occurrence of name, or 0.
func firstUse(text, name string) int {
	if name == "" {
		return 0
	}

	word := regexp.MustCompile(`\b` + regexp.QuoteMeta(name) + `\b`)

	for line := range lines(text) {
		if word.MatchString(line.code) {
			return line.number
		}
	}

	return 0
}

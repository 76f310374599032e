package domain

import (
	"iter"
	"strings"

	m "github.com/mouse-blink/pikescope/internal/model"
)

// ScanDirectives returns the include directives of text in source order.
//
// A directive is `#include "path"` (spaces allowed after the hash) or
// `inherit "path";`, at the start of a line and outside comments. System
// includes written with angle brackets are skipped. A directive whose quote is
// never closed is yielded as a MalformedDirective error and scanning carries
// on with the next line. The sequence can be ranged over any number of times.
func ScanDirectives(path m.Path, text string) iter.Seq2[m.Directive, error] {
	return func(yield func(m.Directive, error) bool) {
		for line := range lines(text) {
			d, ok, diag := parseDirective(path, line)
			if diag != nil {
				if !yield(m.Directive{}, diag) {
					return
				}

				continue
			}

			if ok && !yield(d, nil) {
				return
			}
		}
	}
}

func parseDirective(path m.Path, line sourceLine) (m.Directive, bool, *m.Diagnostic) {
	code := strings.TrimSpace(line.code)

	kind, rest, ok := directiveKeyword(code)
	if !ok {
		return m.Directive{}, false, nil
	}

	rest = strings.TrimLeft(rest, " \t")

	switch {
	case strings.HasPrefix(rest, "<") && kind == m.DirectiveInclude:
		return m.Directive{}, false, nil
	case !strings.HasPrefix(rest, `"`):
		if kind == m.DirectiveInherit {
			// inherit of a program identifier, not a file
			return m.Directive{}, false, nil
		}

		return m.Directive{}, false, m.NewDiagnostic(m.MalformedDirective, path, line.number,
			"expected quoted path after #include, got %q", rest)
	}

	literal, ok := quotedLiteral(rest)
	if !ok {
		return m.Directive{}, false, m.NewDiagnostic(m.MalformedDirective, path, line.number,
			"unterminated path in %s directive", kind)
	}

	return m.Directive{Kind: kind, Literal: literal, Line: line.number}, true, nil
}

// directiveKeyword matches the leading keyword of a directive and returns the
// text after it.
func directiveKeyword(code string) (m.DirectiveKind, string, bool) {
	if rest, ok := strings.CutPrefix(code, "#"); ok {
		rest = strings.TrimLeft(rest, " \t")
		if after, ok := cutWord(rest, "include"); ok {
			return m.DirectiveInclude, after, true
		}

		return "", "", false
	}

	if after, ok := cutWord(code, "inherit"); ok {
		return m.DirectiveInherit, after, true
	}

	return "", "", false
}

// cutWord removes word from the front of s when it is followed by a non
// identifier character.
func cutWord(s, word string) (string, bool) {
	rest, ok := strings.CutPrefix(s, word)
	if !ok {
		return "", false
	}

	if rest != "" && isIdentByte(rest[0]) {
		return "", false
	}

	return rest, true
}

// quotedLiteral returns the raw text between the opening quote at s[0] and
// the next unescaped quote.
func quotedLiteral(s string) (string, bool) {
	for i := 1; i < len(s); i++ {
		switch s[i] {
		case '\\':
			i++
		case '"':
			return s[1:i], true
		}
	}

	return "", false
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

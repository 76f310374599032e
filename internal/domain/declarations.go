package domain

import (
	"strings"

	m "github.com/mouse-blink/pikescope/internal/model"
)

var modifiers = map[string]bool{
	"extern": true, "final": true, "inline": true, "local": true, "nomask": true,
	"optional": true, "private": true, "protected": true, "public": true,
	"static": true, "variant": true,
}

// keywords that can never name a declared function.
var keywords = map[string]bool{
	"break": true, "case": true, "catch": true, "class": true, "continue": true,
	"default": true, "do": true, "else": true, "enum": true, "for": true,
	"foreach": true, "gauge": true, "if": true, "import": true, "inherit": true,
	"lambda": true, "return": true, "sscanf": true, "switch": true,
	"typedef": true, "typeof": true, "while": true,
}

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokLiteral
	tokPunct
)

type token struct {
	kind tokenKind
	text string
}

// ParseDeclarations returns the top-level constants and functions declared in
// text, in source order.
//
// A run of `//!` lines directly above a declaration becomes its Doc. The run
// survives ordinary comments in between but is dropped at a blank line or at
// any other code.
func ParseDeclarations(path m.Path, text string) []m.Symbol {
	var (
		symbols []m.Symbol
		doc     []string
		depth   int
	)

	for line := range lines(text) {
		if line.blank() {
			doc = nil

			continue
		}

		if line.commentOnly() {
			if d, ok := line.docText(); ok {
				doc = append(doc, d)
			}

			continue
		}

		code := strings.TrimSpace(line.code)

		var names []string

		var kind m.SymbolKind

		if strings.HasPrefix(code, "#") {
			if name, ok := defineName(code); ok {
				names, kind = []string{name}, m.SymbolConstant
			}
		} else {
			toks := tokenize(code)
			if depth == 0 {
				names, kind = declaredNames(toks)
			}

			depth = max(0, depth+braceDelta(toks))
		}

		if trailing, ok := line.docText(); ok && len(names) > 0 {
			doc = append(doc, trailing)
		}

		for _, name := range names {
			symbols = append(symbols, m.Symbol{
				Name: name,
				Kind: kind,
				File: path,
				Line: line.number,
				Doc:  strings.Join(doc, "\n"),
			})
		}

		doc = nil
	}

	return symbols
}

// declaredNames recognises a constant or function declaration at the start of
// a top-level statement.
func declaredNames(toks []token) ([]string, m.SymbolKind) {
	i := 0
	for i < len(toks) && toks[i].kind == tokIdent && modifiers[toks[i].text] {
		i++
	}

	toks = toks[i:]
	if len(toks) == 0 || toks[0].kind != tokIdent {
		return nil, ""
	}

	switch toks[0].text {
	case "constant", "const":
		return constantNames(toks[1:]), m.SymbolConstant
	}

	if keywords[toks[0].text] {
		return nil, ""
	}

	if name, ok := functionName(toks); ok {
		return []string{name}, m.SymbolFunction
	}

	return nil, ""
}

// constantNames collects the identifier before each top-level `=`, which
// covers `constant a = 1, b = 2;` and `const int a = 1;`.
func constantNames(toks []token) []string {
	var names []string

	nesting := 0

	for i, tok := range toks {
		if tok.kind != tokPunct {
			continue
		}

		switch tok.text {
		case "(", "[", "{":
			nesting++
		case ")", "]", "}":
			nesting--
		case ";":
			if nesting == 0 {
				return names
			}
		case "=":
			if nesting == 0 && i > 0 && toks[i-1].kind == tokIdent {
				names = append(names, toks[i-1].text)
			}
		}
	}

	return names
}

// functionName finds `TYPE NAME(` where TYPE is any run of type tokens, such
// as `array(int)` or `int|string`. An `=` before the name means the line
// initialises a variable instead.
func functionName(toks []token) (string, bool) {
	nesting := 0

	for i, tok := range toks {
		if tok.kind == tokPunct {
			switch tok.text {
			case "(":
				nesting++
			case ")":
				nesting--
			case "=", ";", "{":
				if nesting == 0 {
					return "", false
				}
			}

			continue
		}

		if nesting != 0 || tok.kind != tokIdent || i == 0 || keywords[tok.text] {
			continue
		}

		if i+1 >= len(toks) || toks[i+1].text != "(" {
			continue
		}

		prev := toks[i-1]
		if prev.kind == tokIdent || prev.text == ")" || prev.text == "*" {
			return tok.text, true
		}
	}

	return "", false
}

func defineName(code string) (string, bool) {
	rest := strings.TrimLeft(strings.TrimPrefix(code, "#"), " \t")

	rest, ok := cutWord(rest, "define")
	if !ok {
		return "", false
	}

	rest = strings.TrimLeft(rest, " \t")

	end := 0
	for end < len(rest) && isIdentByte(rest[end]) {
		end++
	}

	if end == 0 {
		return "", false
	}

	return rest[:end], true
}

func braceDelta(toks []token) int {
	delta := 0

	for _, tok := range toks {
		switch tok.text {
		case "{":
			delta++
		case "}":
			delta--
		}
	}

	return delta
}

// tokenize splits comment-free code into identifiers, literals and single
// character punctuation.
func tokenize(code string) []token {
	var toks []token

	for i := 0; i < len(code); {
		c := code[i]

		switch {
		case c == ' ' || c == '\t':
			i++

		case c == '"' || c == '\'':
			j := i + 1
			for j < len(code) && code[j] != c {
				if code[j] == '\\' {
					j++
				}
				j++
			}

			j = min(j+1, len(code))
			toks = append(toks, token{kind: tokLiteral, text: code[i:j]})
			i = j

		case isIdentByte(c):
			j := i
			for j < len(code) && isIdentByte(code[j]) {
				j++
			}

			kind := tokIdent
			if c >= '0' && c <= '9' {
				kind = tokLiteral
			}

			toks = append(toks, token{kind: kind, text: code[i:j]})
			i = j

		default:
			toks = append(toks, token{kind: tokPunct, text: string(c)})
			i++
		}
	}

	return toks
}

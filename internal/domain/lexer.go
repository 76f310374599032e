// Package domain contains the include resolution workflow: directive scanning,
// path resolution, recursive loading and scope merging.
package domain

import (
	"iter"
	"strings"
)

// sourceLine is one physical line split into code and comment parts.
type sourceLine struct {
	number int
	// code is the line with comments replaced by a space. String and
	// character literals are kept verbatim.
	code string
	// comment is the text of a trailing `//` comment, including the slashes.
	comment string
	// hasComment is set when the line contained any comment text, including
	// the inside of a block comment.
	hasComment bool
}

func (l sourceLine) blank() bool {
	return strings.TrimSpace(l.code) == "" && !l.hasComment
}

func (l sourceLine) commentOnly() bool {
	return strings.TrimSpace(l.code) == "" && l.hasComment
}

// docText returns the autodoc text of a `//!` comment on this line.
func (l sourceLine) docText() (string, bool) {
	rest, ok := strings.CutPrefix(l.comment, "//!")
	if !ok {
		return "", false
	}

	rest = strings.TrimPrefix(rest, " ")

	return strings.TrimRight(rest, " \t"), true
}

// lines yields the lines of text with block comment state carried across
// line boundaries. Each call of the returned sequence starts from the top.
func lines(text string) iter.Seq[sourceLine] {
	return func(yield func(sourceLine) bool) {
		inBlock := false
		number := 0

		for raw := range strings.Lines(text) {
			number++

			raw = strings.TrimRight(raw, "\r\n")

			var line sourceLine

			line, inBlock = lexLine(raw, inBlock)
			line.number = number

			if !yield(line) {
				return
			}
		}
	}
}

// lexLine separates code from comments in one line. A quote left open at the
// end of the line is closed implicitly.
func lexLine(raw string, inBlock bool) (sourceLine, bool) {
	var (
		code  strings.Builder
		line  sourceLine
		quote byte
	)

	for i := 0; i < len(raw); i++ {
		c := raw[i]

		switch {
		case inBlock:
			line.hasComment = true

			end := strings.Index(raw[i:], "*/")
			if end < 0 {
				i = len(raw)

				continue
			}

			i += end + 1
			inBlock = false

			code.WriteByte(' ')

		case quote != 0:
			code.WriteByte(c)

			if c == '\\' && i+1 < len(raw) {
				i++
				code.WriteByte(raw[i])

				continue
			}

			if c == quote {
				quote = 0
			}

		case c == '"' || c == '\'':
			quote = c
			code.WriteByte(c)

		case strings.HasPrefix(raw[i:], "//"):
			line.comment = raw[i:]
			line.hasComment = true
			i = len(raw)

		case strings.HasPrefix(raw[i:], "/*"):
			inBlock = true
			line.hasComment = true
			i++

		default:
			code.WriteByte(c)
		}
	}

	line.code = code.String()

	return line, inBlock
}

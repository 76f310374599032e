package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/pikescope/internal/model"
)

func scanAll(t *testing.T, text string) ([]m.Directive, []*m.Diagnostic) {
	t.Helper()

	var (
		directives []m.Directive
		diags      []*m.Diagnostic
	)

	for d, err := range ScanDirectives("/ws/main.pike", text) {
		if err != nil {
			var diag *m.Diagnostic
			require.True(t, errors.As(err, &diag), "scan error %v is not a diagnostic", err)

			diags = append(diags, diag)

			continue
		}

		directives = append(directives, d)
	}

	return directives, diags
}

func TestScanDirectives_Literals(t *testing.T) {
	tests := []struct {
		name string
		line string
		want m.Directive
	}{
		{
			name: "include",
			line: `#include "globals.h"`,
			want: m.Directive{Kind: m.DirectiveInclude, Literal: "globals.h", Line: 1},
		},
		{
			name: "space after hash",
			line: `#  include "../parent/globals.h"`,
			want: m.Directive{Kind: m.DirectiveInclude, Literal: "../parent/globals.h", Line: 1},
		},
		{
			name: "indented with trailing comment",
			line: "\t#include \"a b/c.h\" // spaces kept",
			want: m.Directive{Kind: m.DirectiveInclude, Literal: "a b/c.h", Line: 1},
		},
		{
			name: "inherit",
			line: `inherit "lib/base.pike";`,
			want: m.Directive{Kind: m.DirectiveInherit, Literal: "lib/base.pike", Line: 1},
		},
		{
			name: "escaped quote kept raw",
			line: `#include "we\"ird.h"`,
			want: m.Directive{Kind: m.DirectiveInclude, Literal: `we\"ird.h`, Line: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			directives, diags := scanAll(t, tt.line)

			assert.Empty(t, diags)
			require.Len(t, directives, 1)
			assert.Equal(t, tt.want, directives[0])
		})
	}
}

func TestScanDirectives_Ignored(t *testing.T) {
	text := `// #include "line-comment.h"
/* #include "block.h"
#include "still-block.h" */
string s = "#include \"in-string.h\"";
#include <stdio.h>
inherit Stdio.File;
#includes "not-a-directive.h"
int inherit_count = 0;
`

	directives, diags := scanAll(t, text)

	assert.Empty(t, directives)
	assert.Empty(t, diags)
}

func TestScanDirectives_SourceOrderAndLines(t *testing.T) {
	text := `#include "first.h"

inherit "second.pike";
/* comment */ #include "third.h"
`

	directives, diags := scanAll(t, text)

	assert.Empty(t, diags)
	require.Len(t, directives, 3)
	assert.Equal(t, []string{"first.h", "second.pike", "third.h"},
		[]string{directives[0].Literal, directives[1].Literal, directives[2].Literal})
	assert.Equal(t, []int{1, 3, 4}, []int{directives[0].Line, directives[1].Line, directives[2].Line})
}

func TestScanDirectives_MalformedContinues(t *testing.T) {
	text := `#include "broken.h
#include bare.h
#include "good.h"
`

	directives, diags := scanAll(t, text)

	require.Len(t, diags, 2)
	assert.Equal(t, m.MalformedDirective, diags[0].Kind)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 2, diags[1].Line)
	assert.ErrorIs(t, diags[0], m.ErrMalformedDirective)

	require.Len(t, directives, 1)
	assert.Equal(t, "good.h", directives[0].Literal)
	assert.Equal(t, 3, directives[0].Line)
}

func TestScanDirectives_Restartable(t *testing.T) {
	seq := ScanDirectives("/ws/main.pike", "#include \"a.h\"\n#include \"b.h\"\n")

	count := func() int {
		n := 0
		for range seq {
			n++
		}

		return n
	}

	assert.Equal(t, 2, count())
	assert.Equal(t, 2, count())

	// stopping early must not panic
	for range seq {
		break
	}
}

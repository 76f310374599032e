package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeTable_LaterWins(t *testing.T) {
	first := NewScopeTable("/ws/first.h")
	first.Declare(Symbol{Name: "shared", Kind: SymbolConstant, File: "/ws/first.h", Line: 1})
	first.Declare(Symbol{Name: "only_first", Kind: SymbolConstant, File: "/ws/first.h", Line: 2})

	second := NewScopeTable("/ws/second.h")
	second.Declare(Symbol{Name: "shared", Kind: SymbolFunction, File: "/ws/second.h", Line: 5})

	scope := NewScopeTable("/ws/main.pike")
	scope.Merge(first)
	scope.Merge(second)
	scope.Merge(nil)

	sym, ok := scope.Lookup("shared")
	require.True(t, ok)
	assert.Equal(t, Path("/ws/second.h"), sym.File)
	assert.Equal(t, SymbolFunction, sym.Kind)

	require.Len(t, scope.Shadowed("shared"), 1)
	assert.Equal(t, Path("/ws/first.h"), scope.Shadowed("shared")[0].File)

	scope.Declare(Symbol{Name: "shared", Kind: SymbolConstant, File: "/ws/main.pike", Line: 9})

	sym, _ = scope.Lookup("shared")
	assert.Equal(t, Path("/ws/main.pike"), sym.File)
	assert.Len(t, scope.Shadowed("shared"), 2)

	assert.Equal(t, 2, scope.Len())
	assert.Equal(t, []string{"only_first", "shared"}, scope.Names())
}

func TestScopeTable_SameSymbolTwiceIsNotShadowed(t *testing.T) {
	common := NewScopeTable("/ws/common.h")
	common.Declare(Symbol{Name: "c", Kind: SymbolConstant, File: "/ws/common.h", Line: 1})

	scope := NewScopeTable("/ws/main.pike")
	scope.Merge(common)
	scope.Merge(common)

	assert.Empty(t, scope.Shadowed("c"))
	assert.Equal(t, 1, scope.Len())
}

func TestScopeTable_Empty(t *testing.T) {
	scope := NewScopeTable("/ws/empty.pike")

	_, ok := scope.Lookup("anything")
	assert.False(t, ok)
	assert.Empty(t, scope.Names())
	assert.Empty(t, scope.Symbols())
}

func TestDiagnostic_Error(t *testing.T) {
	diag := NewDiagnostic(PathNotFound, "/ws/main.pike", 3, "cannot resolve %q", "missing.h")

	assert.Equal(t, `/ws/main.pike:3: PathNotFound: cannot resolve "missing.h"`, diag.Error())
	assert.True(t, errors.Is(diag, ErrPathNotFound))
	assert.False(t, errors.Is(diag, ErrCyclicInclude))

	var nilDiag *Diagnostic
	assert.Empty(t, nilDiag.Error())
}

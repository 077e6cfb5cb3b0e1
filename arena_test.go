package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaFreeIsIdempotent(t *testing.T) {
	a := NewArena()
	a.Char("x", 'x')
	assert.Equal(t, 1, a.Len())

	a.Free()
	assert.Equal(t, 0, a.Len())
	assert.NotPanics(t, func() { a.Free() })
}

func TestArenaPanicsOnUseAfterFree(t *testing.T) {
	a := NewArena()
	a.Free()
	assert.Panics(t, func() { a.Char("x", 'x') })
}

func TestForwardDeclaredRecursiveGrammar(t *testing.T) {
	a := NewArena()
	defer a.Free()

	// paren := '(' paren ')' | 'x'
	paren := a.Forward("paren")
	a.Define(paren, a.Or("paren-body",
		a.Between("nested", a.Char("open", '('), paren, a.Char("close", ')')),
		a.Char("leaf", 'x'),
	))

	session := Parse(paren, []byte("((x))"))
	require.True(t, session.OK())
	assert.Equal(t, "((x))", session.Root.Text())
}

func TestInterpretingUndefinedForwardPanics(t *testing.T) {
	a := NewArena()
	defer a.Free()

	dangling := a.Forward("dangling")
	assert.Panics(t, func() { Parse(dangling, []byte("x")) })
}

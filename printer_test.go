package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSprintPlainShapesOneNodePerLine(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("ab", a.Char("a", 'a'), a.Char("b", 'b'))
	session := Parse(g, []byte("ab"))
	require.True(t, session.OK())

	out := sprintPlain(session.Root, 0)
	assert.Contains(t, out, "and[ab] (0..2)")
	assert.Contains(t, out, "char[a] (0..1) 'a'")
	assert.Contains(t, out, "char[b] (1..2) 'b'")
}

func TestPrintDoesNotPanicOnEmptyTree(t *testing.T) {
	assert.Equal(t, "<nil>", Print(nil))
	assert.Equal(t, "<nil>", PrintPlain(nil))
}

func TestPrintPlainMatchesSprintPlain(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("ab", a.Char("a", 'a'), a.Char("b", 'b'))
	session := Parse(g, []byte("ab"))
	require.True(t, session.OK())

	assert.Equal(t, sprintPlain(session.Root, 0), PrintPlain(session.Root))
}

func TestErrorStringFormatsLocation(t *testing.T) {
	err := &ParseError{Message: "Unexpected character", Line: 2, Column: 4, Expected: "`x`", Found: "y"}
	out := ErrorString("grammar.peg", err)
	assert.Contains(t, out, "grammar.peg:3:5")
	assert.Contains(t, out, "expected `x`, found y")
}

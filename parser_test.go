package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedFallsBackToNameThenTag(t *testing.T) {
	a := NewArena()
	defer a.Free()

	named := a.Char("opener", '(')
	assert.Equal(t, "opener", named.expected())

	unnamed := a.Char("", '(')
	assert.Equal(t, "char", unnamed.expected())

	overridden := a.Char("opener", '(')
	overridden.ExpectedOverride = "an opening paren"
	assert.Equal(t, "an opening paren", overridden.expected())
}

func TestWithActionChains(t *testing.T) {
	a := NewArena()
	defer a.Free()

	p := a.Char("x", 'x').WithAction(3)
	assert.Equal(t, 3, p.ActionTag)
}

func TestAndRequiresAtLeastOneOperand(t *testing.T) {
	a := NewArena()
	defer a.Free()
	assert.Panics(t, func() { a.And("empty") })
}

func TestOrRequiresAtLeastOneOperand(t *testing.T) {
	a := NewArena()
	defer a.Free()
	assert.Panics(t, func() { a.Or("empty") })
}

func TestFailAlwaysFailsWithMessage(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Fail("boom", "custom failure"), []byte("anything"))
	require.False(t, session.OK())
	assert.Equal(t, "custom failure", session.Err.Message)
}

func TestSucceedNeverConsumes(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Succeed("ok"), []byte("anything"))
	require.True(t, session.OK())
	assert.Equal(t, 0, session.Root.Len())
}

func TestEOIRequiresEndOfInput(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.EOI("end")
	require.True(t, Parse(g, []byte("")).OK())
	require.False(t, Parse(g, []byte("x")).OK())
}

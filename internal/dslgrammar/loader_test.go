package dslgrammar

import (
	"testing"

	peg "github.com/clarete/pegcombinator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCompilesArithmeticGrammar(t *testing.T) {
	a := peg.NewArena()
	defer a.Free()

	src := []byte(`
Expr   <- Term (("+" / "-") Term)*
Term   <- Digit+
Digit  <- [0-9]
`)
	rules, start, err := Load(a, src)
	require.NoError(t, err)
	assert.Equal(t, "Expr", start)
	require.Contains(t, rules, "Term")
	require.Contains(t, rules, "Digit")

	session := peg.Parse(rules[start], []byte("12+3-45"))
	require.True(t, session.OK())
	assert.Equal(t, 7, session.Root.Len())
}

func TestLoadRejectsUndefinedReference(t *testing.T) {
	a := peg.NewArena()
	defer a.Free()

	_, _, err := Load(a, []byte(`Expr <- Missing`))
	assert.Error(t, err)
}

func TestLoadRejectsDuplicateRule(t *testing.T) {
	a := peg.NewArena()
	defer a.Free()

	_, _, err := Load(a, []byte("A <- \"x\"\nA <- \"y\"\n"))
	assert.Error(t, err)
}

func TestLoadSupportsGroupingAndPredicates(t *testing.T) {
	a := peg.NewArena()
	defer a.Free()

	src := []byte(`Word <- &[a-z] ("cat" / "car") !"t"`)
	rules, start, err := Load(a, src)
	require.NoError(t, err)

	ok := peg.Parse(rules[start], []byte("car"))
	require.True(t, ok.OK())

	bad := peg.Parse(rules[start], []byte("cart"))
	require.False(t, bad.OK())
}

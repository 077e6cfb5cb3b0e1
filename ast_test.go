package peg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildDefaultFlattenDropsUntaggedLeaves exercises spec.md's AST
// round-trip property directly: a CPT made entirely of untagged nodes is
// "the CPT minus nodes whose action tag is none, flattened into their
// parent's children" -- with no action tag anywhere, every leaf drops out
// and the whole tree flattens away to nothing, yielding a null root.
func TestBuildDefaultFlattenDropsUntaggedLeaves(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Between("parens", a.Char("open", '('), a.Char("digit", '7'), a.Char("close", ')'))
	value, err := ParseAndBuild(g, []byte("(7)"), nil)
	require.NoError(t, err)
	assert.Nil(t, value)
}

// TestBuildDefaultFlattenPassesThroughTaggedChild confirms the other half
// of the default rule: an untagged wrapper with exactly one child that did
// contribute a value passes that value straight through.
func TestBuildDefaultFlattenPassesThroughTaggedChild(t *testing.T) {
	const actionDigit = 1

	a := NewArena()
	defer a.Free()

	digit := a.Char("digit", '7').WithAction(actionDigit)
	g := a.Between("parens", a.Char("open", '('), digit, a.Char("close", ')'))
	registry := &Actions{Tags: map[int]Action{
		actionDigit: func(node *CPT, children []any) (any, error) {
			return node.Text(), nil
		},
	}}

	value, err := ParseAndBuild(g, []byte("(7)"), registry)
	require.NoError(t, err)
	assert.Equal(t, "7", value)
}

func TestBuildActionCollapsesChildren(t *testing.T) {
	const actionSum = 1
	const actionDigit = 2

	a := NewArena()
	defer a.Free()

	digit := func(name string) *Parser { return a.Digit(name).WithAction(actionDigit) }
	g := a.And("sum", digit("lhs"), a.Char("plus", '+'), digit("rhs")).WithAction(actionSum)

	registry := &Actions{Tags: map[int]Action{
		actionDigit: func(node *CPT, children []any) (any, error) {
			return node, nil
		},
		actionSum: func(node *CPT, children []any) (any, error) {
			lhs := children[0].(*CPT)
			rhs := children[1].(*CPT)
			l, _ := strconv.Atoi(lhs.Text())
			r, _ := strconv.Atoi(rhs.Text())
			return l + r, nil
		},
	}}

	value, err := ParseAndBuild(g, []byte("3+4"), registry)
	require.NoError(t, err)
	assert.Equal(t, 7, value)
}

func TestBuildPropagatesActionError(t *testing.T) {
	const actionFail = 1

	a := NewArena()
	defer a.Free()

	g := a.Char("x", 'x').WithAction(actionFail)
	registry := &Actions{Tags: map[int]Action{
		actionFail: func(node *CPT, children []any) (any, error) {
			return nil, assert.AnError
		},
	}}

	_, err := ParseAndBuild(g, []byte("x"), registry)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuildEnterHookVisitsEveryNodePreOrder(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("ab", a.Char("a", 'a'), a.Char("b", 'b'))

	var tags []string
	registry := &Actions{
		EnterHook: func(n *CPT) { tags = append(tags, n.Tag) },
	}

	_, err := ParseAndBuild(g, []byte("ab"), registry)
	require.NoError(t, err)
	assert.Equal(t, []string{"and", "char", "char"}, tags)
}

func TestBuildOnFailedParseReturnsParseError(t *testing.T) {
	a := NewArena()
	defer a.Free()

	_, err := ParseAndBuild(a.Char("x", 'x'), []byte("y"), nil)
	require.Error(t, err)
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
}

func TestBuildNilRootYieldsNil(t *testing.T) {
	value, err := Build(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, value)
}

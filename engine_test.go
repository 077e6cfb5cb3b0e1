package peg

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalMatch(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Char("digit", '7'), []byte("7"))
	require.True(t, session.OK())
	assert.Equal(t, "char", session.Root.Tag)
	assert.Equal(t, "7", session.Root.Text())
	assert.Equal(t, 0, session.Root.Start)
	assert.Equal(t, 1, session.Root.End)
}

func TestTerminalMismatchReportsExpected(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Char("digit", '7'), []byte("x"))
	require.False(t, session.OK())
	assert.Equal(t, "`7`", session.Err.Expected)
	assert.Equal(t, "x", session.Err.Found)
}

func TestSequenceConcatenation(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("abc", a.Char("a", 'a'), a.Char("b", 'b'), a.Char("c", 'c'))
	session := Parse(g, []byte("abc"))
	require.True(t, session.OK())
	require.Len(t, session.Root.Children, 3)

	offset := session.Root.Start
	for _, child := range session.Root.Children {
		assert.Equal(t, offset, child.Start)
		offset = child.End
	}
	assert.Equal(t, session.Root.End, offset)
}

func TestChoiceReturnsFirstSuccess(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Or("ab", a.Char("a", 'a'), a.Char("b", 'b'))
	session := Parse(g, []byte("b"))
	require.True(t, session.OK())
	require.Len(t, session.Root.Children, 1)
	assert.Equal(t, "b", session.Root.Children[0].Text())
}

func TestChoiceExhaustedSynthesizesExpected(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Or("ab", a.Char("a", 'a'), a.Char("b", 'b'))
	session := Parse(g, []byte("c"))
	require.False(t, session.OK())
	assert.Contains(t, session.Err.Expected, "`a`")
	assert.Contains(t, session.Err.Expected, "`b`")
}

func TestOptionalNeverFails(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Optional("maybe-a", a.Char("a", 'a'))

	matched := Parse(g, []byte("a"))
	require.True(t, matched.OK())
	assert.Equal(t, 1, matched.Root.Len())

	unmatched := Parse(g, []byte("z"))
	require.True(t, unmatched.OK())
	assert.Equal(t, 0, unmatched.Root.Len())
	assert.Empty(t, unmatched.Root.Children)
}

func TestManyCollectsEveryChild(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Many("digits", a.Digit("d"))
	session := Parse(g, []byte("123x"))
	require.True(t, session.OK())
	assert.Len(t, session.Root.Children, 3)
	assert.Equal(t, 3, session.Root.Len())
}

func TestPlusRequiresAtLeastOne(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Plus("digits", a.Digit("d"))

	ok := Parse(g, []byte("1"))
	require.True(t, ok.OK())
	assert.Len(t, ok.Root.Children, 1)

	fail := Parse(g, []byte("x"))
	require.False(t, fail.OK())
}

func TestCountZeroTriviallySucceeds(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Count("zero", 0, a.Char("a", 'a'))
	session := Parse(g, []byte("zzz"))
	require.True(t, session.OK())
	assert.Equal(t, 0, session.Root.Len())
	assert.Empty(t, session.Root.Children)
}

func TestVisitorSumOfChildLens(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("abc", a.Char("a", 'a'), a.Char("b", 'b'), a.Char("c", 'c'))
	session := Parse(g, []byte("abc"))
	require.True(t, session.OK())

	var childLenSum int
	WalkFunc(session.Root, func(n *CPT) bool {
		if n == session.Root {
			for _, c := range n.Children {
				childLenSum += c.Len()
			}
		}
		return true
	}, nil)
	assert.Equal(t, session.Root.Len(), childLenSum)
}

func TestBetweenExposesOnlyContent(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Between("parens", a.Char("open", '('), a.Char("inner", 'a'), a.Char("close", ')'))
	session := Parse(g, []byte("(a)"))
	require.True(t, session.OK())
	assert.Equal(t, "between", session.Root.Tag)
	require.Len(t, session.Root.Children, 1)
	assert.Equal(t, "a", session.Root.Children[0].Text())
	assert.Equal(t, "(a)", session.Root.Text())
}

func evalChain(n *CPT) int {
	switch n.Tag {
	case "integer":
		v, err := strconv.Atoi(n.Text())
		if err != nil {
			panic(err)
		}
		return v
	case "chainl1_combined", "chainr1_combined":
		left := evalChain(n.Children[0])
		right := evalChain(n.Children[2])
		switch n.Children[1].Text() {
		case "-":
			return left - right
		case "^":
			result := 1
			for i := 0; i < right; i++ {
				result *= left
			}
			return result
		}
	}
	panic("unexpected node in evalChain: " + n.Tag)
}

func TestChainL1LeftAssociative(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.ChainL1("sub", a.Integer("n"), a.Char("-", '-'))
	session := Parse(g, []byte("1-2-3"))
	require.True(t, session.OK())
	assert.Equal(t, -4, evalChain(session.Root))
}

func TestChainR1RightAssociative(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.ChainR1("pow", a.Integer("n"), a.Char("^", '^'))
	session := Parse(g, []byte("2^3^2"))
	require.True(t, session.OK())
	assert.Equal(t, 512, evalChain(session.Root))
}

func TestLexemeTrimsSurroundingWhitespace(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("greeting", a.Lexeme("hello", a.String("hello-lit", "hello"), false), a.String("world", "world"))
	session := Parse(g, []byte("   hello   world"))
	require.True(t, session.OK())

	lexemeNode := session.Root.Children[0]
	assert.Equal(t, "lexeme", lexemeNode.Tag)
	assert.Equal(t, "hello", lexemeNode.SemanticText())
	assert.Equal(t, "world", session.Root.Children[1].Text())
}

func TestDelimitedRejectsTrailingDelimiter(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Delimited("list", a.Integer("n"), a.Char(",", ','))
	session := Parse(g, []byte("1,2,"))
	require.False(t, session.OK())
	assert.Equal(t, "Unexpected trailing delimiter", session.Err.Message)
}

func TestDelimitedWithoutTrailingDelimiter(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Delimited("list", a.Integer("n"), a.Char(",", ','))
	session := Parse(g, []byte("1,2,3"))
	require.True(t, session.OK())
	require.Len(t, session.Root.Children, 3)
}

func TestNotSucceedsOnMismatchOnly(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Not("not-a", a.Char("a", 'a'))

	ok := Parse(g, []byte("b"))
	require.True(t, ok.OK())
	assert.Equal(t, 0, ok.Root.Len())

	fail := Parse(g, []byte("a"))
	require.False(t, fail.OK())
}

func TestLookaheadConsumesNothing(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("peek-then-take", a.Lookahead("peek", a.Char("a", 'a')), a.Char("take", 'a'))
	session := Parse(g, []byte("a"))
	require.True(t, session.OK())
	assert.Equal(t, 0, session.Root.Children[0].Len())
	assert.Equal(t, 1, session.Root.Children[1].Len())
}

func TestSkipDiscardsChildrenButKeepsSpan(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Skip("ws", a.Space("s"))
	session := Parse(g, []byte("   x"))
	require.True(t, session.OK())
	assert.Empty(t, session.Root.Children)
	assert.Equal(t, 3, session.Root.Len())
}

func TestPassthruPreservesChildShapeAndAppliesAction(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.Passthru("renamed", a.Char("orig", 'x')).WithAction(9)
	session := Parse(g, []byte("x"))
	require.True(t, session.OK())
	assert.Equal(t, "char", session.Root.Tag)
	assert.Equal(t, "renamed", session.Root.Name)
	assert.Equal(t, 9, session.Root.ActionTag)
}

func TestIntegerLongestPrefix(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Integer("n"), []byte("-123abc"))
	require.True(t, session.OK())
	assert.Equal(t, "-123", session.Root.Text())
}

func TestDoubleRequiresAtLeastOneDigit(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Double("n"), []byte(".e5"))
	require.False(t, session.OK())
}

func TestDoubleLongestPrefix(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Double("n"), []byte("3.14e-2rest"))
	require.True(t, session.OK())
	assert.Equal(t, "3.14e-2", session.Root.Text())
}

func TestFurthestErrorSurvivesAbandonedAlternative(t *testing.T) {
	a := NewArena()
	defer a.Free()

	// "ax" fails deep inside the first alternative (second char mismatch),
	// while the second alternative fails immediately on the first byte.
	// The session-level error should report the deeper failure.
	first := a.And("ab", a.Char("a", 'a'), a.Char("b", 'b'))
	second := a.Char("z", 'z')
	g := a.Or("choice", first, second)

	session := Parse(g, []byte("ax"))
	require.False(t, session.OK())
	assert.Equal(t, 1, session.Err.InputPosition)
}

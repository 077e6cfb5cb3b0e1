package peg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCPTSemanticSpanTrimsLexemeOffsets(t *testing.T) {
	n := newLeaf("lexeme", "greeting", []byte("  hi  "), 0, 6, 0, 0, -1)
	n.SemanticStartOffset = 2
	n.SemanticEndOffset = 2
	assert.Equal(t, "  hi  ", n.Text())
	assert.Equal(t, "hi", n.SemanticText())
}

func TestCPTLenMatchesSpan(t *testing.T) {
	n := newLeaf("char", "x", []byte("abc"), 1, 2, 0, 1, -1)
	assert.Equal(t, 1, n.Len())
	assert.Equal(t, "b", n.Text())
}

func TestCPTSemanticSpanDefaultsToFullSpan(t *testing.T) {
	n := newLeaf("char", "x", []byte("abc"), 0, 3, 0, 0, -1)
	assert.Equal(t, n.Text(), n.SemanticText())
}

// cptShape is a comparable, exported-only projection of a *CPT's tag
// structure. CPT itself carries an unexported `input` field, so a bare
// cmp.Diff(cpt1, cpt2) would panic; go-cmp is a better fit here than
// reflect.DeepEqual once the tree gets a few levels deep, since a failing
// assert.Equal on nested structs prints a much less readable diff.
type cptShape struct {
	Tag      string
	Text     string
	Children []cptShape
}

func shapeOf(n *CPT) cptShape {
	s := cptShape{Tag: n.Tag}
	if len(n.Children) == 0 {
		s.Text = n.Text()
	}
	for _, c := range n.Children {
		s.Children = append(s.Children, shapeOf(c))
	}
	return s
}

func TestCPTShapeMatchesExpectedTreeForNestedSequence(t *testing.T) {
	a := NewArena()
	defer a.Free()

	g := a.And("assign", a.Alpha("lhs"), a.Char("eq", '='), a.Or("rhs", a.Digit("digit"), a.Alpha("ident")))
	session := Parse(g, []byte("x=7"))
	require.True(t, session.OK())

	want := cptShape{
		Tag: "and",
		Children: []cptShape{
			{Tag: "alpha", Text: "x"},
			{Tag: "char", Text: "="},
			{Tag: "or", Children: []cptShape{
				{Tag: "digit", Text: "7"},
			}},
		},
	}
	if diff := cmp.Diff(want, shapeOf(session.Root)); diff != "" {
		t.Errorf("CPT shape mismatch (-want +got):\n%s", diff)
	}
}

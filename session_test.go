package peg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFurthestErrorOfferKeepsDeepest(t *testing.T) {
	var fe furthestError
	fe.offer(3, ParseError{Message: "shallow enough"})
	fe.offer(1, ParseError{Message: "too shallow, ignored"})
	assert.Equal(t, "shallow enough", fe.err.Message)

	fe.offer(5, ParseError{Message: "deeper, wins"})
	assert.Equal(t, "deeper, wins", fe.err.Message)
}

func TestFurthestErrorTieBreaksToNewest(t *testing.T) {
	var fe furthestError
	fe.offer(2, ParseError{Message: "first"})
	fe.offer(2, ParseError{Message: "second"})
	assert.Equal(t, "second", fe.err.Message)
}

func TestFurthestErrorSnapshotRestore(t *testing.T) {
	var fe furthestError
	fe.offer(1, ParseError{Message: "base"})
	snap := fe.snapshot()
	fe.offer(5, ParseError{Message: "trial, should be discarded"})
	fe.restore(snap)
	assert.Equal(t, "base", fe.err.Message)
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	a := NewArena()
	defer a.Free()

	session := Parse(a.Char("x", 'x'), []byte("x"))
	require.True(t, session.OK())
	session.Close()
	assert.Nil(t, session.Root)
	assert.NotPanics(t, func() { session.Close() })
}

func TestSnippetHandlesEndOfInput(t *testing.T) {
	assert.Equal(t, "<end of input>", snippet([]byte("abc"), 3))
	assert.Equal(t, "abc", snippet([]byte("abc"), 0))
}

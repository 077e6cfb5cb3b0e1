package peg

import (
	"fmt"
	"unicode/utf8"
)

// maxFoundSnippet bounds the "found" text copied into an error record, the
// way original_source/include/easy_pc/easy_pc.h documents `found` as "a
// small snippet" without pinning an exact length; 32 is generous enough for
// a diagnostic line and small enough to never dominate an error message.
const maxFoundSnippet = 32

// ParseError is the error record spec.md §6 describes as "wire-visible to
// callers": message, input position, column, expected and found text. It
// is returned from a Session when the top-level parse did not succeed.
type ParseError struct {
	Message      string
	InputPosition int
	Line         int
	Column       int
	Expected     string
	Found        string
}

func (e *ParseError) Error() string {
	if e.Expected == "" {
		return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
	}
	return fmt.Sprintf("%s at %d:%d: expected %s, found %s", e.Message, e.Line, e.Column, e.Expected, e.Found)
}

// furthestError is the session-wide "deepest failure seen" record tracked
// per spec.md §3 ("Session error"). It is held by value so snapshot/restore
// around recoverable combinators (Or, Optional, Lookahead, Not, Between,
// Lexeme, the Delimited separator probe, the chain operator probe, Skip) is
// a cheap struct copy, mirroring the ffp/lastErr pair base_parser.go keeps
// on BaseParser.
type furthestError struct {
	set bool
	pos int
	err ParseError
}

// offer applies the update rule from spec.md §4.2: replace the stored
// furthest error iff the new one's position is >= the stored one's. Ties
// favor the newer (later-recorded) error, which is what ">=" gives us.
func (f *furthestError) offer(pos int, err ParseError) {
	if !f.set || pos >= f.pos {
		f.set = true
		f.pos = pos
		f.err = err
	}
}

func (f *furthestError) snapshot() furthestError {
	return *f
}

func (f *furthestError) restore(snap furthestError) {
	*f = snap
}

func snippet(input []byte, pos int) string {
	end := pos
	for i := 0; i < maxFoundSnippet && end < len(input); i++ {
		_, size := utf8.DecodeRune(input[end:])
		if size <= 0 {
			size = 1
		}
		end += size
	}
	if end > len(input) {
		end = len(input)
	}
	if pos >= len(input) {
		return "<end of input>"
	}
	return string(input[pos:end])
}

// Session owns every CPT node and error allocated while parsing one input
// with one top-level Parser, per spec.md §3 "Lifecycle summary". It is
// returned by Parse and must be released with Close (idempotent, mirroring
// the C original's easy_pc_parse_session_destroy / double-free safety
// requirement in spec.md §8).
type Session struct {
	input  []byte
	Root   *CPT
	Err    *ParseError
	closed bool
}

// Close releases session-owned resources. It is safe to call more than
// once; only the first call has any effect, satisfying the idempotence
// property spec.md §8 requires of the session destructor.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.Root = nil
	s.Err = nil
}

// OK reports whether the session produced a CPT root rather than an error.
func (s *Session) OK() bool {
	return s.Err == nil
}

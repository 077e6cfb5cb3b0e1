package peg

// Arena owns every Parser value created through its constructors, per
// spec.md §4.3. Parser values form a DAG (shared sub-parsers, recursive
// rules via Forward/Define), and the arena is the single owner: nothing
// else in this package retains a Parser outside of one built through an
// Arena. Go's garbage collector reclaims the underlying memory; Free only
// needs to drop the arena's own references so nothing keeps the graph
// alive past the point the caller is done with it — but the explicit
// lifecycle is kept because spec.md models this as a bulk owner with a
// single freeing point regardless of host language, and the Free call
// doubles as the "don't mutate after a parse has started" boundary
// (spec.md §5).
type Arena struct {
	owned []*Parser
	freed bool
}

// NewArena creates an empty grammar arena.
func NewArena() *Arena {
	return &Arena{}
}

func (a *Arena) add(p *Parser) *Parser {
	if a.freed {
		panic("peg: Arena used after Free")
	}
	a.owned = append(a.owned, p)
	return p
}

// Free releases every parser value the arena owns. It is idempotent:
// calling Free twice is a no-op the second time, matching the idempotence
// property spec.md §8 requires of destructors under a leak checker.
func (a *Arena) Free() {
	if a.freed {
		return
	}
	a.freed = true
	a.owned = nil
}

// Len reports how many parser values the arena currently owns (0 after Free).
func (a *Arena) Len() int {
	return len(a.owned)
}

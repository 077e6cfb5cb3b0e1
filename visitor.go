package peg

// CPTVisitor is the depth-first walk protocol over a CPT, grounded on
// original_source/include/easy_pc/easy_pc.h's epc_cpt_visitor_t
// (enter_node/exit_node pair with opaque user_data) and adapted onto the
// teacher's WalkGrammarNode/WalkSequenceNode dispatch style in
// grammar_ast_visitor.go. Unlike the teacher's AST, a CPT has exactly one
// node shape, so there is a single Enter/Exit pair rather than one method
// per node type.
type CPTVisitor interface {
	// EnterNode is called before a node's children are visited. Returning
	// false skips the children (and the matching ExitNode call for them,
	// though ExitNode still fires for this node itself).
	EnterNode(n *CPT) bool
	ExitNode(n *CPT)
}

// Walk visits root and every descendant in depth-first pre/post order.
func Walk(v CPTVisitor, root *CPT) {
	if root == nil {
		return
	}
	if v.EnterNode(root) {
		for _, child := range root.Children {
			Walk(v, child)
		}
	}
	v.ExitNode(root)
}

// funcVisitor adapts two plain functions into a CPTVisitor, the way a
// caller who only cares about one hook can avoid writing a no-op method
// for the other.
type funcVisitor struct {
	enter func(*CPT) bool
	exit  func(*CPT)
}

func (f *funcVisitor) EnterNode(n *CPT) bool {
	if f.enter == nil {
		return true
	}
	return f.enter(n)
}

func (f *funcVisitor) ExitNode(n *CPT) {
	if f.exit != nil {
		f.exit(n)
	}
}

// WalkFunc is a convenience wrapper around Walk for callers that only need
// one or both hooks without declaring a named type.
func WalkFunc(root *CPT, enter func(*CPT) bool, exit func(*CPT)) {
	Walk(&funcVisitor{enter: enter, exit: exit}, root)
}

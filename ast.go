package peg

import "fmt"

// Action turns one CPT node and its already-built children into a single
// value. children holds whatever each child contributed to the stack: the
// result of the child's own Action if it had one, or its single child's
// value if it was an untagged single-child wrapper (Optional, Between,
// Lexeme and friends all produce exactly one child, so they pass through by
// default). An untagged node with no children contributes nothing at all,
// so a leaf never shows up in a sibling's children unless it carries an
// action.
type Action func(node *CPT, children []any) (any, error)

// Actions is the AST hook registry: Tags maps a Parser's ActionTag to the
// function that collapses a node (and its children) into an AST value, and
// EnterHook, if set, runs on every CPT node in pre-order before its
// children are visited. Nodes whose ActionTag is -1, or whose tag has no
// entry in Tags, fall back to the default flattening rule implemented by
// Build.
type Actions struct {
	Tags      map[int]Action
	EnterHook func(*CPT)
}

// astBuilder is the stack machine spec.md §4.4 describes: EnterNode pushes
// a placeholder marker (here, the current stack depth) and ExitNode pops
// back to that marker, collects everything above it as this node's
// children, and pushes either the registered action's result or a
// default-flattened value.
type astBuilder struct {
	registry *Actions
	values   []any
	marks    []int
	err      error
}

// EnterNode runs the registry's EnterHook, if any, before pushing this
// node's placeholder marker, the way epc_ast_builder_enter_node_cb calls
// registry->enter_node right after epc_ast_builder_push_placeholder --
// scoped context management (symbol tables, etc.) hangs off this callback,
// not off the stack machine itself.
func (b *astBuilder) EnterNode(n *CPT) bool {
	if b.err != nil {
		return false
	}
	if b.registry != nil && b.registry.EnterHook != nil {
		b.registry.EnterHook(n)
	}
	b.marks = append(b.marks, len(b.values))
	return true
}

func (b *astBuilder) ExitNode(n *CPT) {
	if b.err != nil {
		return
	}
	top := len(b.marks) - 1
	mark := b.marks[top]
	b.marks = b.marks[:top]

	children := append([]any(nil), b.values[mark:]...)
	b.values = b.values[:mark]

	if n.ActionTag >= 0 && b.registry != nil {
		if fn, ok := b.registry.Tags[n.ActionTag]; ok {
			v, err := fn(n, children)
			if err != nil {
				b.err = err
				return
			}
			b.values = append(b.values, v)
			return
		}
	}

	switch len(children) {
	case 0:
		// No action, no children: nothing to flatten back onto the
		// stack. A leaf without an action tag vanishes from the AST
		// entirely instead of surviving as a surrogate CPT value.
	case 1:
		b.values = append(b.values, children[0])
	default:
		b.values = append(b.values, children...)
	}
}

// Build walks root's CPT and folds it into a single AST value using
// registry. A nil root (a session whose parse failed) yields (nil, nil):
// callers are expected to have already checked Session.Err. Build reports
// an error if more than one value remains on the stack once the walk is
// done, per spec.md §4.4's "more than one root is an error" rule; zero
// values is not an error, it happens for a root that matched nothing and
// had no action (e.g. a bare Succeed at the top of the grammar).
func Build(registry *Actions, root *CPT) (any, error) {
	if root == nil {
		return nil, nil
	}
	b := &astBuilder{registry: registry}
	Walk(b, root)
	if b.err != nil {
		return nil, b.err
	}
	switch len(b.values) {
	case 0:
		return nil, nil
	case 1:
		return b.values[0], nil
	default:
		return nil, fmt.Errorf("peg: ast builder left %d values on the stack, want exactly one root", len(b.values))
	}
}

// ParseAndBuild runs Parse then Build in sequence, the way a caller who
// only wants a finished AST (and not the intermediate CPT) normally calls
// this package. The returned error is either the session's ParseError or a
// build-time error from Build; both satisfy the standard error interface.
func ParseAndBuild(root *Parser, input []byte, registry *Actions) (any, error) {
	session := Parse(root, input)
	defer session.Close()
	if !session.OK() {
		return nil, session.Err
	}
	return Build(registry, session.Root)
}

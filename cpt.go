package peg

// CPT is one node of the Concrete Parse Tree a successful parse produces.
// Its fields follow original_source/include/easy_pc/easy_pc.h's
// epc_cpt_node_t almost verbatim (tag, name, content span, semantic trim
// offsets, line/col, children, action tag), adapted from raw-pointer-into-
// input-buffer to a Go byte-offset pair so the node never outlives Go's own
// garbage collector's view of the backing array.
type CPT struct {
	Tag  string
	Name string

	// Start/End delimit the matched span as byte offsets into the
	// session's input. For nodes that matched zero-length (failed
	// Optional, empty Many, successful Lookahead/Not, Succeed), Start ==
	// End and both point at the cursor position the attempt began at.
	Start int
	End   int

	// SemanticStartOffset/SemanticEndOffset trim the outer span down to
	// the "semantic" span for Lexeme nodes: semantic content is
	// input[Start+SemanticStartOffset : End-SemanticEndOffset].
	SemanticStartOffset int
	SemanticEndOffset   int

	Line int
	Col  int

	Children []*CPT

	// ActionTag is copied from the Parser that produced this node; -1
	// means "none" (no action attached).
	ActionTag int

	input []byte
}

// Len returns the number of bytes the node's outer span covers.
func (n *CPT) Len() int {
	return n.End - n.Start
}

// Bytes returns the raw matched span.
func (n *CPT) Bytes() []byte {
	return n.input[n.Start:n.End]
}

// Text is a convenience string conversion of Bytes.
func (n *CPT) Text() string {
	return string(n.Bytes())
}

// SemanticBytes returns the span with Lexeme's leading/trailing trim
// applied, per spec.md §3's invariant that
// "semantic span is content[semantic_start_offset .. len - semantic_end_offset]".
func (n *CPT) SemanticBytes() []byte {
	return n.input[n.Start+n.SemanticStartOffset : n.End-n.SemanticEndOffset]
}

func (n *CPT) SemanticText() string {
	return string(n.SemanticBytes())
}

func newLeaf(tag, name string, input []byte, start, end, line, col, actionTag int) *CPT {
	return &CPT{
		Tag:       tag,
		Name:      name,
		Start:     start,
		End:       end,
		Line:      line,
		Col:       col,
		ActionTag: actionTag,
		input:     input,
	}
}

func newNode(tag, name string, input []byte, start, end, line, col, actionTag int, children ...*CPT) *CPT {
	n := newLeaf(tag, name, input, start, end, line, col, actionTag)
	n.Children = children
	return n
}

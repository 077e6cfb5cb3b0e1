// Package dslgrammar loads a small PEG grammar description format and
// compiles it into a runnable parser built from package peg's own
// combinators. It exists to give pegcombinator a realistic caller that
// exercises Forward/Define recursion, every structural combinator and
// the stack-machine AST builder, without reimplementing a full grammar
// compiler or code generator.
package dslgrammar

type nodeKind int

const (
	nRef nodeKind = iota
	nLit
	nClass
	nDot
	nSeq
	nChoice
	nStar
	nPlus
	nOpt
	nAnd
	nNot
)

// exprNode is the intermediate representation of one rule body, built
// from the meta-grammar's parse tree before being compiled into actual
// peg.Parser values.
type exprNode struct {
	kind  nodeKind
	ref   string
	lit   string
	set   string
	item  *exprNode
	items []*exprNode
}

type ruleDecl struct {
	name string
	body *exprNode
}

type grammarAST struct {
	rules map[string]*exprNode
	order []string
}

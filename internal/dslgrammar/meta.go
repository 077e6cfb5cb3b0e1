package dslgrammar

import (
	"fmt"
	"strings"

	peg "github.com/clarete/pegcombinator"
)

const (
	actRefTag = iota
	actLitTag
	actClassTag
	actDotTag
	actSuffixedTag
	actPrefixedTag
	actSequenceTag
	actChoiceItemTag
	actAltListTag
	actChoiceTag
	actRuleTag
	actGrammarTag
)

// metaGrammar is the bootstrap grammar, written against package peg's own
// combinators, that recognizes the textual .peg format accepted by Load.
//
//	Grammar    <- Rule+
//	Rule       <- Identifier "<-" Expression
//	Expression <- Sequence ("/" Sequence)*
//	Sequence   <- Prefixed+
//	Prefixed   <- ("&" / "!")? Suffixed
//	Suffixed   <- Primary ("*" / "+" / "?")?
//	Primary    <- Identifier / StringLit / CharClass / "." / "(" Expression ")"
type metaGrammar struct {
	arena *peg.Arena
	start *peg.Parser
}

func newMetaGrammar() *metaGrammar {
	a := peg.NewArena()

	lex := func(name string, p *peg.Parser) *peg.Parser {
		return a.Lexeme(name, p, true)
	}

	identStart := a.Or("ident-start", a.Alpha("alpha"), a.Char("underscore", '_'))
	identCont := a.Many("ident-cont", a.Or("ident-char", a.Alphanum("alnum"), a.Char("underscore2", '_')))
	identifier := lex("identifier", a.And("ident", identStart, identCont)).WithAction(actRefTag)

	stringLit := lex("string-lit", a.Between("string",
		a.Char("dq-open", '"'),
		a.Many("string-body", a.NoneOf("not-dq", "\"")),
		a.Char("dq-close", '"'))).WithAction(actLitTag)

	charClass := lex("char-class", a.Between("class",
		a.Char("lb", '['),
		a.Many("class-body", a.NoneOf("not-rb", "]")),
		a.Char("rb", ']'))).WithAction(actClassTag)

	dot := lex("dot", a.Char("dot-char", '.')).WithAction(actDotTag)

	arrow := lex("arrow", a.String("arrow-lit", "<-"))
	slash := lex("slash", a.Char("slash-char", '/'))
	lparen := lex("lparen", a.Char("lp", '('))
	rparen := lex("rparen", a.Char("rp", ')'))

	expression := a.Forward("expression")

	group := a.Between("group", lparen, expression, rparen)
	primary := a.Or("primary", identifier, stringLit, charClass, dot, group)

	suffixOp := a.Optional("suffix", lex("suffix-op", a.OneOf("suffix-set", "*+?")))
	suffixed := a.And("suffixed", primary, suffixOp).WithAction(actSuffixedTag)

	prefixOp := a.Optional("prefix", lex("prefix-op", a.OneOf("prefix-set", "&!")))
	prefixed := a.And("prefixed", prefixOp, suffixed).WithAction(actPrefixedTag)

	sequence := a.Plus("sequence", prefixed).WithAction(actSequenceTag)

	choiceItem := a.And("choice-item", slash, sequence).WithAction(actChoiceItemTag)
	choiceRest := a.Many("choice-rest", choiceItem).WithAction(actAltListTag)
	choice := a.And("choice", sequence, choiceRest).WithAction(actChoiceTag)
	a.Define(expression, choice)

	rule := a.And("rule", identifier, arrow, expression).WithAction(actRuleTag)
	grammar := a.And("grammar", a.Plus("rules", rule), a.EOI("eof")).WithAction(actGrammarTag)

	return &metaGrammar{arena: a, start: grammar}
}

func metaActions() *peg.Actions {
	return &peg.Actions{Tags: map[int]peg.Action{
		actRefTag:        actRef,
		actLitTag:        actLit,
		actClassTag:      actClass,
		actDotTag:        actDot,
		actSuffixedTag:   actSuffixed,
		actPrefixedTag:   actPrefixed,
		actSequenceTag:   actSequence,
		actChoiceItemTag: actChoiceItem,
		actAltListTag:    actAltList,
		actChoiceTag:     actChoice,
		actRuleTag:       actRule,
		actGrammarTag:    actGrammar,
	}}
}

func actRef(node *peg.CPT, children []any) (any, error) {
	return &exprNode{kind: nRef, ref: node.SemanticText()}, nil
}

func actLit(node *peg.CPT, children []any) (any, error) {
	body := node.Children[0].Children[0]
	return &exprNode{kind: nLit, lit: body.Text()}, nil
}

func actClass(node *peg.CPT, children []any) (any, error) {
	body := node.Children[0].Children[0]
	return &exprNode{kind: nClass, set: body.Text()}, nil
}

func actDot(node *peg.CPT, children []any) (any, error) {
	return &exprNode{kind: nDot}, nil
}

// optionalOpText reads the matched operator text straight off the CPT tree
// of an Optional("*+?" or "&!") sub-parser, rather than off the AST values
// array: the operator's own terminal carries no action tag, so an untagged
// empty stack entry (per ast.go's default flattening) never reaches the
// suffixed/prefixed action's children slice to index into. opt is the
// "suffix"/"prefix" Optional node itself; it has one CPT child (the
// lexeme wrapping the matched character) when the operator matched, zero
// when it didn't.
func optionalOpText(opt *peg.CPT) (string, bool) {
	if len(opt.Children) == 0 {
		return "", false
	}
	return opt.Children[0].SemanticText(), true
}

func actSuffixed(node *peg.CPT, children []any) (any, error) {
	base := children[0].(*exprNode)
	if op, ok := optionalOpText(node.Children[1]); ok {
		switch op {
		case "*":
			return &exprNode{kind: nStar, item: base}, nil
		case "+":
			return &exprNode{kind: nPlus, item: base}, nil
		case "?":
			return &exprNode{kind: nOpt, item: base}, nil
		}
	}
	return base, nil
}

func actPrefixed(node *peg.CPT, children []any) (any, error) {
	base := children[0].(*exprNode)
	if op, ok := optionalOpText(node.Children[0]); ok {
		switch op {
		case "&":
			return &exprNode{kind: nAnd, item: base}, nil
		case "!":
			return &exprNode{kind: nNot, item: base}, nil
		}
	}
	return base, nil
}

func actSequence(node *peg.CPT, children []any) (any, error) {
	if len(children) == 1 {
		return children[0], nil
	}
	items := make([]*exprNode, len(children))
	for i, c := range children {
		items[i] = c.(*exprNode)
	}
	return &exprNode{kind: nSeq, items: items}, nil
}

func actChoiceItem(node *peg.CPT, children []any) (any, error) {
	// The leading "/" is an untagged terminal and contributes nothing to
	// children, so the sequence value is the only entry.
	return children[0], nil
}

func actAltList(node *peg.CPT, children []any) (any, error) {
	items := make([]*exprNode, len(children))
	for i, c := range children {
		items[i] = c.(*exprNode)
	}
	return items, nil
}

func actChoice(node *peg.CPT, children []any) (any, error) {
	first := children[0].(*exprNode)
	rest, _ := children[1].([]*exprNode)
	if len(rest) == 0 {
		return first, nil
	}
	items := append([]*exprNode{first}, rest...)
	return &exprNode{kind: nChoice, items: items}, nil
}

func actRule(node *peg.CPT, children []any) (any, error) {
	// The "<-" arrow between identifier and expression is an untagged
	// terminal and contributes nothing to children.
	name := children[0].(*exprNode).ref
	body := children[1].(*exprNode)
	return &ruleDecl{name: name, body: body}, nil
}

func actGrammar(node *peg.CPT, children []any) (any, error) {
	// The trailing EOI marker is an untagged leaf and contributes
	// nothing to children, so every entry here is a rule declaration.
	g := &grammarAST{rules: make(map[string]*exprNode, len(children)), order: make([]string, 0, len(children))}
	for _, d := range children {
		decl := d.(*ruleDecl)
		if _, exists := g.rules[decl.name]; exists {
			return nil, fmt.Errorf("dslgrammar: rule %q redefined", decl.name)
		}
		g.rules[decl.name] = decl.body
		g.order = append(g.order, decl.name)
	}
	return g, nil
}

func expandClass(raw string) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if i+2 < len(raw) && raw[i+1] == '-' {
			lo, hi := raw[i], raw[i+2]
			for c := lo; c <= hi; c++ {
				sb.WriteByte(c)
				if c == 0xff {
					break
				}
			}
			i += 2
			continue
		}
		sb.WriteByte(raw[i])
	}
	return sb.String()
}

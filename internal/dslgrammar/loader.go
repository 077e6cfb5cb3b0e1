package dslgrammar

import (
	"fmt"

	peg "github.com/clarete/pegcombinator"
)

// Load parses a .peg grammar description and compiles every rule it
// declares into a peg.Parser, registered in the given arena. The returned
// start name is the first rule declared in the source, by convention the
// grammar's entry point.
func Load(a *peg.Arena, src []byte) (rules map[string]*peg.Parser, start string, err error) {
	meta := newMetaGrammar()
	defer meta.arena.Free()

	value, perr := peg.ParseAndBuild(meta.start, src, metaActions())
	if perr != nil {
		return nil, "", perr
	}

	gram, ok := value.(*grammarAST)
	if !ok || len(gram.order) == 0 {
		return nil, "", fmt.Errorf("dslgrammar: grammar declares no rules")
	}

	placeholders := make(map[string]*peg.Parser, len(gram.order))
	for _, name := range gram.order {
		placeholders[name] = a.Forward(name)
	}

	for _, name := range gram.order {
		compiled, cerr := compileExpr(a, placeholders, gram.rules[name])
		if cerr != nil {
			return nil, "", cerr
		}
		a.Define(placeholders[name], compiled)
	}

	return placeholders, gram.order[0], nil
}

func compileExpr(a *peg.Arena, rules map[string]*peg.Parser, n *exprNode) (*peg.Parser, error) {
	switch n.kind {
	case nRef:
		p, ok := rules[n.ref]
		if !ok {
			return nil, fmt.Errorf("dslgrammar: undefined rule reference %q", n.ref)
		}
		return p, nil
	case nLit:
		return a.String("", n.lit), nil
	case nClass:
		return a.OneOf("", expandClass(n.set)), nil
	case nDot:
		return a.AnyChar(""), nil
	case nSeq:
		sub, err := compileAll(a, rules, n.items)
		if err != nil {
			return nil, err
		}
		return a.And("", sub...), nil
	case nChoice:
		sub, err := compileAll(a, rules, n.items)
		if err != nil {
			return nil, err
		}
		return a.Or("", sub...), nil
	case nStar:
		sub, err := compileExpr(a, rules, n.item)
		if err != nil {
			return nil, err
		}
		return a.Many("", sub), nil
	case nPlus:
		sub, err := compileExpr(a, rules, n.item)
		if err != nil {
			return nil, err
		}
		return a.Plus("", sub), nil
	case nOpt:
		sub, err := compileExpr(a, rules, n.item)
		if err != nil {
			return nil, err
		}
		return a.Optional("", sub), nil
	case nAnd:
		sub, err := compileExpr(a, rules, n.item)
		if err != nil {
			return nil, err
		}
		return a.Lookahead("", sub), nil
	case nNot:
		sub, err := compileExpr(a, rules, n.item)
		if err != nil {
			return nil, err
		}
		return a.Not("", sub), nil
	}
	return nil, fmt.Errorf("dslgrammar: unrecognized expression node")
}

func compileAll(a *peg.Arena, rules map[string]*peg.Parser, items []*exprNode) ([]*peg.Parser, error) {
	out := make([]*peg.Parser, len(items))
	for i, it := range items {
		p, err := compileExpr(a, rules, it)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

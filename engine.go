package peg

import "strings"

// parseCtx threads the cursor and the session-wide furthest-error slot
// through one top-level Parse call, mirroring the pair base_parser.go keeps
// on BaseParser (cursor + ffp/lastErr) but without the generic ParserFn/
// Backtrackable machinery: this engine interprets one concrete *Parser
// variant set, so a plain struct plus a recursive dispatch function is all
// spec.md §4 needs.
type parseCtx struct {
	input []byte
	cur   *cursor
	fe    furthestError
}

// fail builds a ParseError at the cursor's current position, offers it to
// the furthest-error slot, and returns it. Every call site invokes this
// before any cursor advance for the failed attempt, so InputPosition always
// matches where the mismatch was detected, never a recovered position.
func (ctx *parseCtx) fail(msg, expected string) *ParseError {
	err := ParseError{
		Message:       msg,
		InputPosition: ctx.cur.pos,
		Line:          ctx.cur.line,
		Column:        ctx.cur.column(),
		Expected:      expected,
		Found:         snippet(ctx.input, ctx.cur.pos),
	}
	ctx.fe.offer(err.InputPosition, err)
	return &err
}

// reoffer re-records an error that already exists (propagated from a child)
// at its own position, used after a combinator has reset the furthest-error
// slot to a pre-attempt snapshot but still needs to propagate that child's
// failure to its own caller (Lookahead, Not).
func (ctx *parseCtx) reoffer(err *ParseError) {
	ctx.fe.offer(err.InputPosition, *err)
}

func (ctx *parseCtx) leaf(tag string, p *Parser, start mark, end int) *CPT {
	return newLeaf(tag, p.Name, ctx.input, start.pos, end, start.line, start.pos-start.lineStart, p.ActionTag)
}

func (ctx *parseCtx) node(tag string, p *Parser, start mark, end int, children ...*CPT) *CPT {
	n := ctx.leaf(tag, p, start, end)
	n.Children = children
	return n
}

// withFurthestGuard implements the snapshot/restore discipline spec.md §4.2
// assigns to the combinators that may try and abandon alternatives (Or,
// Optional, Between, Lexeme, Skip, and narrowly the separator/operator
// probe inside Delimited and the chain combinators): snapshot before the
// attempt, restore it if the attempt succeeds (discarding whatever trial
// errors got offered along the way), leave it alone on failure (the newest
// offered error is the useful one).
func withFurthestGuard(ctx *parseCtx, fn func() (*CPT, *ParseError)) (*CPT, *ParseError) {
	snap := ctx.fe.snapshot()
	node, err := fn()
	if err == nil {
		ctx.fe.restore(snap)
	}
	return node, err
}

// Parse runs root against input and returns a Session. The session's Err,
// when set, is always the furthest error seen across the whole attempt
// (ctx.fe), not merely the error the top-level parser happened to return,
// per spec.md §3 "the furthest error is what the caller should display".
func Parse(root *Parser, input []byte) *Session {
	ctx := &parseCtx{input: input, cur: newCursor(input)}
	node, err := parse(ctx, root)
	s := &Session{input: input}
	if err != nil {
		if ctx.fe.set {
			e := ctx.fe.err
			s.Err = &e
		} else {
			s.Err = err
		}
		return s
	}
	s.Root = node
	return s
}

func parse(ctx *parseCtx, raw *Parser) (*CPT, *ParseError) {
	p := raw.resolve()
	switch p.Kind {
	case KChar:
		return ctx.parseChar(p)
	case KString:
		return ctx.parseString(p)
	case KCharRange:
		return ctx.parseCharRange(p)
	case KOneOf:
		return ctx.parseOneOf(p)
	case KNoneOf:
		return ctx.parseNoneOf(p)
	case KDigit:
		return ctx.parseClass(p, "digit", isDigitByte, "digit")
	case KAlpha:
		return ctx.parseClass(p, "alpha", isAlphaByte, "letter")
	case KAlphanum:
		return ctx.parseClass(p, "alphanum", isAlphanumByte, "letter or digit")
	case KHexDigit:
		return ctx.parseClass(p, "hex_digit", isHexByte, "hex digit")
	case KSpace:
		return ctx.parseClass(p, "space", isSpaceByte, "whitespace")
	case KAnyChar:
		return ctx.parseAnyChar(p)
	case KInteger:
		return ctx.parseInteger(p)
	case KDouble:
		return ctx.parseDouble(p)
	case KEOI:
		return ctx.parseEOI(p)
	case KSucceed:
		return ctx.parseSucceed(p)
	case KFail:
		return ctx.parseFail(p)
	case KAnd:
		return ctx.parseAnd(p)
	case KOr:
		return ctx.parseOr(p)
	case KMany:
		return ctx.parseMany(p)
	case KPlus:
		return ctx.parsePlus(p)
	case KCount:
		return ctx.parseCount(p)
	case KOptional:
		return ctx.parseOptional(p)
	case KLookahead:
		return ctx.parseLookahead(p)
	case KNot:
		return ctx.parseNot(p)
	case KBetween:
		return ctx.parseBetween(p)
	case KDelimited:
		return ctx.parseDelimited(p)
	case KSkip:
		return ctx.parseSkip(p)
	case KPassthru:
		return ctx.parsePassthru(p)
	case KLexeme:
		return ctx.parseLexeme(p)
	case KChainL1:
		return ctx.parseChainL1(p)
	case KChainR1:
		return ctx.parseChainR1(p)
	default:
		panic("peg: unreachable parser kind")
	}
}

// --- terminals ---

func (ctx *parseCtx) parseChar(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	b, ok := ctx.cur.at()
	if !ok {
		return nil, ctx.fail("Unexpected end of input", quoteByte(p.Char))
	}
	if b != p.Char {
		return nil, ctx.fail("Unexpected character", quoteByte(p.Char))
	}
	ctx.cur.advance(1)
	return ctx.leaf("char", p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseString(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	s := p.Str
	if ctx.cur.pos+len(s) > len(ctx.input) {
		return nil, ctx.fail("Unexpected end of input", quoteStr(s))
	}
	if string(ctx.input[ctx.cur.pos:ctx.cur.pos+len(s)]) != s {
		return nil, ctx.fail("Unexpected character", quoteStr(s))
	}
	ctx.cur.advance(len(s))
	return ctx.leaf("string", p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseCharRange(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	expected := "`" + string(p.Lo) + "-" + string(p.Hi) + "`"
	b, ok := ctx.cur.at()
	if !ok {
		return nil, ctx.fail("Unexpected end of input", expected)
	}
	if b < p.Lo || b > p.Hi {
		return nil, ctx.fail("Unexpected character", expected)
	}
	ctx.cur.advance(1)
	return ctx.leaf("char_range", p, start, ctx.cur.pos), nil
}

func setKeys(set map[byte]struct{}) string {
	var sb strings.Builder
	for b := range set {
		sb.WriteByte(b)
	}
	return sb.String()
}

func (ctx *parseCtx) parseOneOf(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	expected := "one of " + quoteStr(setKeys(p.Set))
	b, ok := ctx.cur.at()
	if !ok {
		return nil, ctx.fail("Unexpected end of input", expected)
	}
	if _, in := p.Set[b]; !in {
		return nil, ctx.fail("Unexpected character", expected)
	}
	ctx.cur.advance(1)
	return ctx.leaf("one_of", p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseNoneOf(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	expected := "none of " + quoteStr(setKeys(p.Set))
	b, ok := ctx.cur.at()
	if !ok {
		return nil, ctx.fail("Unexpected end of input", expected)
	}
	if _, in := p.Set[b]; in {
		return nil, ctx.fail("Unexpected character", expected)
	}
	ctx.cur.advance(1)
	return ctx.leaf("none_of", p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseClass(p *Parser, tag string, class func(byte) bool, label string) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	b, ok := ctx.cur.at()
	if !ok {
		return nil, ctx.fail("Unexpected end of input", label)
	}
	if !class(b) {
		return nil, ctx.fail("Unexpected character", label)
	}
	ctx.cur.advance(1)
	return ctx.leaf(tag, p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseAnyChar(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	if ctx.cur.eof() {
		return nil, ctx.fail("Unexpected end of input", "any character")
	}
	ctx.cur.advance(1)
	return ctx.leaf("any_char", p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseInteger(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	i := ctx.cur.pos
	if i < len(ctx.input) && ctx.input[i] == '-' {
		i++
	}
	digitsStart := i
	for i < len(ctx.input) && isDigitByte(ctx.input[i]) {
		i++
	}
	if i == digitsStart {
		return nil, ctx.fail("Unexpected character", "integer")
	}
	ctx.cur.advance(i - ctx.cur.pos)
	return ctx.leaf("integer", p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseDouble(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	in := ctx.input
	i := ctx.cur.pos
	if i < len(in) && (in[i] == '+' || in[i] == '-') {
		i++
	}
	hasDigit := false
	for i < len(in) && isDigitByte(in[i]) {
		i++
		hasDigit = true
	}
	if i < len(in) && in[i] == '.' {
		j := i + 1
		fracStart := j
		for j < len(in) && isDigitByte(in[j]) {
			j++
			hasDigit = true
		}
		if j > fracStart || hasDigit {
			i = j
		}
	}
	if hasDigit && i < len(in) && (in[i] == 'e' || in[i] == 'E') {
		j := i + 1
		if j < len(in) && (in[j] == '+' || in[j] == '-') {
			j++
		}
		expDigitsStart := j
		for j < len(in) && isDigitByte(in[j]) {
			j++
		}
		if j > expDigitsStart {
			i = j
		}
	}
	if !hasDigit {
		return nil, ctx.fail("Unexpected character", "double")
	}
	ctx.cur.advance(i - ctx.cur.pos)
	return ctx.leaf("double", p, start, ctx.cur.pos), nil
}

func (ctx *parseCtx) parseEOI(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	if !ctx.cur.eof() {
		return nil, ctx.fail("Unexpected character", "end of input")
	}
	return ctx.leaf("eoi", p, start, start.pos), nil
}

func (ctx *parseCtx) parseSucceed(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	return ctx.leaf("succeed", p, start, start.pos), nil
}

func (ctx *parseCtx) parseFail(p *Parser) (*CPT, *ParseError) {
	msg := p.FailMessage
	if msg == "" {
		msg = "Parser failed"
	}
	return nil, ctx.fail(msg, "")
}

// --- structural ---

func (ctx *parseCtx) parseAnd(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	children := make([]*CPT, 0, len(p.Sub))
	for _, sub := range p.Sub {
		node, err := parse(ctx, sub)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return ctx.node("and", p, start, ctx.cur.pos, children...), nil
}

func (ctx *parseCtx) parseOr(p *Parser) (*CPT, *ParseError) {
	return withFurthestGuard(ctx, func() (*CPT, *ParseError) {
		start := ctx.cur.mark()
		var expectedList []string
		seen := make(map[string]bool, len(p.Sub))
		for _, sub := range p.Sub {
			pre := ctx.cur.mark()
			node, err := parse(ctx, sub)
			if err == nil {
				return ctx.node("or", p, start, node.End, node), nil
			}
			ctx.cur.restore(pre)
			if err.Expected != "" && !seen[err.Expected] {
				seen[err.Expected] = true
				expectedList = append(expectedList, err.Expected)
			}
		}
		msg := "Unexpected character"
		if ctx.cur.eof() {
			msg = "Unexpected end of input"
		}
		if hint := suggestionHint(expectedList, snippet(ctx.input, start.pos)); hint != "" {
			msg = msg + ". " + hint
		}
		expected := strings.Join(expectedList, " or ")
		return nil, ctx.fail(msg, expected)
	})
}

func (ctx *parseCtx) parseMany(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	var children []*CPT
	for {
		pre := ctx.cur.mark()
		node, err := parse(ctx, p.Item)
		if err != nil {
			ctx.cur.restore(pre)
			break
		}
		children = append(children, node)
		if ctx.cur.pos == pre.pos {
			break
		}
	}
	return ctx.node("many", p, start, ctx.cur.pos, children...), nil
}

func (ctx *parseCtx) parsePlus(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	first, err := parse(ctx, p.Item)
	if err != nil {
		return nil, err
	}
	children := []*CPT{first}
	if ctx.cur.pos != start.pos {
		for {
			pre := ctx.cur.mark()
			node, err := parse(ctx, p.Item)
			if err != nil {
				ctx.cur.restore(pre)
				break
			}
			children = append(children, node)
			if ctx.cur.pos == pre.pos {
				break
			}
		}
	}
	return ctx.node("plus", p, start, ctx.cur.pos, children...), nil
}

func (ctx *parseCtx) parseCount(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	if p.N <= 0 {
		return ctx.leaf("count", p, start, start.pos), nil
	}
	children := make([]*CPT, 0, p.N)
	for i := 0; i < p.N; i++ {
		node, err := parse(ctx, p.Item)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}
	return ctx.node("count", p, start, ctx.cur.pos, children...), nil
}

func (ctx *parseCtx) parseOptional(p *Parser) (*CPT, *ParseError) {
	return withFurthestGuard(ctx, func() (*CPT, *ParseError) {
		start := ctx.cur.mark()
		node, err := parse(ctx, p.Item)
		if err != nil {
			ctx.cur.restore(start)
			return ctx.leaf("optional", p, start, start.pos), nil
		}
		return ctx.node("optional", p, start, node.End, node), nil
	})
}

func (ctx *parseCtx) parseLookahead(p *Parser) (*CPT, *ParseError) {
	snap := ctx.fe.snapshot()
	start := ctx.cur.mark()
	_, err := parse(ctx, p.Item)
	ctx.cur.restore(start)
	ctx.fe.restore(snap)
	if err != nil {
		ctx.reoffer(err)
		return nil, err
	}
	return ctx.leaf("lookahead", p, start, start.pos), nil
}

func (ctx *parseCtx) parseNot(p *Parser) (*CPT, *ParseError) {
	snap := ctx.fe.snapshot()
	start := ctx.cur.mark()
	_, err := parse(ctx, p.Item)
	ctx.cur.restore(start)
	ctx.fe.restore(snap)
	if err == nil {
		return nil, ctx.fail("Parser unexpectedly matched", p.expected())
	}
	return ctx.leaf("not", p, start, start.pos), nil
}

func (ctx *parseCtx) parseBetween(p *Parser) (*CPT, *ParseError) {
	return withFurthestGuard(ctx, func() (*CPT, *ParseError) {
		start := ctx.cur.mark()
		if _, err := parse(ctx, p.Sub[0]); err != nil {
			return nil, err
		}
		content, err := parse(ctx, p.Sub[1])
		if err != nil {
			return nil, err
		}
		if _, err := parse(ctx, p.Sub[2]); err != nil {
			return nil, err
		}
		return ctx.node("between", p, start, ctx.cur.pos, content), nil
	})
}

func (ctx *parseCtx) parseDelimited(p *Parser) (*CPT, *ParseError) {
	start := ctx.cur.mark()
	first, err := parse(ctx, p.Item)
	if err != nil {
		return nil, err
	}
	items := []*CPT{first}
	for {
		if p.Op == nil {
			pre := ctx.cur.mark()
			node, ierr := parse(ctx, p.Item)
			if ierr != nil {
				ctx.cur.restore(pre)
				break
			}
			items = append(items, node)
			if ctx.cur.pos == pre.pos {
				break
			}
			continue
		}
		preDelim := ctx.cur.mark()
		opSnap := ctx.fe.snapshot()
		_, opErr := parse(ctx, p.Op)
		ctx.fe.restore(opSnap)
		if opErr != nil {
			ctx.cur.restore(preDelim)
			break
		}
		node, ierr := parse(ctx, p.Item)
		if ierr != nil {
			return nil, ctx.fail("Unexpected trailing delimiter", "")
		}
		items = append(items, node)
	}
	return ctx.node("delimited", p, start, ctx.cur.pos, items...), nil
}

func (ctx *parseCtx) parseSkip(p *Parser) (*CPT, *ParseError) {
	return withFurthestGuard(ctx, func() (*CPT, *ParseError) {
		start := ctx.cur.mark()
		for {
			pre := ctx.cur.mark()
			_, err := parse(ctx, p.Item)
			if err != nil {
				ctx.cur.restore(pre)
				break
			}
			if ctx.cur.pos == pre.pos {
				return nil, ctx.fail("Infinite loop detected in skip", "")
			}
		}
		return ctx.leaf("skip", p, start, ctx.cur.pos), nil
	})
}

func (ctx *parseCtx) parsePassthru(p *Parser) (*CPT, *ParseError) {
	node, err := parse(ctx, p.Item)
	if err != nil {
		return nil, err
	}
	if p.Name != "" {
		node.Name = p.Name
	}
	if p.ActionTag >= 0 {
		node.ActionTag = p.ActionTag
	}
	return node, nil
}

func (ctx *parseCtx) skipLexemeTrivia(p *Parser) {
	for {
		b, ok := ctx.cur.at()
		if !ok {
			return
		}
		if isSpaceByte(b) {
			ctx.cur.advance(1)
			continue
		}
		if p.LexemeComments && b == '/' && ctx.cur.pos+1 < len(ctx.input) && ctx.input[ctx.cur.pos+1] == '/' {
			for {
				b, ok := ctx.cur.at()
				if !ok || b == '\n' {
					break
				}
				ctx.cur.advance(1)
			}
			continue
		}
		return
	}
}

func (ctx *parseCtx) parseLexeme(p *Parser) (*CPT, *ParseError) {
	return withFurthestGuard(ctx, func() (*CPT, *ParseError) {
		start := ctx.cur.mark()
		ctx.skipLexemeTrivia(p)
		innerStart := ctx.cur.pos
		child, err := parse(ctx, p.Item)
		if err != nil {
			ctx.cur.restore(start)
			return nil, err
		}
		innerEnd := ctx.cur.pos
		ctx.skipLexemeTrivia(p)
		end := ctx.cur.pos
		node := ctx.node("lexeme", p, start, end, child)
		node.SemanticStartOffset = innerStart - start.pos
		node.SemanticEndOffset = end - innerEnd
		return node, nil
	})
}

func (ctx *parseCtx) parseChainL1(p *Parser) (*CPT, *ParseError) {
	left, err := parse(ctx, p.Item)
	if err != nil {
		return nil, err
	}
	for {
		preOp := ctx.cur.mark()
		opSnap := ctx.fe.snapshot()
		opNode, opErr := parse(ctx, p.Op)
		ctx.fe.restore(opSnap)
		if opErr != nil {
			ctx.cur.restore(preOp)
			break
		}
		right, rErr := parse(ctx, p.Item)
		if rErr != nil {
			return nil, rErr
		}
		left = newNode("chainl1_combined", p.Name, ctx.input, left.Start, right.End, left.Line, left.Col, p.ActionTag, left, opNode, right)
	}
	return left, nil
}

func (ctx *parseCtx) parseChainR1(p *Parser) (*CPT, *ParseError) {
	first, err := parse(ctx, p.Item)
	if err != nil {
		return nil, err
	}
	items := []*CPT{first}
	var ops []*CPT
	for {
		preOp := ctx.cur.mark()
		opSnap := ctx.fe.snapshot()
		opNode, opErr := parse(ctx, p.Op)
		ctx.fe.restore(opSnap)
		if opErr != nil {
			ctx.cur.restore(preOp)
			break
		}
		item, iErr := parse(ctx, p.Item)
		if iErr != nil {
			return nil, iErr
		}
		ops = append(ops, opNode)
		items = append(items, item)
	}
	result := items[len(items)-1]
	for i := len(ops) - 1; i >= 0; i-- {
		left := items[i]
		op := ops[i]
		result = newNode("chainr1_combined", p.Name, ctx.input, left.Start, result.End, left.Line, left.Col, p.ActionTag, left, op, result)
	}
	return result, nil
}

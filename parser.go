package peg

// Kind enumerates the closed set of parser variants from spec.md §4.1.
// Every Parser value is exactly one of these; Engine switches on Kind and
// nothing else determines how a parser is interpreted.
type Kind int

const (
	KChar Kind = iota
	KString
	KCharRange
	KOneOf
	KNoneOf
	KDigit
	KAlpha
	KAlphanum
	KHexDigit
	KSpace
	KAnyChar
	KInteger
	KDouble
	KEOI
	KSucceed
	KFail
	KAnd
	KOr
	KMany
	KPlus
	KCount
	KOptional
	KLookahead
	KNot
	KBetween
	KDelimited
	KSkip
	KPassthru
	KLexeme
	KChainL1
	KChainR1
	kPlaceholder
)

// Parser is the immutable (once Defined) descriptor of one grammar
// construct, per spec.md §3 "Parser value". A Parser never interprets
// itself; Engine.Parse walks it. Fields are a tagged union keyed by Kind;
// only the fields relevant to a given Kind are populated.
type Parser struct {
	Kind              Kind
	Name              string
	ExpectedOverride  string
	ActionTag         int // -1 means "none"

	// terminal payload
	Char        byte
	Str         string
	Lo, Hi      byte
	Set         map[byte]struct{}
	FailMessage string

	// structural payload
	Sub            []*Parser // And/Or operands, in order; Between = [open, content, close]
	Item           *Parser   // Many/Plus/Count/Optional/Lookahead/Not/Skip/Passthru/Lexeme/chain-item
	Op             *Parser   // ChainL1/ChainR1 operator; Delimited's separator (nil means epsilon)
	N              int       // Count's exact n
	LexemeComments bool      // Lexeme: also skip `//` line comments

	target *Parser // placeholder indirection, set by Arena.Define
}

// resolve follows a placeholder to its eventual definition. Non-placeholder
// parsers resolve to themselves. Interpreting an undefined placeholder is a
// programming error, per spec.md §4.3 ("must not be interpreted before
// being filled").
func (p *Parser) resolve() *Parser {
	for p.Kind == kPlaceholder {
		if p.target == nil {
			panic("peg: forward-declared parser \"" + p.Name + "\" was never defined")
		}
		p = p.target
	}
	return p
}

// expected returns the text used to describe this parser in a synthesized
// "expected ..." message: its own ExpectedOverride, else its Name, else the
// variant's tag — spec.md §9's "Open question" about unnamed parsers
// resolved by falling back to the tag.
func (p *Parser) expected() string {
	if p.ExpectedOverride != "" {
		return p.ExpectedOverride
	}
	if p.Name != "" {
		return p.Name
	}
	return p.tag()
}

func (p *Parser) tag() string {
	switch p.Kind {
	case KChar:
		return "char"
	case KString:
		return "string"
	case KCharRange:
		return "char_range"
	case KOneOf:
		return "one_of"
	case KNoneOf:
		return "none_of"
	case KDigit:
		return "digit"
	case KAlpha:
		return "alpha"
	case KAlphanum:
		return "alphanum"
	case KHexDigit:
		return "hex_digit"
	case KSpace:
		return "space"
	case KAnyChar:
		return "any_char"
	case KInteger:
		return "integer"
	case KDouble:
		return "double"
	case KEOI:
		return "eoi"
	case KSucceed:
		return "succeed"
	case KFail:
		return "fail"
	case KAnd:
		return "and"
	case KOr:
		return "or"
	case KMany:
		return "many"
	case KPlus:
		return "plus"
	case KCount:
		return "count"
	case KOptional:
		return "optional"
	case KLookahead:
		return "lookahead"
	case KNot:
		return "not"
	case KBetween:
		return "between"
	case KDelimited:
		return "delimited"
	case KSkip:
		return "skip"
	case KPassthru:
		return "passthru"
	case KLexeme:
		return "lexeme"
	case KChainL1:
		return "chainl1_combined"
	case KChainR1:
		return "chainr1_combined"
	default:
		return "placeholder"
	}
}

// WithAction attaches action tag `tag` to parser `p` and returns it, per
// spec.md §6 item 3 ("Action tag setter"). It mutates p in place so it
// composes naturally with the arena constructors: `a.Char("digit", '0').WithAction(1)`.
func (p *Parser) WithAction(tag int) *Parser {
	p.ActionTag = tag
	return p
}

// --- Arena constructors ---
//
// Every constructor below both builds a Parser value and registers it with
// the Arena in one step, per spec.md §4.3. `name` may be empty.

func newParser(kind Kind, name string) *Parser {
	return &Parser{Kind: kind, Name: name, ActionTag: -1}
}

// Char matches one input byte equal to c.
func (a *Arena) Char(name string, c byte) *Parser {
	p := newParser(KChar, name)
	p.Char = c
	return a.add(p)
}

// String matches len(s) bytes equal to s.
func (a *Arena) String(name string, s string) *Parser {
	p := newParser(KString, name)
	p.Str = s
	return a.add(p)
}

// CharRange matches one byte in the inclusive range [lo, hi].
func (a *Arena) CharRange(name string, lo, hi byte) *Parser {
	p := newParser(KCharRange, name)
	p.Lo, p.Hi = lo, hi
	return a.add(p)
}

func toSet(chars string) map[byte]struct{} {
	set := make(map[byte]struct{}, len(chars))
	for i := 0; i < len(chars); i++ {
		set[chars[i]] = struct{}{}
	}
	return set
}

// OneOf matches one byte that is a member of chars.
func (a *Arena) OneOf(name string, chars string) *Parser {
	p := newParser(KOneOf, name)
	p.Set = toSet(chars)
	return a.add(p)
}

// NoneOf matches one byte that is not a member of chars (and not EOF).
func (a *Arena) NoneOf(name string, chars string) *Parser {
	p := newParser(KNoneOf, name)
	p.Set = toSet(chars)
	return a.add(p)
}

// Digit matches one ASCII digit [0-9].
func (a *Arena) Digit(name string) *Parser { return a.add(newParser(KDigit, name)) }

// Alpha matches one ASCII letter [a-zA-Z].
func (a *Arena) Alpha(name string) *Parser { return a.add(newParser(KAlpha, name)) }

// Alphanum matches one ASCII letter or digit.
func (a *Arena) Alphanum(name string) *Parser { return a.add(newParser(KAlphanum, name)) }

// HexDigit matches one ASCII hex digit [0-9a-fA-F].
func (a *Arena) HexDigit(name string) *Parser { return a.add(newParser(KHexDigit, name)) }

// Space matches one ASCII whitespace byte.
func (a *Arena) Space(name string) *Parser { return a.add(newParser(KSpace, name)) }

// AnyChar matches any single byte; fails only at end of input.
func (a *Arena) AnyChar(name string) *Parser { return a.add(newParser(KAnyChar, name)) }

// Integer matches an optional leading '-' followed by one or more digits,
// taking the longest such prefix.
func (a *Arena) Integer(name string) *Parser { return a.add(newParser(KInteger, name)) }

// Double matches a floating point literal: optional sign, digits, an
// optional '.' fraction and an optional e/E exponent, requiring at least
// one digit overall.
func (a *Arena) Double(name string) *Parser { return a.add(newParser(KDouble, name)) }

// EOI succeeds with zero length iff the cursor is at end of input.
func (a *Arena) EOI(name string) *Parser { return a.add(newParser(KEOI, name)) }

// Succeed always succeeds with zero length.
func (a *Arena) Succeed(name string) *Parser { return a.add(newParser(KSucceed, name)) }

// Fail always fails with message.
func (a *Arena) Fail(name, message string) *Parser {
	p := newParser(KFail, name)
	p.FailMessage = message
	return a.add(p)
}

// And parses its operands left to right on the advancing cursor; it
// requires n >= 1 operands.
func (a *Arena) And(name string, operands ...*Parser) *Parser {
	if len(operands) < 1 {
		panic("peg: And requires at least one operand")
	}
	p := newParser(KAnd, name)
	p.Sub = operands
	return a.add(p)
}

// Or tries operands in order on the same starting cursor; it requires
// n >= 1 operands.
func (a *Arena) Or(name string, operands ...*Parser) *Parser {
	if len(operands) < 1 {
		panic("peg: Or requires at least one operand")
	}
	p := newParser(KOr, name)
	p.Sub = operands
	return a.add(p)
}

// Many matches item zero or more times.
func (a *Arena) Many(name string, item *Parser) *Parser {
	p := newParser(KMany, name)
	p.Item = item
	return a.add(p)
}

// Plus matches item one or more times.
func (a *Arena) Plus(name string, item *Parser) *Parser {
	p := newParser(KPlus, name)
	p.Item = item
	return a.add(p)
}

// Count matches item exactly n times; n == 0 trivially succeeds.
func (a *Arena) Count(name string, n int, item *Parser) *Parser {
	p := newParser(KCount, name)
	p.N = n
	p.Item = item
	return a.add(p)
}

// Optional attempts item; on failure it consumes nothing and succeeds with
// zero length.
func (a *Arena) Optional(name string, item *Parser) *Parser {
	p := newParser(KOptional, name)
	p.Item = item
	return a.add(p)
}

// Lookahead runs item and restores the cursor regardless of outcome,
// succeeding iff item succeeds.
func (a *Arena) Lookahead(name string, item *Parser) *Parser {
	p := newParser(KLookahead, name)
	p.Item = item
	return a.add(p)
}

// Not succeeds with zero length iff item fails.
func (a *Arena) Not(name string, item *Parser) *Parser {
	p := newParser(KNot, name)
	p.Item = item
	return a.add(p)
}

// Between matches open, content, close in sequence; the resulting node
// keeps the outer span but exposes only content's CPT as its single child.
func (a *Arena) Between(name string, open, content, close *Parser) *Parser {
	p := newParser(KBetween, name)
	p.Sub = []*Parser{open, content, close}
	return a.add(p)
}

// Delimited matches item (delim item)*, requiring at least one item. A
// trailing delim with no following item is an error. delim may be nil,
// reducing Delimited to Plus(item).
func (a *Arena) Delimited(name string, item, delim *Parser) *Parser {
	p := newParser(KDelimited, name)
	p.Item = item
	p.Op = delim
	return a.add(p)
}

// Skip behaves like Many but discards matched children, producing a single
// node with the consumed span. It fails if an iteration makes zero
// progress, to avoid looping forever.
func (a *Arena) Skip(name string, item *Parser) *Parser {
	p := newParser(KSkip, name)
	p.Item = item
	return a.add(p)
}

// Passthru transparently returns item's exact result, letting a grammar
// rename a rule or attach an action tag without changing CPT shape.
func (a *Arena) Passthru(name string, item *Parser) *Parser {
	p := newParser(KPassthru, name)
	p.Item = item
	return a.add(p)
}

// Lexeme trims leading/trailing whitespace (and, if withComments, `//`
// line comments) around item, exposing item's matched span as the
// semantic span via SemanticStartOffset/SemanticEndOffset.
func (a *Arena) Lexeme(name string, item *Parser, withComments bool) *Parser {
	p := newParser(KLexeme, name)
	p.Item = item
	p.LexemeComments = withComments
	return a.add(p)
}

// ChainL1 parses item (op item)*, folding left-associatively: each operator
// application yields a chainl1_combined node whose left child is the
// accumulated result so far.
func (a *Arena) ChainL1(name string, item, op *Parser) *Parser {
	p := newParser(KChainL1, name)
	p.Item = item
	p.Op = op
	return a.add(p)
}

// ChainR1 parses item (op item)*, folding right-associatively: the last
// item is the initial right operand and earlier (item, op) pairs wrap
// around it from the inside out.
func (a *Arena) ChainR1(name string, item, op *Parser) *Parser {
	p := newParser(KChainR1, name)
	p.Item = item
	p.Op = op
	return a.add(p)
}

// Forward pre-allocates a named placeholder for use in recursive grammars:
// build the placeholder first, reference it from other rules, then call
// Define once the real parser is ready. Interpreting a placeholder before
// Define panics, per spec.md §4.3.
func (a *Arena) Forward(name string) *Parser {
	return a.add(&Parser{Kind: kPlaceholder, Name: name, ActionTag: -1})
}

// Define duplicates def's fields into placeholder in place, preserving the
// placeholder's identity so every reference collected before Define keeps
// pointing at the same *Parser. This is strictly a shallow copy of def's
// variant payload, as spec.md §9 requires.
func (a *Arena) Define(placeholder, def *Parser) {
	if placeholder.Kind != kPlaceholder {
		panic("peg: Define called on a parser that is not a Forward placeholder")
	}
	name := placeholder.Name
	*placeholder = *def
	placeholder.Name = name
}

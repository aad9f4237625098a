package parser

import (
	"github.com/zeenix/tomling/internal/lexer"
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// parseValue dispatches on the first non-whitespace character (§4.B).
func (p *parser) parseValue(depth int) (value.Node, *perr.Error) {
	if depth > MaxDepth {
		return nil, perr.New(perr.KindDepth, p.cur.Pos(), "nesting depth exceeded")
	}
	b, ok := p.cur.Peek()
	if !ok {
		return nil, perr.New(perr.KindSyntax, p.cur.Pos(), "expected value")
	}
	switch {
	case b == '"':
		return p.parseBasicStringValue()
	case b == '\'':
		return p.parseLiteralStringValue()
	case b == '[':
		return p.parseArray(depth)
	case b == '{':
		return p.parseInlineTable(depth)
	case b == 't' || b == 'f':
		return p.parseBool()
	default:
		return p.parseScalarToken()
	}
}

func (p *parser) parseBasicStringValue() (value.Node, *perr.Error) {
	var s string
	var err *perr.Error
	if p.cur.HasPrefix(`"""`) {
		s, err = p.cur.ReadMultilineBasicString()
	} else {
		s, err = p.cur.ReadBasicString()
	}
	if err != nil {
		return nil, err
	}
	return value.NewString(s), nil
}

func (p *parser) parseLiteralStringValue() (value.Node, *perr.Error) {
	var s string
	var err *perr.Error
	if p.cur.HasPrefix(`'''`) {
		s, err = p.cur.ReadMultilineLiteralString()
	} else {
		s, err = p.cur.ReadLiteralString()
	}
	if err != nil {
		return nil, err
	}
	return value.NewString(s), nil
}

// atSpaceDelimitedTime reports whether the cursor sits at a space followed
// by an "HH:MM..." run, the RFC 3339 §5.6 / TOML 1.0 alternative to `T` as
// the date-time delimiter (`original_source`'s parse/datetime.rs TIME_DELIM
// includes `b' '`). ReadValueToken treats a bare space as a terminator, so
// without this check a space-delimited date-time's time half is left
// unconsumed and rejected as trailing garbage.
func (p *parser) atSpaceDelimitedTime() bool {
	b, ok := p.cur.Peek()
	if !ok || b != ' ' {
		return false
	}
	d0, ok0 := p.cur.PeekAt(1)
	d1, ok1 := p.cur.PeekAt(2)
	colon, ok2 := p.cur.PeekAt(3)
	return ok0 && ok1 && ok2 &&
		d0 >= '0' && d0 <= '9' && d1 >= '0' && d1 <= '9' && colon == ':'
}

func isBareKeyContinuationAt(c *lexer.Cursor, offset int) bool {
	b, ok := c.PeekAt(offset)
	if !ok {
		return false
	}
	switch {
	case b >= 'a' && b <= 'z', b >= 'A' && b <= 'Z', b >= '0' && b <= '9', b == '_', b == '-':
		return true
	default:
		return false
	}
}

// parseBool matches `true`/`false` exactly, rejecting a bare-key
// continuation so `truely` is not mistaken for `true` followed by garbage
// (§4.B).
func (p *parser) parseBool() (value.Node, *perr.Error) {
	if p.cur.HasPrefix("true") && !isBareKeyContinuationAt(p.cur, 4) {
		p.cur.SkipN(4)
		return value.NewBool(true), nil
	}
	if p.cur.HasPrefix("false") && !isBareKeyContinuationAt(p.cur, 5) {
		p.cur.SkipN(5)
		return value.NewBool(false), nil
	}
	return nil, perr.New(perr.KindSyntax, p.cur.Pos(), "invalid value")
}

// parseScalarToken handles the remaining bare-token forms: date/time,
// integer, and float. §4.B: "attempt date/time first, fall back to
// number".
func (p *parser) parseScalarToken() (value.Node, *perr.Error) {
	start := p.cur.Pos()
	tok := p.cur.ReadValueToken()
	if tok == "" {
		return nil, perr.New(perr.KindSyntax, start, "expected value")
	}
	dt, ok, err := lexer.ParseDatetime(tok)
	if err != nil {
		return nil, err
	}
	if ok && dt.Variant() == value.VariantLocalDate && p.atSpaceDelimitedTime() {
		p.cur.Advance() // the space delimiter
		timeTok := p.cur.ReadValueToken()
		dt, ok, err = lexer.ParseDatetime(tok + " " + timeTok)
		if err != nil {
			return nil, err
		}
	}
	if ok {
		return value.NewDatetime(dt), nil
	}
	if lexer.LooksLikeFloat(tok) {
		f, err := lexer.ParseFloat(tok)
		if err != nil {
			return nil, err
		}
		return value.NewFloat(f), nil
	}
	i, err := lexer.ParseInteger(tok)
	if err != nil {
		return nil, err
	}
	return value.NewInteger(i), nil
}

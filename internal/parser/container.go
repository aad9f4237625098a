package parser

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// parseArray handles `[ ... ]` (§4.B): comma-separated values, arbitrary
// whitespace/newlines/comments between tokens, trailing comma allowed,
// heterogeneous element types allowed.
func (p *parser) parseArray(depth int) (value.Node, *perr.Error) {
	p.cur.Advance() // '['
	arr := value.NewArray()
	if err := p.cur.SkipBlank(); err != nil {
		return nil, err
	}
	if b, ok := p.cur.Peek(); ok && b == ']' {
		p.cur.Advance()
		arr.Seal()
		return arr, nil
	}
	for {
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
		if err := p.cur.SkipBlank(); err != nil {
			return nil, err
		}
		b, ok := p.cur.Peek()
		if !ok {
			return nil, perr.New(perr.KindSyntax, p.cur.Pos(), "unterminated array")
		}
		if b == ',' {
			p.cur.Advance()
			if err := p.cur.SkipBlank(); err != nil {
				return nil, err
			}
			if b, ok := p.cur.Peek(); ok && b == ']' {
				p.cur.Advance()
				arr.Seal()
				return arr, nil
			}
			continue
		}
		if b == ']' {
			p.cur.Advance()
			arr.Seal()
			return arr, nil
		}
		return nil, perr.New(perr.KindSyntax, p.cur.Pos(), "expected ',' or ']'")
	}
}

// parseInlineTable handles `{ key = value, ... }` (§4.B): no newlines, no
// trailing comma, dotted keys create implicit sub-tables, and the whole
// tree it contains is sealed on close.
func (p *parser) parseInlineTable(depth int) (value.Node, *perr.Error) {
	p.cur.Advance() // '{'
	t := value.NewTable(value.TableInline)
	p.cur.SkipInlineWhitespace()
	if b, ok := p.cur.Peek(); ok && b == '}' {
		p.cur.Advance()
		sealTable(t)
		return t, nil
	}
	for {
		p.cur.SkipInlineWhitespace()
		parts, err := p.parseKeyPath()
		if err != nil {
			return nil, err
		}
		p.cur.SkipInlineWhitespace()
		if err := p.expect('='); err != nil {
			return nil, err
		}
		p.cur.SkipInlineWhitespace()
		val, err := p.parseValue(depth + 1)
		if err != nil {
			return nil, err
		}

		parent, err := p.walkToParent(t, parts)
		if err != nil {
			return nil, err
		}
		last := parts[len(parts)-1]
		if parent.Has(last) {
			return nil, perr.New(perr.KindStructure, p.cur.Pos(), "duplicate key")
		}
		parent.Set(last, val)

		p.cur.SkipInlineWhitespace()
		b, ok := p.cur.Peek()
		if !ok {
			return nil, perr.New(perr.KindSyntax, p.cur.Pos(), "unterminated inline table")
		}
		switch b {
		case ',':
			p.cur.Advance()
		case '}':
			p.cur.Advance()
			sealTable(t)
			return t, nil
		case '\n', '\r':
			return nil, perr.New(perr.KindSyntax, p.cur.Pos(), "newline not allowed in inline table")
		default:
			return nil, perr.New(perr.KindSyntax, p.cur.Pos(), "expected ',' or '}'")
		}
	}
}

// sealTable recursively seals t and every Table/Array reachable through
// it, per §3 invariant 3: an inline table's entire contained tree is
// closed to further writes once the top-level `}` is parsed.
func sealTable(t *value.Table) {
	t.Seal()
	for _, e := range t.Iter() {
		switch n := e.Value.(type) {
		case *value.Table:
			sealTable(n)
		case *value.Array:
			n.Seal()
			for _, el := range n.Iter() {
				if sub, ok := el.(*value.Table); ok {
					sealTable(sub)
				}
			}
		}
	}
}

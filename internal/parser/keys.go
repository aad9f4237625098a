package parser

import (
	"github.com/zeenix/tomling/internal/perr"
)

// parseKeyPath reads a dotted key path (one or more bare or quoted key
// segments joined by `.`, with optional inline whitespace around each
// dot), used for both header paths and key-value assignment paths.
func (p *parser) parseKeyPath() ([]string, *perr.Error) {
	var parts []string
	for {
		p.cur.SkipInlineWhitespace()
		seg, err := p.parseKeySegment()
		if err != nil {
			return nil, err
		}
		parts = append(parts, seg)
		p.cur.SkipInlineWhitespace()
		b, ok := p.cur.Peek()
		if ok && b == '.' {
			p.cur.Advance()
			continue
		}
		break
	}
	return parts, nil
}

func (p *parser) parseKeySegment() (string, *perr.Error) {
	b, ok := p.cur.Peek()
	if !ok {
		return "", perr.New(perr.KindSyntax, p.cur.Pos(), "expected key")
	}
	switch b {
	case '"':
		if p.cur.HasPrefix(`"""`) {
			return "", perr.New(perr.KindSyntax, p.cur.Pos(), "multi-line string not allowed as key")
		}
		return p.cur.ReadBasicString()
	case '\'':
		if p.cur.HasPrefix(`'''`) {
			return "", perr.New(perr.KindSyntax, p.cur.Pos(), "multi-line string not allowed as key")
		}
		return p.cur.ReadLiteralString()
	default:
		s, ok := p.cur.ReadBareKey()
		if !ok {
			return "", perr.New(perr.KindSyntax, p.cur.Pos(), "expected key")
		}
		return s, nil
	}
}

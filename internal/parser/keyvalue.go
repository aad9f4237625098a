package parser

import "github.com/zeenix/tomling/internal/perr"

// parseKeyValueLine handles a `key.path = value` line (§4.C item 3).
func (p *parser) parseKeyValueLine() *perr.Error {
	parts, err := p.parseKeyPath()
	if err != nil {
		return err
	}
	p.cur.SkipInlineWhitespace()
	if err := p.expect('='); err != nil {
		return err
	}
	p.cur.SkipInlineWhitespace()
	val, err := p.parseValue(0)
	if err != nil {
		return err
	}
	if err := p.parseLineEnd(); err != nil {
		return err
	}

	parent, err := p.walkToParent(p.current, parts)
	if err != nil {
		return err
	}
	last := parts[len(parts)-1]
	if parent.Sealed() {
		return perr.New(perr.KindStructure, p.cur.Pos(), "traversal into sealed table")
	}
	if parent.Has(last) {
		return perr.New(perr.KindStructure, p.cur.Pos(), "duplicate key")
	}
	parent.Set(last, val)
	return nil
}

package parser

import (
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// parseHeaderLine handles a `[a.b.c]` or `[[a.b.c]]` line (§4.C items
// 1-2).
func (p *parser) parseHeaderLine() *perr.Error {
	startOffset := p.cur.Pos()
	p.cur.Advance() // first '['
	isArray := false
	if b, ok := p.cur.Peek(); ok && b == '[' {
		isArray = true
		p.cur.Advance()
	}
	p.cur.SkipInlineWhitespace()
	if b, ok := p.cur.Peek(); ok && b == ']' {
		return perr.New(perr.KindSyntax, p.cur.Pos(), "empty table header")
	}
	parts, err := p.parseKeyPath()
	if err != nil {
		return err
	}
	p.cur.SkipInlineWhitespace()
	if err := p.expect(']'); err != nil {
		return err
	}
	if isArray {
		if err := p.expect(']'); err != nil {
			return err
		}
	}
	if err := p.parseLineEnd(); err != nil {
		return err
	}
	if isArray {
		return p.assembleArrayHeader(parts, startOffset)
	}
	return p.assembleTableHeader(parts, startOffset)
}

func (p *parser) assembleTableHeader(parts []string, startOffset int) *perr.Error {
	parent, err := p.walkToParent(p.root, parts)
	if err != nil {
		return err
	}
	last := parts[len(parts)-1]
	existing, ok := parent.Get(last)
	if !ok {
		t := value.NewTable(value.TableExplicit)
		parent.Set(last, t)
		p.current = t
		return nil
	}
	t, ok := existing.(*value.Table)
	if !ok {
		return perr.New(perr.KindStructure, startOffset, "header path conflicts with an existing non-table value")
	}
	switch t.TableKind() {
	case value.TableImplicit:
		t.SetTableKind(value.TableExplicit)
		p.current = t
		return nil
	default:
		return perr.New(perr.KindStructure, startOffset, "table already defined as "+t.TableKind().String())
	}
}

func (p *parser) assembleArrayHeader(parts []string, startOffset int) *perr.Error {
	parent, err := p.walkToParent(p.root, parts)
	if err != nil {
		return err
	}
	last := parts[len(parts)-1]
	existing, ok := parent.Get(last)
	var arr *value.Array
	if !ok {
		arr = value.NewArray()
		parent.Set(last, arr)
	} else {
		a, ok := existing.(*value.Array)
		if !ok {
			return perr.New(perr.KindStructure, startOffset, "name already bound to a non-array value")
		}
		if a.Sealed() {
			return perr.New(perr.KindStructure, startOffset, "name already bound to an inline array")
		}
		arr = a
	}
	t := value.NewTable(value.TableArrayElement)
	arr.Append(t)
	p.current = t
	return nil
}

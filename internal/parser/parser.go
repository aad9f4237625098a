// Package parser implements the value parser and document assembler of
// §4.B and §4.C: it drives an internal/lexer.Cursor across a whole
// document and folds `[header]`, `[[header]]`, and `key.path = value`
// lines into an internal/value.Table tree.
//
// capyflow's parser (parse/toml/toml.go) walked a bufio.Scanner one
// physical line at a time and re-scanned ahead by hand whenever a value
// looked unterminated (its consumeValue). This package keeps that same
// "parse a value, then look for what follows it" shape but drives it off
// a byte cursor spanning the whole document instead of re-joining lines,
// since a value can span an arbitrary number of physical lines (a
// multi-line string, or an array with newlines between elements).
package parser

import (
	"github.com/zeenix/tomling/internal/lexer"
	"github.com/zeenix/tomling/internal/perr"
	"github.com/zeenix/tomling/internal/value"
)

// MaxDepth bounds container nesting (arrays and inline tables), per §5's
// suggested constant for hostile inputs.
const MaxDepth = 128

type parser struct {
	cur     *lexer.Cursor
	root    *value.Table
	current *value.Table
}

// Parse converts a TOML document into its generic value tree (§4.C).
func Parse(data []byte) (*value.Table, *perr.Error) {
	root := value.NewTable(value.TableRoot)
	p := &parser{cur: lexer.New(data), root: root, current: root}
	if err := p.run(); err != nil {
		return nil, err
	}
	return root, nil
}

func (p *parser) run() *perr.Error {
	for {
		if err := p.cur.SkipBlank(); err != nil {
			return err
		}
		if p.cur.Eof() {
			return nil
		}
		b, _ := p.cur.Peek()
		if b == '[' {
			if err := p.parseHeaderLine(); err != nil {
				return err
			}
			continue
		}
		if err := p.parseKeyValueLine(); err != nil {
			return err
		}
	}
}

// parseLineEnd requires that, after a value or header, only trailing
// inline whitespace, an optional comment, and a newline or EOF follow
// (§4.C: "trailing content ... other than whitespace and a comment is an
// error").
func (p *parser) parseLineEnd() *perr.Error {
	p.cur.SkipInlineWhitespace()
	b, ok := p.cur.Peek()
	if !ok {
		return nil
	}
	if b == '#' {
		if err := p.cur.SkipComment(); err != nil {
			return err
		}
		if p.cur.Eof() {
			return nil
		}
		b, _ = p.cur.Peek()
	}
	if b == '\n' || b == '\r' {
		return p.cur.ConsumeNewline()
	}
	return perr.New(perr.KindSyntax, p.cur.Pos(), "expected newline after value")
}

func (p *parser) expect(b byte) *perr.Error {
	got, ok := p.cur.Peek()
	if !ok || got != b {
		return perr.New(perr.KindSyntax, p.cur.Pos(), "expected '"+string(b)+"'")
	}
	p.cur.Advance()
	return nil
}

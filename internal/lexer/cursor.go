// Package lexer implements the byte-level scanning primitives of §4.A:
// whitespace and comment skipping, bare/quoted key reading, string literal
// decoding, and number/datetime token classification.
//
// capyflow's parser drove everything off a bufio.Scanner reading one
// physical line at a time (parse/toml/toml.go's parser.scan). TOML's
// multi-line strings, arrays, and inline tables can span physical lines in
// ways a line scanner cannot express without re-joining lines by hand, so
// this package instead holds the whole document in memory and exposes a
// byte-offset cursor over it. The low-level techniques are the same ones
// capyflow used at the character level (explicit quote-state tracking,
// escape decoding, hex/octal/binary digit classification) generalized to
// range over the full input instead of one line.
package lexer

import (
	"bytes"
)

// Cursor is a read-only, position-tracking view over a document's bytes.
type Cursor struct {
	data []byte
	pos  int
}

// New wraps data in a Cursor positioned at the start.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current byte offset.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the length of the underlying document.
func (c *Cursor) Len() int { return len(c.data) }

// Eof reports whether the cursor has consumed the whole document.
func (c *Cursor) Eof() bool { return c.pos >= len(c.data) }

// Peek returns the byte at the cursor without consuming it.
func (c *Cursor) Peek() (byte, bool) {
	if c.Eof() {
		return 0, false
	}
	return c.data[c.pos], true
}

// PeekAt returns the byte offset bytes ahead of the cursor.
func (c *Cursor) PeekAt(offset int) (byte, bool) {
	i := c.pos + offset
	if i < 0 || i >= len(c.data) {
		return 0, false
	}
	return c.data[i], true
}

// Advance consumes and returns the byte at the cursor.
func (c *Cursor) Advance() (byte, bool) {
	b, ok := c.Peek()
	if ok {
		c.pos++
	}
	return b, ok
}

// SkipN advances the cursor by n bytes without inspecting them. Callers
// must only use this after confirming n bytes are actually present, e.g.
// via HasPrefix.
func (c *Cursor) SkipN(n int) { c.pos += n }

// HasPrefix reports whether the unread remainder of the document starts
// with s.
func (c *Cursor) HasPrefix(s string) bool {
	return bytes.HasPrefix(c.data[c.pos:], []byte(s))
}

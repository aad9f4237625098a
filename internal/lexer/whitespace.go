package lexer

import "github.com/zeenix/tomling/internal/perr"

func isControl(b byte) bool {
	return (b < 0x20 && b != '\t') || b == 0x7f
}

// SkipInlineWhitespace consumes spaces and tabs only (§4.A: "whitespace
// inside lines: spaces and tabs only").
func (c *Cursor) SkipInlineWhitespace() {
	for {
		b, ok := c.Peek()
		if !ok || (b != ' ' && b != '\t') {
			return
		}
		c.pos++
	}
}

// AtNewline reports whether the cursor sits at a line terminator without
// consuming it.
func (c *Cursor) AtNewline() bool {
	b, ok := c.Peek()
	return ok && (b == '\n' || b == '\r')
}

// ConsumeNewline consumes LF, CR, or CRLF. A bare CR not followed by LF is
// an error (§4.A).
func (c *Cursor) ConsumeNewline() *perr.Error {
	start := c.pos
	b, ok := c.Advance()
	if !ok {
		return nil
	}
	if b == '\n' {
		return nil
	}
	if b == '\r' {
		if nb, ok := c.Peek(); ok && nb == '\n' {
			c.pos++
			return nil
		}
		return perr.New(perr.KindLex, start, "bare CR not followed by LF")
	}
	return perr.New(perr.KindLex, start, "expected newline")
}

// SkipComment consumes a `#` comment through (but excluding) the line
// terminator. Control characters other than tab are rejected (§4.A).
func (c *Cursor) SkipComment() *perr.Error {
	b, ok := c.Peek()
	if !ok || b != '#' {
		return nil
	}
	c.pos++
	for {
		b, ok := c.Peek()
		if !ok || b == '\n' || b == '\r' {
			return nil
		}
		if isControl(b) {
			return perr.New(perr.KindLex, c.pos, "control character in comment")
		}
		c.pos++
	}
}

// SkipBlank consumes any run of inline whitespace, comments, and newlines,
// the "blank" separator allowed between expressions and inside arrays.
func (c *Cursor) SkipBlank() *perr.Error {
	for {
		c.SkipInlineWhitespace()
		b, ok := c.Peek()
		if !ok {
			return nil
		}
		switch {
		case b == '#':
			if err := c.SkipComment(); err != nil {
				return err
			}
		case b == '\n' || b == '\r':
			if err := c.ConsumeNewline(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

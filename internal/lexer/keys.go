package lexer

func isBareKeyByte(b byte) bool {
	return b == '_' || b == '-' ||
		(b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z')
}

// ReadBareKey reads a run of `[A-Za-z0-9_-]` (§4.A). Reports false if the
// cursor isn't at a bare key byte.
func (c *Cursor) ReadBareKey() (string, bool) {
	start := c.pos
	for {
		b, ok := c.Peek()
		if !ok || !isBareKeyByte(b) {
			break
		}
		c.pos++
	}
	if c.pos == start {
		return "", false
	}
	return string(c.data[start:c.pos]), true
}

func isValueTerminator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '#', ',', ']', '}':
		return true
	default:
		return false
	}
}

// ReadValueToken reads a run of bytes up to (but not including) the next
// value terminator: whitespace, a newline, a comment, or a container
// delimiter. Used to extract the raw text of a bare (unquoted) scalar —
// boolean, integer, float, or datetime — for classification downstream.
func (c *Cursor) ReadValueToken() string {
	start := c.pos
	for {
		b, ok := c.Peek()
		if !ok || isValueTerminator(b) {
			break
		}
		c.pos++
	}
	return string(c.data[start:c.pos])
}

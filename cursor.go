package cssmin

// cursor owns the source buffer for one tokenization pass. start marks the
// first byte of the token being scanned and current the next unread byte;
// the raw lexeme of the current token is always src[start:current].
type cursor struct {
	src     []byte
	start   int
	current int
}

// atEnd reports whether every source byte has been consumed.
func (c *cursor) atEnd() bool {
	return c.current >= len(c.src)
}

// advance returns the byte at current and moves past it. Callers must check
// atEnd first; every consumer guards its reads.
func (c *cursor) advance() byte {
	b := c.src[c.current]
	c.current++
	return b
}

// peek returns the byte at current+offset, or (0, false) past the end.
func (c *cursor) peek(offset int) (byte, bool) {
	i := c.current + offset
	if i >= len(c.src) {
		return 0, false
	}
	return c.src[i], true
}

// mark returns the current offset so a consumer can later back off to it.
func (c *cursor) mark() int {
	return c.current
}

// rewind moves current back to a previously taken mark.
func (c *cursor) rewind(m int) {
	c.current = m
}

// lexeme returns the zero-copy view of the bytes consumed for the current
// token.
func (c *cursor) lexeme() []byte {
	return c.src[c.start:c.current]
}

// Byte classification. The grammar is byte-level: anything >= 0x80 counts
// as identifier material without decoding code points.

func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isIdentStart(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b >= 0x80
}

func isIdentChar(b byte) bool {
	return isIdentStart(b) || isDigit(b) || b == '-'
}

// validEscapeAt reports whether a backslash at current+offset begins a valid
// escape: a backslash followed by any byte other than a newline.
func (c *cursor) validEscapeAt(offset int) bool {
	if b, ok := c.peek(offset); !ok || b != '\\' {
		return false
	}
	b, ok := c.peek(offset + 1)
	return ok && b != '\n'
}

// consumeEscape consumes an escape sequence. The leading backslash has NOT
// been consumed; callers check validEscapeAt(0) first. A hex escape takes up
// to six hex digits plus one optional trailing whitespace byte; otherwise a
// single escaped byte is consumed.
func (c *cursor) consumeEscape() {
	c.advance() // backslash
	if c.atEnd() {
		return
	}
	b := c.advance()
	if !isHexDigit(b) {
		return
	}
	for i := 1; i < 6; i++ {
		if b, ok := c.peek(0); ok && isHexDigit(b) {
			c.advance()
		} else {
			break
		}
	}
	if b, ok := c.peek(0); ok && isWhitespace(b) {
		c.advance()
	}
}

// wouldStartIdentifier applies the grammar's three-byte lookahead at
// current+offset: an ident-start byte, a hyphen followed by ident material
// or another hyphen or an escape, or a valid escape.
func (c *cursor) wouldStartIdentifier(offset int) bool {
	b, ok := c.peek(offset)
	if !ok {
		return false
	}
	switch {
	case isIdentStart(b):
		return true
	case b == '-':
		next, ok := c.peek(offset + 1)
		if !ok {
			return false
		}
		return isIdentStart(next) || next == '-' || c.validEscapeAt(offset+1)
	case b == '\\':
		return c.validEscapeAt(offset)
	}
	return false
}

// consumeName consumes a maximal run of identifier bytes and escapes.
func (c *cursor) consumeName() {
	for {
		if b, ok := c.peek(0); ok && isIdentChar(b) {
			c.advance()
		} else if c.validEscapeAt(0) {
			c.consumeEscape()
		} else {
			return
		}
	}
}

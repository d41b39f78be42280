package lume

// cursor walks an immutable token sequence left to right with one token of
// lookahead and one of lookbehind. The sequence must end with a TokenEOF
// marker; once the cursor reaches it, advance becomes a no-op.
type cursor struct {
	tokens []Token
	pos    int
}

func (c *cursor) peek() Token {
	return c.tokens[c.pos]
}

func (c *cursor) previous() Token {
	return c.tokens[c.pos-1]
}

func (c *cursor) atEnd() bool {
	return c.peek().Typ == TokenEOF
}

func (c *cursor) advance() Token {
	if c.atEnd() {
		return c.peek()
	}

	c.pos++
	return c.tokens[c.pos-1]
}

func (c *cursor) check(typ TokenType) bool {
	if c.atEnd() {
		return false
	}

	return c.peek().Typ == typ
}

// match consumes the current token iff its type is one of types.
func (c *cursor) match(types ...TokenType) bool {
	for _, typ := range types {
		if c.check(typ) {
			c.advance()
			return true
		}
	}

	return false
}

package compiler

// cursor is a forward only position into the template being compiled. Scanning works on bytes
// as everything the compiler reacts to is ASCII; multibyte runes pass through untouched.
type cursor struct {
	src string
	pos int
}

func (c *cursor) eof() bool { return c.pos >= len(c.src) }

// next consumes and returns the byte under the cursor
func (c *cursor) next() (byte, bool) {
	if c.eof() {
		return 0, false
	}

	ch := c.src[c.pos]
	c.pos++

	return ch, true
}

// peek returns the byte under the cursor without consuming it, or 0 at end of input
func (c *cursor) peek() byte {
	if c.eof() {
		return 0
	}

	return c.src[c.pos]
}

func (c *cursor) skip() { c.pos++ }

// rest returns everything not yet consumed
func (c *cursor) rest() string { return c.src[c.pos:] }

// advance moves the cursor forward n bytes
func (c *cursor) advance(n int) { c.pos += n }

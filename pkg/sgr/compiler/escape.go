package compiler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// escape resolves one backslash escape. The backslash itself has already been consumed.
func (c *Compiler) escape(cur *cursor, out *strings.Builder, raw bool) error {
	ch, ok := cur.next()
	if !ok {
		return fmt.Errorf("%w: trailing backslash", ErrInvalidEscape)
	}

	switch ch {
	case '\'', '"', '\\':
		out.WriteByte(ch)
	case '0':
		out.WriteByte(0)
	case 'n':
		out.WriteByte('\n')
	case 'r':
		out.WriteByte('\r')
	case 't':
		out.WriteByte('\t')
	case 'x':
		return hexEscape(cur, out)
	case 'u':
		return unicodeEscape(cur, out)
	case '\n':
		return c.continuation(cur, out, raw)
	default:
		return fmt.Errorf("%w: \\%c", ErrInvalidEscape, ch)
	}

	return nil
}

// hexEscape resolves \xHH. Only 7-bit values decode to a character; anything above 0x7F is
// rejected rather than silently producing a stray continuation byte.
func hexEscape(cur *cursor, out *strings.Builder) error {
	rest := cur.rest()
	if len(rest) < 2 {
		return fmt.Errorf("%w: \\x needs two hex digits", ErrInvalidEscape)
	}

	v, err := strconv.ParseUint(rest[:2], 16, 8)
	if err != nil {
		return fmt.Errorf("%w: \\x%s", ErrInvalidEscape, rest[:2])
	}

	if v > 0x7F {
		return fmt.Errorf("%w: \\x%s is not a 7-bit value", ErrInvalidEscape, rest[:2])
	}

	cur.advance(2)
	out.WriteByte(byte(v))

	return nil
}

// unicodeEscape resolves \u{H..H} with 1-6 hex digits into the scalar they name
func unicodeEscape(cur *cursor, out *strings.Builder) error {
	if cur.peek() != '{' {
		return fmt.Errorf("%w: \\u must be followed by {", ErrInvalidEscape)
	}

	cur.skip()

	rest := cur.rest()

	end := strings.IndexByte(rest, '}')
	if end < 0 {
		return fmt.Errorf("%w: unterminated \\u escape", ErrInvalidEscape)
	}

	digits := rest[:end]
	if len(digits) == 0 || len(digits) > 6 {
		return fmt.Errorf("%w: \\u{%s}", ErrInvalidEscape, digits)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || !utf8.ValidRune(rune(v)) {
		return fmt.Errorf("%w: \\u{%s}", ErrInvalidEscape, digits)
	}

	cur.advance(end + 1)
	out.WriteRune(rune(v))

	return nil
}

// continuation handles a backslash before a newline: the newline and all whitespace after it
// are dropped and processing resumes on the first character past the run. A continuation that
// runs to the end of the template simply ends it.
func (c *Compiler) continuation(cur *cursor, out *strings.Builder, raw bool) error {
	for {
		ch, ok := cur.next()
		if !ok {
			return nil
		}

		switch ch {
		case ' ', '\n', '\r', '\t':
			continue
		}

		return c.step(ch, cur, out, raw)
	}
}

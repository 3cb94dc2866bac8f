package compiler

import (
	"fmt"
	"strings"

	"awesome-dragon.science/go/sgrfmt/pkg/sgr"
)

// chainDelims is every character that can end a directive segment. Keeping recognition in one
// scan keeps the grammar's tie-breaks in one place.
const chainDelims = "+-#&}"

// directive parses one brace group. The opening '{' has already been consumed.
func (c *Compiler) directive(cur *cursor, out *strings.Builder) error {
	if cur.eof() {
		// a '{' at the very end of the template is left for the downstream formatter
		out.WriteByte('{')
		return nil
	}

	switch ch := cur.peek(); ch {
	case '{':
		cur.skip()
		out.WriteByte('{')

		return nil

	case '}':
		// {} is the downstream formatter's positional placeholder, passed through whole
		cur.skip()
		out.WriteString("{}")

		return nil

	case '+', '-', '#', '&':
		cur.skip()
		return c.chain(cur, out, ch, "")

	default:
		rest := cur.rest()

		idx := strings.IndexAny(rest, chainDelims)
		if idx < 0 {
			// unterminated and holding no directive: not our syntax to validate
			out.WriteByte('{')
			out.WriteString(rest)
			cur.advance(len(rest))

			return nil
		}

		if rest[idx] == '}' {
			// a plain {name} placeholder, preserved verbatim
			out.WriteByte('{')
			out.WriteString(rest[:idx+1])
			cur.advance(idx + 1)

			return nil
		}

		// the group starts with a name and continues with directives; the name is re-emitted
		// as a placeholder once the chain is done
		name := rest[:idx]
		sym := rest[idx]
		cur.advance(idx + 1)

		return c.chain(cur, out, sym, name)
	}
}

// chain compiles a run of directives sharing one brace pair. sym is the directive symbol that
// opened the chain, already consumed. Style and colour codes accumulate into one escape
// sequence; a '&' passthrough flushes what has accumulated, emits its fragment as a {text}
// placeholder and lets the next directive open a fresh sequence, so no inert escapes wrap the
// runtime substituted text.
func (c *Compiler) chain(cur *cursor, out *strings.Builder, sym byte, name string) error {
	var buf sgr.Builder

	for {
		rest := cur.rest()

		idx := strings.IndexAny(rest, chainDelims)
		if idx < 0 {
			return fmt.Errorf("%w: %q", ErrMissingCloseBracket, "{"+string(sym)+rest)
		}

		segment := rest[:idx]
		next := rest[idx]
		cur.advance(idx + 1)

		switch sym {
		case '+':
			code, ok := c.styleCode(segment)
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidKeyword, segment)
			}

			buf.Add(code)

		case '-':
			code, ok := c.styleResetCode(segment)
			if !ok {
				return fmt.Errorf("%w: %q", ErrInvalidKeyword, segment)
			}

			buf.Add(code)

		case '#':
			codes, err := c.colour(segment)
			if err != nil {
				return err
			}

			buf.Add(codes...)

		case '&':
			out.WriteString(buf.Flush())
			out.WriteByte('{')
			out.WriteString(segment)
			out.WriteByte('}')
		}

		if next == '}' {
			break
		}

		sym = next
	}

	out.WriteString(buf.Flush())

	if name != "" {
		out.WriteByte('{')
		out.WriteString(name)
		out.WriteByte('}')
	}

	return nil
}

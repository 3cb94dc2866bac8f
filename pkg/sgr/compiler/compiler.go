package compiler

import (
	"strings"

	"awesome-dragon.science/go/sgrfmt/pkg/sgr"
)

// Compiler compiles styled-string templates. The zero value resolves keywords against the
// standard tables in pkg/sgr; Aliases may map extra shorthand keywords onto standard ones,
// eg. "B" -> "Bold".
type Compiler struct {
	Aliases map[string]string
}

// Compile compiles the body of a template using the default Compiler. See Compiler.Compile
func Compile(body string, raw bool) (string, error) {
	var c Compiler
	return c.Compile(body, raw)
}

// Compile compiles a template body, already unwrapped of its quoting, into a string
// containing literal SGR escape sequences. Raw templates skip backslash escape resolution but
// still have their directives compiled. On failure the template is rejected as a whole and
// the returned string is empty.
func (c *Compiler) Compile(body string, raw bool) (string, error) {
	out := &strings.Builder{}
	out.Grow(len(body))

	cur := &cursor{src: body}

	for {
		ch, ok := cur.next()
		if !ok {
			break
		}

		if err := c.step(ch, cur, out, raw); err != nil {
			return "", err
		}
	}

	return out.String(), nil
}

// step handles one already consumed byte. Split out from the Compile loop so that a
// line-continuation escape can resume on the character that ended its whitespace run.
func (c *Compiler) step(ch byte, cur *cursor, out *strings.Builder, raw bool) error {
	switch ch {
	case '\\':
		if raw {
			out.WriteByte('\\')
			return nil
		}

		return c.escape(cur, out, raw)

	case '{':
		return c.directive(cur, out)

	case '}':
		// }} collapses to one brace, a lone } stays literal. Either way nothing fails here;
		// unmatched braces are the downstream formatter's to reject.
		if cur.peek() == '}' {
			cur.skip()
		}

		out.WriteByte('}')

	default:
		out.WriteByte(ch)
	}

	return nil
}

// resolve maps a keyword through the alias table, if any
func (c *Compiler) resolve(keyword string) string {
	if alias, ok := c.Aliases[keyword]; ok {
		return alias
	}

	return keyword
}

func (c *Compiler) styleCode(keyword string) (uint8, bool) {
	return sgr.StyleCode(c.resolve(keyword))
}

func (c *Compiler) styleResetCode(keyword string) (uint8, bool) {
	return sgr.StyleResetCode(c.resolve(keyword))
}

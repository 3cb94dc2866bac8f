package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// Literal is a string literal as written in host source text, unwrapped of its quoting.
// Guards is the number of '#' pairs around a raw literal's quotes and only matters for
// reconstructing the quoting on output.
type Literal struct {
	Body   string
	Raw    bool
	Guards int
}

// UnwrapLiteral splits a source-text string literal into its body and quoting shape. Normal
// literals are "...", raw literals are r"..." with any number of balanced '#' guards, as in
// r#"..."#. Anything else fails with ErrNotStringLiteral.
func UnwrapLiteral(src string) (Literal, error) {
	if rest := strings.TrimPrefix(src, "r"); rest != src {
		trimmed := strings.Trim(rest, "#")
		guards := (len(rest) - len(trimmed)) / 2

		body, ok := cutQuotes(trimmed)
		if !ok {
			return Literal{}, fmt.Errorf("%w: %q", ErrNotStringLiteral, src)
		}

		return Literal{Body: body, Raw: true, Guards: guards}, nil
	}

	body, ok := cutQuotes(src)
	if !ok {
		return Literal{}, fmt.Errorf("%w: %q", ErrNotStringLiteral, src)
	}

	return Literal{Body: body}, nil
}

func cutQuotes(s string) (string, bool) {
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", false
	}

	return s[1 : len(s)-1], true
}

// Quote wraps body in the same quoting shape this Literal was written with. Normal literals
// are re-escaped so the result stays a well formed literal even though the body now holds
// control characters.
func (l Literal) Quote(body string) string {
	if !l.Raw {
		return strconv.Quote(body)
	}

	guards := strings.Repeat("#", l.Guards)

	return "r" + guards + `"` + body + `"` + guards
}

// CompileLiteral compiles a string literal as written in host source text and returns a
// replacement literal with the same quoting shape. See Compiler.Compile for the failure
// modes beyond ErrNotStringLiteral.
func (c *Compiler) CompileLiteral(src string) (string, error) {
	lit, err := UnwrapLiteral(src)
	if err != nil {
		return "", err
	}

	out, err := c.Compile(lit.Body, lit.Raw)
	if err != nil {
		return "", err
	}

	return lit.Quote(out), nil
}

// CompileLiteral compiles a string literal using the default Compiler. See
// Compiler.CompileLiteral
func CompileLiteral(src string) (string, error) {
	var c Compiler
	return c.CompileLiteral(src)
}

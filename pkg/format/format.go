// Package format runs the formatting step downstream of the SGR compiler: it substitutes the
// {name} placeholders the compiler preserved with caller supplied values.
package format

import (
	"errors"
	"fmt"
	"strings"

	"awesome-dragon.science/go/sgrfmt/pkg/sgr/compiler"
)

var (
	// ErrEmptyFormat Is returned when the format is empty
	ErrEmptyFormat = errors.New("format: cannot compile an empty format")
	// ErrUncompiled is returned when executing a Format that was never compiled
	ErrUncompiled = errors.New("format: cannot execute an uncompiled Format")
)

// Format represents a styled-string template plus its compiled form
type Format struct {
	FormatString string // The original template string
	compiled     string
	done         bool
}

// Compile compiles the template through the given compiler (nil means the default one). If
// the template is invalid or the Format has already been compiled, Compile errors.
func (f *Format) Compile(c *compiler.Compiler) error {
	if f.done {
		return errors.New("format: cannot compile a format twice")
	}

	if f.FormatString == "" {
		return ErrEmptyFormat
	}

	if c == nil {
		c = &compiler.Compiler{}
	}

	res, err := c.Compile(f.FormatString, false)
	if err != nil {
		return err
	}

	f.compiled = res
	f.done = true

	return nil
}

// Compiled returns the compiled text with placeholders still in place
func (f *Format) Compiled() string { return f.compiled }

// ExecuteBytes is like Execute but returns a slice of bytes
func (f *Format) ExecuteBytes(data map[string]interface{}) ([]byte, error) {
	s, err := f.Execute(data)
	return []byte(s), err
}

// Execute substitutes the placeholders in a compiled Format from the given data and returns
// the resulting string
func (f *Format) Execute(data map[string]interface{}) (string, error) {
	if !f.done {
		return "", ErrUncompiled
	}

	return Substitute(f.compiled, data), nil
}

// Substitute replaces every {name} group in the passed string whose name is a key in data
// with that value. Groups with unknown names, empty {} groups, and unpaired braces are left
// exactly as they are; it is not this package's place to reject them.
func Substitute(in string, data map[string]interface{}) string {
	out := strings.Builder{}
	out.Grow(len(in))

	for {
		open := strings.IndexByte(in, '{')
		if open < 0 {
			out.WriteString(in)
			break
		}

		end := strings.IndexByte(in[open:], '}')
		if end < 0 {
			out.WriteString(in)
			break
		}

		end += open

		// anchor the group on the innermost '{' so literal braces ahead of a placeholder
		// do not swallow it, eg. "{{name}}" holds the group {name}, not {{name}
		if inner := strings.LastIndexByte(in[open:end], '{'); inner > 0 {
			open += inner
		}

		name := in[open+1 : end]
		if val, ok := data[name]; ok {
			out.WriteString(in[:open])
			out.WriteString(fmt.Sprint(val))
		} else {
			out.WriteString(in[:end+1])
		}

		in = in[end+1:]
	}

	return out.String()
}

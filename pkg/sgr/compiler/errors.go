package compiler

import "errors"

// The failure classes a compile can end with. All of them reject the template as a unit,
// there is no partial output. Callers should match with errors.Is as the returned errors
// carry extra context.
var (
	// ErrNotStringLiteral is returned by CompileLiteral when the passed source text is not a
	// quoted string literal
	ErrNotStringLiteral = errors.New("compiler: not a string literal")
	// ErrInvalidEscape is returned when a backslash escape is unknown or malformed
	ErrInvalidEscape = errors.New("compiler: invalid escape")
	// ErrInvalidKeyword is returned when a +/- directive names an unknown style
	ErrInvalidKeyword = errors.New("compiler: invalid keyword")
	// ErrInvalidColour is returned when a # directive holds an unknown name or a malformed
	// numeric colour
	ErrInvalidColour = errors.New("compiler: invalid colour")
	// ErrMissingCloseBracket is returned when a directive group is not closed before the end
	// of the template
	ErrMissingCloseBracket = errors.New("compiler: missing close bracket")
)

// Package compiler turns styled-string templates into strings containing literal SGR escape
// sequences, leaving ordinary placeholders alone for a downstream formatter.
//
// Templates are plain strings with brace delimited style directives embedded in them.
// A directive group starts with '{' and holds a chain of directives separated by the
// directive symbols themselves:
//    +Name	apply the named style, eg. {+Bold}
//    -Name	remove the named style, eg. {-Bold}
//    #Spec	set a colour, eg. {#RedFg}, {#f(255,0,0)}, {#b[1f]}
//    &text	preserve text as a {text} placeholder, splitting the escape sequence around it
//
// Colour specs are either one of the named 16-colour keywords (BlackFg..WhiteBg, DefaultFg,
// DefaultBg), or an 'f' (foreground) or 'b' (background) prefix followed by a numeric form:
// (n) for a 256-colour palette index, (r,g,b) for truecolour, [xx] for a palette index in
// hex, or [rrggbb] for truecolour in hex.
//
// Codes in one group accumulate into a single escape sequence, so {+Bold-Dim#RedFg} becomes
// "\x1b[1;22;31m". A group may also start with a name, which is re-emitted as a trailing
// placeholder: {name+Bold} becomes "\x1b[1m{name}".
//
// Anything in braces that contains no directive symbol is passed through verbatim; it is a
// placeholder for whatever formatter runs afterwards and is not validated here. "{{" and "}}"
// collapse to one literal brace each.
//
// Normal (non-raw) templates additionally have backslash escapes resolved: \n \r \t \0 \\ \'
// \", \xHH (7-bit), \u{H..H} (unicode scalar, 1-6 hex digits), and a backslash before a
// newline which drops the newline and all immediately following whitespace.
package compiler

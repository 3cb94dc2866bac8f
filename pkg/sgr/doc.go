// Package sgr implements the runtime side of SGR ("Select Graphic Rendition") formatting.
//
// SGR sequences are how terminals are told to change text style and colour. A sequence is a
// series of numeric codes joined by ';' and framed as ESC [ codes m, for example "\x1b[1;31m"
// for bold red text.
//
// This package holds the keyword to code tables shared with the template compiler, a Builder
// that accumulates codes and emits them as minimal sequences, and a Writer that does the same
// directly onto an io.Writer for codes only known at run time. Strip does the inverse and
// removes SGR sequences from a string entirely, for sinks that cannot display them.
package sgr

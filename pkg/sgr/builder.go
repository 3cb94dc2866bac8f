package sgr

import "strconv"

// Builder accumulates SGR codes until they are emitted as a single escape sequence. Codes are
// kept in the order they were added and joined with ';' on emission. The zero value is ready
// to use.
type Builder struct {
	codes []uint8
}

// Add appends the given codes to the pending buffer
func (b *Builder) Add(codes ...uint8) {
	b.codes = append(b.codes, codes...)
}

// Chain is Add but returns the Builder to allow call chaining
func (b *Builder) Chain(codes ...uint8) *Builder {
	b.codes = append(b.codes, codes...)
	return b
}

// Empty returns whether any codes are pending
func (b *Builder) Empty() bool { return len(b.codes) == 0 }

// Reset drops all pending codes
func (b *Builder) Reset() { b.codes = b.codes[:0] }

// Sequence returns the pending codes as a complete escape sequence without clearing them.
// An empty buffer produces an empty string rather than an inert "\x1b[m".
func (b *Builder) Sequence() string {
	if len(b.codes) == 0 {
		return ""
	}

	out := make([]byte, 0, len(CSI)+len(b.codes)*4+1)
	out = append(out, CSI...)
	out = appendCodes(out, b.codes)

	return string(append(out, 'm'))
}

// Partial returns the pending codes joined with ';' but without the CSI framing, for callers
// that manage the escape sequence themselves. Does not clear the buffer.
func (b *Builder) Partial() string {
	return string(appendCodes(nil, b.codes))
}

// Flush returns the pending codes as a complete escape sequence and clears the buffer
func (b *Builder) Flush() string {
	out := b.Sequence()
	b.Reset()

	return out
}

// codes are rendered in decimal with no leading zeros
func appendCodes(dst []byte, codes []uint8) []byte {
	for i, code := range codes {
		if i > 0 {
			dst = append(dst, ';')
		}

		dst = strconv.AppendUint(dst, uint64(code), 10)
	}

	return dst
}

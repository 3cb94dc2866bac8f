package sgr

import "io"

// Writer wraps an io.Writer with the ability to buffer SGR codes and flush them as escape
// sequences in between ordinary writes. It is the runtime counterpart to the compile time
// emission done in pkg/sgr/compiler, for codes that are only known while a program runs.
type Writer struct {
	out io.Writer
	buf Builder
}

// NewWriter wraps the given io.Writer
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: w}
}

// Code buffers a single SGR code. Returns the Writer to allow call chaining
func (w *Writer) Code(code uint8) *Writer {
	w.buf.Add(code)
	return w
}

// Codes buffers any number of SGR codes. Returns the Writer to allow call chaining
func (w *Writer) Codes(codes ...uint8) *Writer {
	w.buf.Add(codes...)
	return w
}

// Flush writes all buffered codes as one complete escape sequence. Flushing an empty buffer
// writes nothing.
func (w *Writer) Flush() error {
	seq := w.buf.Flush()
	if seq == "" {
		return nil
	}

	_, err := io.WriteString(w.out, seq)

	return err
}

// FlushPartial writes the buffered codes ';'-joined without the escape framing, for callers
// interleaving them into a sequence they opened themselves
func (w *Writer) FlushPartial() error {
	if w.buf.Empty() {
		return nil
	}

	_, err := io.WriteString(w.out, w.buf.Partial())
	w.buf.Reset()

	return err
}

// WriteString writes s to the underlying writer, flushing any buffered codes first so that
// styling applies to it
func (w *Writer) WriteString(s string) error {
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := io.WriteString(w.out, s)

	return err
}

// Write implements io.Writer
func (w *Writer) Write(p []byte) (int, error) {
	if err := w.Flush(); err != nil {
		return 0, err
	}

	return w.out.Write(p)
}

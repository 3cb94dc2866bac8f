package sgr

import (
	"bytes"
	"testing"
)

func TestWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	if err := w.Code(1).Codes(38, 5, 31).Flush(); err != nil {
		t.Fatalf("Writer.Flush() error = %s", err)
	}

	if err := w.WriteString("hi"); err != nil {
		t.Fatalf("Writer.WriteString() error = %s", err)
	}

	if err := w.Code(0).Flush(); err != nil {
		t.Fatalf("Writer.Flush() error = %s", err)
	}

	want := "\x1b[1;38;5;31mhi\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Writer output = %q, want %q", got, want)
	}
}

func TestWriter_FlushEmpty(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	if err := w.Flush(); err != nil {
		t.Fatalf("Writer.Flush() error = %s", err)
	}

	if buf.Len() != 0 {
		t.Errorf("flushing an empty Writer wrote %q", buf.String())
	}
}

func TestWriter_FlushPartial(t *testing.T) {
	buf := &bytes.Buffer{}
	w := NewWriter(buf)

	if err := w.Codes(1, 31).FlushPartial(); err != nil {
		t.Fatalf("Writer.FlushPartial() error = %s", err)
	}

	if got := buf.String(); got != "1;31" {
		t.Errorf("Writer.FlushPartial() wrote %q, want %q", got, "1;31")
	}
}

package sgr

import "testing"

func TestBuilder_Sequence(t *testing.T) {
	tests := []struct {
		name  string
		codes []uint8
		want  string
	}{
		{
			name:  "empty emits nothing",
			codes: nil,
			want:  "",
		},
		{
			name:  "single code",
			codes: []uint8{1},
			want:  "\x1b[1m",
		},
		{
			name:  "codes join in order",
			codes: []uint8{1, 22, 31},
			want:  "\x1b[1;22;31m",
		},
		{
			name:  "no leading zeros",
			codes: []uint8{0, 5, 255},
			want:  "\x1b[0;5;255m",
		},
		{
			name:  "truecolour run",
			codes: []uint8{38, 2, 170, 187, 204},
			want:  "\x1b[38;2;170;187;204m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			b := Builder{}
			b.Add(tt.codes...)

			if got := b.Sequence(); got != tt.want {
				t.Errorf("Builder.Sequence() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_Flush(t *testing.T) {
	b := Builder{}
	b.Chain(1).Chain(31)

	if got := b.Flush(); got != "\x1b[1;31m" {
		t.Errorf("Builder.Flush() = %q, want %q", got, "\x1b[1;31m")
	}

	if !b.Empty() {
		t.Error("Builder should be empty after Flush()")
	}

	if got := b.Flush(); got != "" {
		t.Errorf("second Builder.Flush() = %q, want empty", got)
	}
}

func TestBuilder_Partial(t *testing.T) {
	b := Builder{}
	b.Add(48, 5, 31)

	if got := b.Partial(); got != "48;5;31" {
		t.Errorf("Builder.Partial() = %q, want %q", got, "48;5;31")
	}
}

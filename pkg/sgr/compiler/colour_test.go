package compiler

import (
	"errors"
	"testing"
)

func TestCompile_Colours(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "foreground indexed decimal",
			in:   "{#f(31)}",
			want: "\x1b[38;5;31m",
		},
		{
			name: "foreground indexed hex",
			in:   "{#f[1f]}",
			want: "\x1b[38;5;31m",
		},
		{
			name: "background indexed decimal",
			in:   "{#b(31)}",
			want: "\x1b[48;5;31m",
		},
		{
			name: "background indexed hex",
			in:   "{#b[1f]}",
			want: "\x1b[48;5;31m",
		},
		{
			name: "foreground truecolour decimal",
			in:   "{#f(170,187,204)}",
			want: "\x1b[38;2;170;187;204m",
		},
		{
			name: "foreground truecolour hex",
			in:   "{#f[aabbcc]}",
			want: "\x1b[38;2;170;187;204m",
		},
		{
			name: "background truecolour decimal",
			in:   "{#b(0,128,255)}",
			want: "\x1b[48;2;0;128;255m",
		},
		{
			name: "background truecolour hex",
			in:   "{#b[0080ff]}",
			want: "\x1b[48;2;0;128;255m",
		},
		{
			name: "index boundaries",
			in:   "{#f(0)#b(255)}",
			want: "\x1b[38;5;0;48;5;255m",
		},
		{
			name: "colour chained with styles",
			in:   "{+Bold#f[ff0000]-Bold}",
			want: "\x1b[1;38;2;255;0;0;22m",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.in, false)
			if err != nil {
				t.Fatalf("Compile() error = %s", err)
			}

			if got != tt.want {
				t.Errorf("Compile() = %q, want %q", got, tt.want)
			}
		})
	}
}

// the hex and decimal forms must always agree
func TestCompile_ColourEquivalence(t *testing.T) {
	pairs := []struct {
		name     string
		hex, dec string
	}{
		{name: "foreground truecolour", hex: "{#f[aabbcc]}", dec: "{#f(170,187,204)}"},
		{name: "background truecolour", hex: "{#b[010203]}", dec: "{#b(1,2,3)}"},
		{name: "foreground indexed", hex: "{#f[1f]}", dec: "{#f(31)}"},
		{name: "background indexed", hex: "{#b[ff]}", dec: "{#b(255)}"},
	}

	for _, tt := range pairs {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			fromHex, err := Compile(tt.hex, false)
			if err != nil {
				t.Fatalf("Compile(%q) error = %s", tt.hex, err)
			}

			fromDec, err := Compile(tt.dec, false)
			if err != nil {
				t.Fatalf("Compile(%q) error = %s", tt.dec, err)
			}

			if fromHex != fromDec {
				t.Errorf("Compile(%q) = %q but Compile(%q) = %q", tt.hex, fromHex, tt.dec, fromDec)
			}
		})
	}
}

func TestCompile_ColourErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "unknown name", in: "{#Sparkle}"},
		{name: "empty payload", in: "{#}"},
		{name: "bad prefix", in: "{#q(1)}"},
		{name: "empty parens", in: "{#f()}"},
		{name: "two components", in: "{#f(1,2)}"},
		{name: "four components", in: "{#f(1,2,3,4)}"},
		{name: "component out of range", in: "{#f(256)}"},
		{name: "negative component", in: "{#f(-1)}"},
		{name: "non numeric component", in: "{#f(red)}"},
		{name: "hex wrong length", in: "{#f[abc]}"},
		{name: "hex non hex", in: "{#f[zz]}"},
		{name: "hex six non hex", in: "{#f[gghhii]}"},
		{name: "mismatched wrapping", in: "{#f(12]}"},
		{name: "no wrapping", in: "{#f123456}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compile(tt.in, false)
			if !errors.Is(err, ErrInvalidColour) {
				t.Fatalf("Compile() error = %v, want ErrInvalidColour", err)
			}

			if got != "" {
				t.Errorf("failed Compile() returned partial output %q", got)
			}
		})
	}
}

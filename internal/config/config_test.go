package config

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func writeConf(t *testing.T, dir, data string) string {
	t.Helper()

	path := filepath.Join(dir, "sgrfmt.toml")
	if err := ioutil.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("could not write test config: %s", err)
	}

	return path
}

func TestGet(t *testing.T) {
	tests := []struct {
		name          string
		tomlStr       string
		expectedError string
		expectedConf  *Config
	}{
		{
			name:         "empty file yields defaults",
			tomlStr:      "",
			expectedConf: Default(),
		},
		{
			name: "full config",
			tomlStr: `
			prompt = "> "
			strip = true

			[aliases]
			B = "Bold"
			R = "RedFg"
			`,
			expectedConf: &Config{
				Prompt:  "> ",
				Strip:   true,
				Aliases: map[string]string{"B": "Bold", "R": "RedFg"},
			},
		},
		{
			name: "alias to unknown keyword",
			tomlStr: `
			[aliases]
			S = "Sparkle"
			`,
			expectedError: `invalid config: alias "S" maps to unknown keyword "Sparkle"`,
		},
		{
			name:          "malformed toml",
			tomlStr:       `prompt = `,
			expectedError: "could not unmarshal config",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dir, err := ioutil.TempDir("", "sgrfmt-conf")
			if err != nil {
				t.Fatalf("could not make temp dir: %s", err)
			}

			defer os.RemoveAll(dir)

			conf, err := Get(writeConf(t, dir, tt.tomlStr))

			if tt.expectedError != "" {
				if err == nil {
					t.Fatalf("Get() expected error containing %q, got conf %#v", tt.expectedError, conf)
				}

				if !strings.Contains(err.Error(), tt.expectedError) {
					t.Fatalf("Get() error = %q, want one containing %q", err, tt.expectedError)
				}

				return
			}

			if err != nil {
				t.Fatalf("Get() error = %s", err)
			}

			if !reflect.DeepEqual(conf, tt.expectedConf) {
				t.Errorf("Get() = %#v, want %#v", conf, tt.expectedConf)
			}
		})
	}
}

func TestGet_Missing(t *testing.T) {
	conf, err := Get("does/not/exist.toml")
	if !errors.Is(err, ErrConfNotExist) {
		t.Fatalf("Get() error = %v, want ErrConfNotExist", err)
	}

	if !reflect.DeepEqual(conf, Default()) {
		t.Errorf("Get() on a missing file = %#v, want defaults", conf)
	}
}

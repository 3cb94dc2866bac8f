// Package config holds the on-disk configuration for the sgrfmt tool
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pelletier/go-toml"

	"awesome-dragon.science/go/sgrfmt/pkg/sgr"
)

// ErrConfNotExist is returned alongside a default config when the config file is missing
var ErrConfNotExist = errors.New("config file not found. Using defaults")

// Config is the main config struct
type Config struct {
	Prompt  string            `toml:"prompt"`
	Strip   bool              `toml:"strip" comment:"strip escape sequences from interactive output"`
	Aliases map[string]string `toml:"aliases" comment:"maps shorthand keywords onto standard ones, eg. B = \"Bold\""`
}

// Default returns the config used when no file exists
func Default() *Config {
	return &Config{Prompt: "sgr> "}
}

// Get reads and validates the config at the given path. A missing file yields the default
// config and ErrConfNotExist, which callers may treat as non-fatal.
func Get(path string) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), ErrConfNotExist
	} else if err != nil {
		return nil, fmt.Errorf("could not read config file: %w", err)
	}

	conf := Default()
	if err := toml.Unmarshal(data, conf); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	if err := conf.validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return conf, nil
}

// validate makes sure every alias points at a keyword some directive can resolve
func (c *Config) validate() error {
	for alias, target := range c.Aliases {
		if _, ok := sgr.StyleCode(target); ok {
			continue
		}

		if _, ok := sgr.StyleResetCode(target); ok {
			continue
		}

		if _, ok := sgr.ColourCode(target); ok {
			continue
		}

		return fmt.Errorf("alias %q maps to unknown keyword %q", alias, target)
	}

	return nil
}

// Package profile loads named trim profiles from configuration files.
//
// Programs that trim text in several places (table cells, log lines,
// status bars) usually keep the budgets in config rather than in code.
// A profile names a trim mode, a budget, and an ellipsis policy:
//
//	[profiles.cell]
//	mode = "width"
//	budget = 24
//	ellipsis = "ascii"
//
//	[profiles.preview]
//	mode = "height"
//	budget = 10
//	ellipsis = "contd"
//
// Load reads TOML or YAML (chosen by file extension), Apply trims text
// with a named profile, Watch reloads the file when it changes, and
// Schema describes the format as a JSON schema for editor validation.
package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/shear/trim"
)

// Mode selects which measure a profile trims by.
type Mode string

const (
	// Length trims by UTF-8 byte length.
	Length Mode = "length"

	// Width trims by display column width.
	Width Mode = "width"

	// Height trims by line count.
	Height Mode = "height"

	// Runes trims by rune count.
	Runes Mode = "runes"
)

// Profile is one named trim configuration.
type Profile struct {
	// Mode selects the measure: "length", "width", "height", or "runes".
	Mode Mode `json:"mode" yaml:"mode" toml:"mode"`

	// Budget is the maximum total weight of the trimmed text, in the
	// mode's units (bytes, columns, lines, or runes).
	Budget int `json:"budget" yaml:"budget" toml:"budget"`

	// Ellipsis names the continuation marker: "ascii", "horizontal",
	// "contd", or "empty". Default: "ascii".
	Ellipsis string `json:"ellipsis,omitempty" yaml:"ellipsis,omitempty" toml:"ellipsis,omitempty"`
}

// Config is a set of named trim profiles.
type Config struct {
	Profiles map[string]Profile `json:"profiles" yaml:"profiles" toml:"profiles"`
}

// Load reads a profile config from path. The format is chosen by file
// extension: ".toml", or ".yaml"/".yml". Every profile is validated.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config extension %q", ext)
	}

	for name, p := range cfg.Profiles {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("profile %q: %w", name, err)
		}
	}
	return &cfg, nil
}

// Validate checks that the profile names a known mode and ellipsis and
// has a non-negative budget.
func (p Profile) Validate() error {
	switch p.Mode {
	case Length, Width, Height, Runes:
	default:
		return fmt.Errorf("unknown mode %q", p.Mode)
	}
	if p.Budget < 0 {
		return fmt.Errorf("budget must be >= 0, got %d", p.Budget)
	}
	if _, err := p.ellipsis(); err != nil {
		return err
	}
	return nil
}

// Apply trims s according to the profile.
func (p Profile) Apply(s string) (string, error) {
	e, err := p.ellipsis()
	if err != nil {
		return "", err
	}
	switch p.Mode {
	case Length:
		return trim.ToLength(s, p.Budget, e), nil
	case Width:
		return trim.ToWidth(s, p.Budget, e), nil
	case Height:
		return trim.ToHeight(s, p.Budget, e), nil
	case Runes:
		return trim.ToRunes(s, p.Budget, e), nil
	default:
		return "", fmt.Errorf("unknown mode %q", p.Mode)
	}
}

// Apply trims s with the named profile.
func (c *Config) Apply(name, s string) (string, error) {
	p, ok := c.Profiles[name]
	if !ok {
		return "", fmt.Errorf("unknown profile %q", name)
	}
	return p.Apply(s)
}

func (p Profile) ellipsis() (trim.Ellipsis, error) {
	switch p.Ellipsis {
	case "", "ascii":
		return trim.Ascii, nil
	case "horizontal":
		return trim.Horizontal, nil
	case "contd":
		return trim.Contd, nil
	case "empty":
		return trim.Empty, nil
	default:
		return trim.Empty, fmt.Errorf("unknown ellipsis %q", p.Ellipsis)
	}
}

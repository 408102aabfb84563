package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jmylchreest/hueseed/internal/seed"
)

// Formats lists the output formats accepted by the format key.
var Formats = []string{"hex", "rgb", "lch", "table"}

// Themes lists the values accepted by the theme key.
var Themes = []string{"dark", "light"}

// KeySpec describes a single configuration key.
type KeySpec struct {
	// Name is the CLI-facing key name (e.g. "seed-mode").
	Name string

	// Description is a short human-readable explanation shown in help text.
	Description string

	// Get returns the current value for this key from a loaded Config.
	Get func(cfg *Config) string

	// Set validates value and applies it to the given Config (in memory
	// only; the caller is responsible for calling Save).
	Set func(cfg *Config, value string) error
}

// EnvVar returns the environment variable that overrides this key.
func (k KeySpec) EnvVar() string {
	return "HUESEED_" + strings.ToUpper(strings.ReplaceAll(k.Name, "-", "_"))
}

// Keys is the authoritative list of all supported configuration keys.
// To add a new option: add a field to Config and append a KeySpec here.
var Keys = []KeySpec{
	{
		Name:        "count",
		Description: "Number of colours to generate when --count is not given",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.Count) },
		Set: func(cfg *Config, v string) error {
			n, err := atLeast(v, 1)
			if err != nil {
				return err
			}
			cfg.Count = n
			return nil
		},
	},
	{
		Name:        "theme",
		Description: "Target theme: dark or light",
		Get:         func(cfg *Config) string { return cfg.Theme },
		Set: func(cfg *Config, v string) error {
			v, err := oneOf(v, Themes)
			if err != nil {
				return err
			}
			cfg.Theme = v
			return nil
		},
	},
	{
		Name:        "input",
		Description: "Seed colour source used when --input is not given",
		Get:         func(cfg *Config) string { return cfg.Input },
		Set: func(cfg *Config, v string) error {
			v = strings.TrimSpace(v)
			if v == "" {
				return fmt.Errorf("input source cannot be empty")
			}
			cfg.Input = v
			return nil
		},
	},
	{
		Name:        "seed-mode",
		Description: "How the scheme's random seed is chosen: colour, manual, random",
		Get:         func(cfg *Config) string { return cfg.SeedMode },
		Set: func(cfg *Config, v string) error {
			mode, err := seed.ParseMode(strings.TrimSpace(v))
			if err != nil {
				return err
			}
			cfg.SeedMode = string(mode)
			return nil
		},
	},
	{
		Name:        "image-size",
		Description: "Width and height in pixels of rendered swatch images",
		Get:         func(cfg *Config) string { return strconv.Itoa(cfg.ImageSize) },
		Set: func(cfg *Config, v string) error {
			n, err := atLeast(v, 16)
			if err != nil {
				return err
			}
			cfg.ImageSize = n
			return nil
		},
	},
	{
		Name:        "format",
		Description: "Output format: hex, rgb, lch or table",
		Get:         func(cfg *Config) string { return cfg.Format },
		Set: func(cfg *Config, v string) error {
			v, err := oneOf(v, Formats)
			if err != nil {
				return err
			}
			cfg.Format = v
			return nil
		},
	},
}

func atLeast(v string, minimum int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", v)
	}
	if n < minimum {
		return 0, fmt.Errorf("value must be at least %d, got %d", minimum, n)
	}
	return n, nil
}

func oneOf(v string, valid []string) (string, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	if !slices.Contains(valid, v) {
		return "", fmt.Errorf("invalid value %q (valid: %s)", v, strings.Join(valid, ", "))
	}
	return v, nil
}

// Lookup returns the KeySpec for the given name, or nil if not found.
// The name is matched case-insensitively after trimming whitespace.
func Lookup(name string) *KeySpec {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for i := range Keys {
		if Keys[i].Name == normalized {
			return &Keys[i]
		}
	}
	return nil
}

// KeyNames returns the names of all registered keys.
func KeyNames() []string {
	names := make([]string, len(Keys))
	for i, k := range Keys {
		names[i] = k.Name
	}
	return names
}

// KeysHelp builds a formatted block listing all available keys and their
// descriptions, suitable for inclusion in Cobra Long help text.
func KeysHelp() string {
	maxLen := 0
	for _, k := range Keys {
		maxLen = max(maxLen, len(k.Name))
	}

	var b strings.Builder
	b.WriteString("Available keys:\n")
	for _, k := range Keys {
		fmt.Fprintf(&b, "  %-*s   %s\n", maxLen, k.Name, k.Description)
	}
	return b.String()
}

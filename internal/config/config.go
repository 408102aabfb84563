// Package config handles persistent user configuration for hueseed.
//
// Configuration is stored as JSON at ~/.config/hueseed/config.json (or the
// platform-equivalent path returned by os.UserConfigDir). Values from
// HUESEED_* environment variables are applied on top of the file.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	appDir   = "hueseed"
	fileName = "config.json"
)

// Defaults used when neither the file nor the environment sets a value.
const (
	DefaultCount     = 5
	DefaultTheme     = "dark"
	DefaultInput     = "random"
	DefaultSeedMode  = "colour"
	DefaultImageSize = 500
	DefaultFormat    = "hex"
)

// pathOverride, when non-empty, replaces the default config file path.
// Intended for testing. Use SetPath / ResetPath to manage.
var pathOverride string

// SetPath overrides the config file path. Intended for testing.
func SetPath(p string) { pathOverride = p }

// ResetPath clears the path override, reverting to the default. Intended for testing.
func ResetPath() { pathOverride = "" }

// Config holds user preferences that persist across invocations.
type Config struct {
	Count     int    `json:"count,omitempty"`
	Theme     string `json:"theme,omitempty"`
	Input     string `json:"input,omitempty"`
	SeedMode  string `json:"seed_mode,omitempty"`
	ImageSize int    `json:"image_size,omitempty"`
	Format    string `json:"format,omitempty"`
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() *Config {
	return &Config{
		Count:     DefaultCount,
		Theme:     DefaultTheme,
		Input:     DefaultInput,
		SeedMode:  DefaultSeedMode,
		ImageSize: DefaultImageSize,
		Format:    DefaultFormat,
	}
}

// DarkMode reports whether the configured theme is dark.
func (c *Config) DarkMode() bool {
	return c.Theme == "dark"
}

// Path returns the absolute path to the config file.
// If SetPath has been called, that value is returned instead.
func Path() (string, error) {
	if pathOverride != "" {
		return pathOverride, nil
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: unable to determine config directory: %w", err)
	}
	return filepath.Join(base, appDir, fileName), nil
}

// Load reads the config file from disk over the defaults.
// If the file does not exist, the defaults are returned (not an error).
func Load() (*Config, error) {
	return loadFrom("")
}

func loadFrom(path string) (*Config, error) {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return nil, err
		}
	}

	cfg := Defaults()
	data, err := os.ReadFile(path) // #nosec G304 -- config path is ours or set by tests
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to disk, creating the parent directory if needed.
func (c *Config) Save() error {
	return c.saveTo("")
}

func (c *Config) saveTo(path string) error {
	if path == "" {
		var err error
		path, err = Path()
		if err != nil {
			return err
		}
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// LoadFrom reads the config from the given path. Intended for testing.
func LoadFrom(path string) (*Config, error) {
	return loadFrom(path)
}

// SaveTo writes the config to the given path. Intended for testing.
func (c *Config) SaveTo(path string) error {
	return c.saveTo(path)
}

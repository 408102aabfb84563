package config

import (
	"fmt"
	"os"
)

// ApplyEnv overrides cfg with any HUESEED_* variables set in the environment.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.LookupEnv)
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	for _, k := range Keys {
		v, ok := lookup(k.EnvVar())
		if !ok || v == "" {
			continue
		}
		if err := k.Set(c, v); err != nil {
			return fmt.Errorf("config: %s: %w", k.EnvVar(), err)
		}
	}
	return nil
}

// LoadWithEnv loads the config file and applies environment overrides.
func LoadWithEnv() (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

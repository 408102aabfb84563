// Package literal provides an input plugin that takes the seed colour from the
// command line.
package literal

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/colour"
	"github.com/jmylchreest/hueseed/internal/plugin/input"
)

// Plugin implements the input.Plugin interface for a user-supplied colour.
type Plugin struct {
	value string
}

// New creates a new colour input plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "colour"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Use a colour given as hex (#1a2b3c) or rgb(...), lab(...), lch(...), xyz(...)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.value, "colour.value", "", "Seed colour, e.g. '#3366cc' or 'lch(50, 40, 270)'")
}

// SetValue sets the seed colour literal.
func (p *Plugin) SetValue(v string) {
	p.value = v
}

// Validate checks that a parseable colour was given.
func (p *Plugin) Validate() error {
	if p.value == "" {
		return fmt.Errorf("seed colour is required (use --colour.value)")
	}
	if _, err := colour.Parse(p.value); err != nil {
		return fmt.Errorf("invalid seed colour: %w", err)
	}
	return nil
}

// Seed parses the configured colour.
func (p *Plugin) Seed(_ context.Context, opts input.SeedOptions) (colour.Colour, error) {
	c, err := colour.Parse(p.value)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("invalid seed colour: %w", err)
	}
	opts.LoggerOrNull().Debug("parsed seed colour", "input", p.value, "hex", c.Hex(), "lch", c.LCH().String())
	return c, nil
}

// Package random provides an input plugin that picks a random seed colour.
package random

import (
	"context"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/colour"
	"github.com/jmylchreest/hueseed/internal/plugin/input"
	"github.com/jmylchreest/hueseed/internal/seed"
)

// optionalSeed is an int64 flag that remembers whether it was set.
type optionalSeed struct {
	value int64
	set   bool
}

func (o *optionalSeed) String() string {
	if !o.set {
		return ""
	}
	return strconv.FormatInt(o.value, 10)
}

func (o *optionalSeed) Set(s string) error {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return err
	}
	o.value, o.set = v, true
	return nil
}

func (o *optionalSeed) Type() string {
	return "int64"
}

// Plugin implements the input.Plugin interface for random seed colours.
type Plugin struct {
	seed optionalSeed
}

// New creates a new random input plugin.
func New() *Plugin {
	return &Plugin{}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "random"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Pick a random seed colour (lightness and chroma 0-100, hue 0-360)"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().Var(&p.seed, "random.seed", "Seed for a reproducible random colour (default: non-deterministic)")
}

// SetSeed fixes the random seed.
func (p *Plugin) SetSeed(v int64) {
	p.seed = optionalSeed{value: v, set: true}
}

// Validate always succeeds; the random plugin needs no input.
func (p *Plugin) Validate() error {
	return nil
}

// Seed draws a random colour.
func (p *Plugin) Seed(_ context.Context, opts input.SeedOptions) (colour.Colour, error) {
	s := p.seed.value
	if !p.seed.set {
		s = seed.GenerateRandomSeed()
	}

	c := colour.Random(seed.NewRand(s))
	opts.LoggerOrNull().Debug("drew random seed colour", "seed", s, "hex", c.Hex(), "lch", c.LCH().String())
	return c, nil
}

// Package input provides the interface and registry for seed colour sources.
package input

import (
	"context"
	"maps"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/colour"
)

// SeedOptions holds options passed to input plugins when choosing a seed.
type SeedOptions struct {
	// Logger receives plugin diagnostics. Nil discards them.
	Logger hclog.Logger
}

// LoggerOrNull returns opts.Logger, or a logger that discards everything.
func (o SeedOptions) LoggerOrNull() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// Plugin represents an input plugin that produces the base colour of a scheme.
type Plugin interface {
	// Name returns the plugin's name (e.g., "image", "colour").
	Name() string

	// Description returns a human-readable description of the plugin.
	Description() string

	// RegisterFlags registers plugin-specific flags with cobra command.
	RegisterFlags(cmd *cobra.Command)

	// Validate checks if the plugin has all required inputs configured.
	Validate() error

	// Seed returns the base colour for scheme generation.
	Seed(ctx context.Context, opts SeedOptions) (colour.Colour, error)
}

// Registry holds all registered input plugins.
type Registry struct {
	plugins map[string]Plugin
}

// NewRegistry creates a new input plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin to the registry, replacing any with the same name.
func (r *Registry) Register(plugin Plugin) {
	r.plugins[plugin.Name()] = plugin
}

// Get retrieves a plugin by name.
func (r *Registry) Get(name string) (Plugin, bool) {
	plugin, ok := r.plugins[name]
	return plugin, ok
}

// List returns all registered plugin names in sorted order.
func (r *Registry) List() []string {
	return slices.Sorted(maps.Keys(r.plugins))
}

// All returns a copy of the registered plugins keyed by name.
func (r *Registry) All() map[string]Plugin {
	return maps.Clone(r.plugins)
}

// Package cli provides the command-line interface for hueseed.
package cli

import (
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/colour"
	"github.com/jmylchreest/hueseed/internal/plugin/input"
	"github.com/jmylchreest/hueseed/internal/plugin/input/googlegenai"
	"github.com/jmylchreest/hueseed/internal/plugin/input/image"
	"github.com/jmylchreest/hueseed/internal/plugin/input/literal"
	"github.com/jmylchreest/hueseed/internal/plugin/input/random"
	"github.com/jmylchreest/hueseed/internal/version"
)

// globalOptions are the persistent flags shared by every subcommand.
type globalOptions struct {
	verbose  bool
	quiet    bool
	noColour bool
	theme    string

	logger   hclog.Logger
	registry *input.Registry
}

// NewRootCmd builds the hueseed command tree.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{
		logger:   hclog.NewNullLogger(),
		registry: newRegistry(),
	}

	cmd := &cobra.Command{
		Use:   "hueseed",
		Short: "Grow a colour scheme from a single seed colour",
		Long: `hueseed builds a colour scheme from one seed colour.

Starting from the seed it pairs every colour with its complement, walks the
hue wheel in 30 degree steps, steers clear of muddy greens and keeps
neighbouring colours apart. The finished scheme is balanced for a dark or
light theme and can be printed or rendered as a swatch image.

The seed can be typed in, picked at random, taken from an image or chosen by
Google Gemini from a text prompt.`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if opts.verbose && opts.quiet {
				return fmt.Errorf("--verbose and --quiet cannot be used together")
			}
			opts.logger = newLogger(cmd.ErrOrStderr(), opts.verbose, opts.quiet)
			colour.DisableColourOutput = opts.noColour
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	cmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress non-error output")
	cmd.PersistentFlags().BoolVar(&opts.noColour, "no-colour", false, "never print colour swatches, even on a terminal")
	cmd.PersistentFlags().StringVarP(&opts.theme, "theme", "t", "", "theme type (dark, light; default from config)")

	cmd.SetVersionTemplate(version.String() + "\n")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newConvertCmd())
	cmd.AddCommand(newSourcesCmd(opts))
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// newRegistry registers the built-in seed sources.
func newRegistry() *input.Registry {
	r := input.NewRegistry()
	r.Register(literal.New())
	r.Register(random.New())
	r.Register(image.New())
	r.Register(googlegenai.New())
	return r
}

// newLogger returns the CLI logger: warnings by default, debug with
// --verbose and errors only with --quiet.
func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Warn
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "hueseed",
		Output: w,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/jmylchreest/hueseed/internal/colour"
	"github.com/jmylchreest/hueseed/internal/config"
	"github.com/jmylchreest/hueseed/internal/plugin/input"
	"github.com/jmylchreest/hueseed/internal/render"
	"github.com/jmylchreest/hueseed/internal/scheme"
	"github.com/jmylchreest/hueseed/internal/seed"
)

// generateFlagKeys maps generate flags onto the config keys they override.
var generateFlagKeys = map[string]string{
	"input":     "input",
	"count":     "count",
	"seed-mode": "seed-mode",
	"format":    "format",
	"size":      "image-size",
}

type generateOptions struct {
	input          string
	count          int
	seedMode       string
	seed           int64
	format         string
	preview        bool
	output         string
	size           int
	equaliseChroma bool
}

func newGenerateCmd(global *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a colour scheme from a seed colour",
		Long: `Generate a colour scheme from a seed colour.

The seed colour comes from an input source (see 'hueseed sources'). Each step
adds a colour and its complement, so the scheme always holds an even number
of colours: --count 5 yields 6.

Defaults for the count, theme, input, seed mode, format and swatch size come
from the config file and HUESEED_* environment variables (see 'hueseed config').

Examples:
  # A random scheme for a dark theme
  hueseed generate

  # From a colour you like, for a light theme
  hueseed generate --input colour --colour.value '#3366cc' --theme light

  # The dominant colour of a wallpaper, rendered as a swatch
  hueseed generate --input image --image.path wall.jpg -o swatch.png

  # Let Gemini pick a seed
  hueseed generate --input google-genai --google-genai.prompt 'autumn forest at dusk'

  # Same scheme every time
  hueseed generate --input random --random.seed 7 --seed 42 --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", config.DefaultInput, "Seed colour source (see 'hueseed sources')")
	cmd.Flags().IntVarP(&opts.count, "count", "n", config.DefaultCount, "Number of colours to add to the seed (rounded up to an even total)")
	cmd.Flags().StringVar(&opts.seedMode, "seed-mode", config.DefaultSeedMode, "How the scheme's random seed is chosen (colour, manual, random)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "Seed value for manual seed mode (implies --seed-mode manual)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", config.DefaultFormat, "Output format ("+strings.Join(config.Formats, ", ")+")")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Show colour swatches next to the output (default: when writing to a terminal)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Render the scheme as a swatch image ("+strings.Join(render.SupportedExtensions(), ", ")+")")
	cmd.Flags().IntVar(&opts.size, "size", config.DefaultImageSize, "Swatch image width and height in pixels")
	cmd.Flags().BoolVar(&opts.equaliseChroma, "equalise-chroma", false, "Give every colour the seed colour's chroma")

	for _, plugin := range global.registry.All() {
		plugin.RegisterFlags(cmd)
	}

	return cmd
}

func runGenerate(cmd *cobra.Command, global *globalOptions, opts *generateOptions) error {
	ctx := cmd.Context()
	logger := global.logger

	cfg, err := resolveGenerateConfig(cmd, global, opts)
	if err != nil {
		return err
	}

	plugin, ok := global.registry.Get(cfg.Input)
	if !ok {
		return fmt.Errorf("unknown input source: %s (available: %s)", cfg.Input, strings.Join(global.registry.List(), ", "))
	}
	if err := plugin.Validate(); err != nil {
		return fmt.Errorf("input source validation failed: %w", err)
	}

	if global.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "✓ Input source: %s\n", plugin.Name())
		fmt.Fprintf(cmd.ErrOrStderr(), "  └─ %s\n", plugin.Description())
	}

	base, err := plugin.Seed(ctx, input.SeedOptions{Logger: logger.Named(plugin.Name())})
	if err != nil {
		return fmt.Errorf("failed to get seed colour: %w", err)
	}

	seedCfg := seed.Config{Mode: seed.Mode(cfg.SeedMode)}
	if seedCfg.Mode == seed.ModeManual {
		seedCfg.Value = &opts.seed
	}
	seedValue, err := seed.Calculate(base.Hex(), seedCfg)
	if err != nil {
		return err
	}
	logger.Debug("generating scheme", "base", base.Hex(), "count", cfg.Count, "theme", cfg.Theme, "seed_mode", cfg.SeedMode, "seed", seedValue)

	s := scheme.New(base, scheme.Options{
		DarkMode:       cfg.DarkMode(),
		Rand:           seed.NewRand(seedValue),
		Logger:         logger,
		EqualiseChroma: opts.equaliseChroma,
	})
	if err := s.Generate(cfg.Count); err != nil {
		return err
	}
	colours := s.Colours()

	if global.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "  └─ Seed colour %s, %d colours, %s theme\n", base.Hex(), len(colours), cfg.Theme)
	}

	preview := opts.preview
	if !cmd.Flags().Changed("preview") {
		preview = isColourTerminal(cmd.OutOrStdout())
	}
	if err := writeScheme(cmd.OutOrStdout(), colours, cfg.Format, preview); err != nil {
		return err
	}

	if opts.output != "" {
		rgbs := make([]colour.RGB, len(colours))
		for i, c := range colours {
			rgbs[i] = c.RGB()
		}
		if err := render.Render(rgbs, cfg.ImageSize, cfg.ImageSize, opts.output); err != nil {
			return fmt.Errorf("failed to render swatch: %w", err)
		}
		if !global.quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "✓ Swatch written to %s\n", opts.output)
		}
	}

	return nil
}

// resolveGenerateConfig layers explicitly set flags over the config file and
// environment.
func resolveGenerateConfig(cmd *cobra.Command, global *globalOptions, opts *generateOptions) (*config.Config, error) {
	cfg, err := config.LoadWithEnv()
	if err != nil {
		return nil, err
	}

	var setErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		key, ok := generateFlagKeys[f.Name]
		if !ok || setErr != nil {
			return
		}
		if err := config.Lookup(key).Set(cfg, f.Value.String()); err != nil {
			setErr = fmt.Errorf("invalid --%s: %w", f.Name, err)
		}
	})
	if setErr != nil {
		return nil, setErr
	}

	if global.theme != "" {
		if err := config.Lookup("theme").Set(cfg, global.theme); err != nil {
			return nil, fmt.Errorf("invalid --theme: %w", err)
		}
	}

	if cmd.Flags().Changed("seed") {
		if cmd.Flags().Changed("seed-mode") && cfg.SeedMode != string(seed.ModeManual) {
			return nil, fmt.Errorf("--seed requires --seed-mode manual, got %s", cfg.SeedMode)
		}
		cfg.SeedMode = string(seed.ModeManual)
	} else if cfg.SeedMode == string(seed.ModeManual) {
		return nil, fmt.Errorf("manual seed mode requires --seed")
	}

	return cfg, nil
}

// isColourTerminal reports whether w is a terminal that accepts colour escapes.
func isColourTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && colour.SupportsANSIColours(f)
}

// writeScheme prints colours in the given format.
func writeScheme(w io.Writer, colours []colour.Colour, format string, preview bool) error {
	if format == "table" {
		table := NewTable([]string{"#", "Hex", "RGB", "LCH"})
		for i, c := range colours {
			table.AddRow([]string{fmt.Sprint(i + 1), c.Hex(), c.RGB().String(), formatLCH(c.LCH())})
		}
		fmt.Fprint(w, table.Render())
		if preview {
			var strip strings.Builder
			for _, c := range colours {
				strip.WriteString(colour.ColourPreviewWithText(c, c.Hex(), 9))
			}
			fmt.Fprintln(w)
			fmt.Fprintln(w, strip.String())
		}
		return nil
	}

	for _, c := range colours {
		var value string
		switch format {
		case "hex":
			value = c.Hex()
		case "rgb":
			value = c.RGB().String()
		case "lch":
			value = formatLCH(c.LCH())
		default:
			return fmt.Errorf("unknown output format: %s (valid: %s)", format, strings.Join(config.Formats, ", "))
		}
		if preview {
			value = colour.ColourPreview(c.RGB(), 4) + " " + value
		}
		fmt.Fprintln(w, value)
	}
	return nil
}

// formatLCH rounds to two decimals, enough to round-trip through hex.
func formatLCH(lch colour.LCH) string {
	return fmt.Sprintf("lch(%.2f, %.2f, %.2f)", lch.L, lch.C, lch.H)
}

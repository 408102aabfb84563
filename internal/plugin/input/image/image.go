// Package image provides an input plugin that seeds a scheme with the dominant
// colour of an image file, a directory of images or an HTTPS URL.
package image

import (
	"context"
	"fmt"
	stdimage "image"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/colour"
	"github.com/jmylchreest/hueseed/internal/image"
	"github.com/jmylchreest/hueseed/internal/plugin/input"
	"github.com/jmylchreest/hueseed/internal/seed"
	"github.com/jmylchreest/hueseed/internal/util/imagecache"
)

// Plugin implements the input.Plugin interface for image-based seed colours.
type Plugin struct {
	path    string
	colours int

	// Seed configuration for k-means clustering and directory picks.
	seedMode  string // Seed mode: "content", "manual", "random"
	seedValue int64  // Seed value (only used when seedMode is "manual")

	// Download settings for remote images.
	cache imagecache.CacheOptions
}

// Seed modes for k-means clustering. Content hashes the pixels so one image
// always gives one seed colour.
const (
	SeedModeContent = "content"
	SeedModeManual  = string(seed.ModeManual)
	SeedModeRandom  = string(seed.ModeRandom)
)

// New creates a new image input plugin with default settings.
func New() *Plugin {
	return &Plugin{
		colours:  5,
		seedMode: SeedModeContent,
	}
}

// Name returns the plugin name.
func (p *Plugin) Name() string {
	return "image"
}

// Description returns the plugin description.
func (p *Plugin) Description() string {
	return "Use the dominant colour of an image file or HTTPS URL, or of a random image in a directory"
}

// RegisterFlags registers plugin-specific flags with the cobra command.
func (p *Plugin) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&p.path, "image.path", "", "Path to an image file, directory or HTTPS URL (required)")
	cmd.Flags().IntVar(&p.colours, "image.colours", p.colours, "Number of k-means clusters to extract (1-256)")
	cmd.Flags().StringVar(&p.seedMode, "image.seed-mode", p.seedMode, "K-means seed mode: content, manual, random")
	cmd.Flags().Int64Var(&p.seedValue, "image.seed-value", 0, "K-means seed value (only used with --image.seed-mode=manual)")
	cmd.Flags().BoolVar(&p.cache.AllowOverwrite, "image.refresh", false, "Download remote images again instead of using the cached copy")
}

// SetPath sets the image path.
func (p *Plugin) SetPath(path string) {
	p.path = path
}

// Validate checks if the plugin has all required inputs configured.
func (p *Plugin) Validate() error {
	if p.path == "" {
		return fmt.Errorf("image path or URL is required (use --image.path)")
	}
	if imagecache.IsRemote(p.path) {
		if err := imagecache.Validate(p.path, p.cache); err != nil {
			return fmt.Errorf("invalid image URL: %w", err)
		}
	} else if err := image.ValidateImagePath(p.path); err != nil {
		return fmt.Errorf("invalid image path: %w", err)
	}
	if p.colours < 1 || p.colours > 256 {
		return fmt.Errorf("colours must be between 1 and 256, got %d", p.colours)
	}
	switch p.seedMode {
	case SeedModeContent, SeedModeManual, SeedModeRandom:
	default:
		return fmt.Errorf("invalid seed mode '%s' (valid: content, manual, random)", p.seedMode)
	}
	return nil
}

// Seed loads the image and returns its heaviest k-means cluster.
func (p *Plugin) Seed(ctx context.Context, opts input.SeedOptions) (colour.Colour, error) {
	logger := opts.LoggerOrNull()

	path, err := p.localPath(ctx, logger)
	if err != nil {
		return colour.Colour{}, err
	}

	img, err := image.NewFileLoader().Load(path)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("failed to load image: %w", err)
	}

	clusterSeed, err := p.clusterSeed(img)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("failed to calculate seed: %w", err)
	}
	logger.Debug("extracting dominant colour", "path", path, "clusters", p.colours, "seed_mode", p.seedMode, "seed", clusterSeed)

	extractor := colour.NewKMeansExtractor(seed.NewRand(clusterSeed))
	clusters, err := extractor.Extract(img, p.colours)
	if err != nil {
		return colour.Colour{}, fmt.Errorf("failed to extract colours: %w", err)
	}
	for i, c := range clusters {
		logger.Trace("cluster", "rank", i, "hex", c.Colour.Hex(), "weight", c.Weight)
	}
	return clusters[0].Colour, nil
}

// localPath returns a file to read: remote images are downloaded into the
// cache and directories yield one of their images.
func (p *Plugin) localPath(ctx context.Context, logger hclog.Logger) (string, error) {
	if imagecache.IsRemote(p.path) {
		path, err := imagecache.DownloadAndCache(ctx, p.path, p.cache)
		if err != nil {
			return "", err
		}
		logger.Debug("using cached image", "url", p.path, "path", path)
		return path, nil
	}

	path, err := image.ResolveImagePath(p.path, seed.NewRand(p.pickSeed()))
	if err != nil {
		return "", fmt.Errorf("failed to resolve image path: %w", err)
	}
	if path != p.path {
		logger.Info("selected image from directory", "path", path)
	}
	return path, nil
}

// pickSeed chooses the seed for picking an image out of a directory.
func (p *Plugin) pickSeed() int64 {
	switch p.seedMode {
	case SeedModeManual:
		return p.seedValue
	case SeedModeRandom:
		return seed.GenerateRandomSeed()
	}
	// Content mode has no pixels yet; the path keeps the pick stable.
	return seed.CalculateFilepathSeed(p.path)
}

func (p *Plugin) clusterSeed(img stdimage.Image) (int64, error) {
	switch p.seedMode {
	case SeedModeManual:
		return p.seedValue, nil
	case SeedModeRandom:
		return seed.GenerateRandomSeed(), nil
	}
	return seed.CalculateContentSeed(img)
}

// Package render draws a colour scheme as a swatch image.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"strings"

	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/jmylchreest/hueseed/internal/colour"
)

// ErrUnsupportedFormat is returned when an output extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

const jpegQuality = 95

// SupportedExtensions lists the output extensions Save understands.
func SupportedExtensions() []string {
	return []string{".png", ".jpg", ".jpeg", ".bmp", ".tif", ".tiff"}
}

// Draw paints colours as concentric discs on a white canvas. The first colour
// fills the largest disc and each following one sits inside the last, so every
// colour stays visible.
func Draw(colours []colour.RGB, width, height int) (image.Image, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: image size must be positive, got %dx%d", colour.ErrInvalidArgument, width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	cx, cy := float64(width)/2, float64(height)/2
	maxRadius := min(cx, cy)
	n := float64(len(colours))

	for i, c := range colours {
		dc.SetColor(toColor(c))
		dc.DrawCircle(cx, cy, maxRadius*(n-float64(i))/n)
		dc.Fill()
	}

	return dc.Image(), nil
}

// toColor clamps out-of-gamut channels into sRGB.
func toColor(c colour.RGB) color.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Clamped()
}

// Save encodes img to path, choosing the format from the file extension.
func Save(img image.Image, path string) error {
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".png" {
		if err := gg.SavePNG(path, img); err != nil {
			return fmt.Errorf("failed to write png: %w", err)
		}
		return nil
	}

	var encode func(f *os.File) error
	switch ext {
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality}) }
	case ".bmp":
		encode = func(f *os.File) error { return bmp.Encode(f, img) }
	case ".tif", ".tiff":
		encode = func(f *os.File) error { return tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate}) }
	default:
		return fmt.Errorf("%w: %q (supported: %s)", ErrUnsupportedFormat, ext, strings.Join(SupportedExtensions(), ", "))
	}

	f, err := os.Create(path) // #nosec G304 -- output path chosen by the user
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", strings.TrimPrefix(ext, "."), err)
	}
	return f.Close()
}

// Render draws colours and writes the result to path, creating parent
// directories as needed.
func Render(colours []colour.RGB, width, height int, path string) error {
	img, err := Draw(colours, width, height)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	return Save(img, path)
}

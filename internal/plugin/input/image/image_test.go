package image

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/hueseed/internal/plugin/input"
)

// writeTestImage writes a 20x20 PNG that is mostly main with a stripe of accent.
func writeTestImage(t *testing.T, path string, main, accent color.RGBA) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for y := range 20 {
		for x := range 20 {
			c := main
			if x < 4 {
				c = accent
			}
			img.Set(x, y, c)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Failed to encode test image: %v", err)
	}
}

// TestNew tests creating a new plugin with defaults.
func TestNew(t *testing.T) {
	plugin := New()

	if plugin.Name() != "image" {
		t.Errorf("Expected name 'image', got '%s'", plugin.Name())
	}
	if plugin.colours != 5 {
		t.Errorf("Expected default colours 5, got %d", plugin.colours)
	}
	if plugin.seedMode != SeedModeContent {
		t.Errorf("Expected default seedMode 'content', got '%s'", plugin.seedMode)
	}
}

// TestRegisterFlags tests that flags are registered correctly.
func TestRegisterFlags(t *testing.T) {
	plugin := New()
	cmd := &cobra.Command{Use: "test"}
	plugin.RegisterFlags(cmd)

	for _, name := range []string{"image.path", "image.colours", "image.seed-mode", "image.seed-value", "image.refresh"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected flag '%s' to be registered", name)
		}
	}
}

// TestValidate tests plugin validation.
func TestValidate(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.png")
	writeTestImage(t, path, color.RGBA{B: 255, A: 255}, color.RGBA{R: 255, A: 255})

	tests := []struct {
		name    string
		setup   func(p *Plugin)
		wantErr bool
	}{
		{name: "valid file", setup: func(p *Plugin) { p.path = path }},
		{name: "valid directory", setup: func(p *Plugin) { p.path = dir }},
		{name: "missing path", setup: func(p *Plugin) {}, wantErr: true},
		{name: "nonexistent", setup: func(p *Plugin) { p.path = filepath.Join(dir, "nope.png") }, wantErr: true},
		{name: "too many colours", setup: func(p *Plugin) { p.path = path; p.colours = 257 }, wantErr: true},
		{name: "zero colours", setup: func(p *Plugin) { p.path = path; p.colours = 0 }, wantErr: true},
		{name: "bad seed mode", setup: func(p *Plugin) { p.path = path; p.seedMode = "filepath" }, wantErr: true},
		{name: "https url", setup: func(p *Plugin) { p.path = "https://example.com/wall.jpg" }},
		{name: "plain http url", setup: func(p *Plugin) { p.path = "http://example.com/wall.jpg" }, wantErr: true},
		{name: "private url", setup: func(p *Plugin) { p.path = "https://192.168.0.2/wall.jpg" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plugin := New()
			tt.setup(plugin)
			err := plugin.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

// TestSeed tests extracting the dominant colour.
func TestSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestImage(t, path, color.RGBA{R: 20, G: 120, B: 200, A: 255}, color.RGBA{R: 250, G: 200, A: 255})

	plugin := New()
	plugin.SetPath(path)

	c, err := plugin.Seed(context.Background(), input.SeedOptions{})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if c.Hex() != "#1478c8" {
		t.Errorf("Expected dominant colour '#1478c8', got '%s'", c.Hex())
	}
}

// TestSeedContentDeterministic tests that content seeding is stable.
func TestSeedContentDeterministic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.png")
	writeTestImage(t, path, color.RGBA{R: 90, G: 30, B: 60, A: 255}, color.RGBA{G: 200, B: 100, A: 255})

	plugin := New()
	plugin.SetPath(path)

	a, err := plugin.Seed(context.Background(), input.SeedOptions{})
	if err != nil {
		t.Fatal(err)
	}
	b, err := plugin.Seed(context.Background(), input.SeedOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if a.LCH() != b.LCH() {
		t.Errorf("Expected identical seeds, got %v and %v", a.LCH(), b.LCH())
	}
}

// TestSeedDirectory tests picking an image out of a directory.
func TestSeedDirectory(t *testing.T) {
	dir := t.TempDir()
	writeTestImage(t, filepath.Join(dir, "only.png"), color.RGBA{R: 200, G: 40, B: 90, A: 255}, color.RGBA{A: 255})

	plugin := New()
	plugin.SetPath(dir)
	plugin.seedMode = SeedModeManual
	plugin.seedValue = 3

	c, err := plugin.Seed(context.Background(), input.SeedOptions{})
	if err != nil {
		t.Fatalf("Seed() error = %v", err)
	}
	if c.Hex() != "#c8285a" {
		t.Errorf("Expected dominant colour '#c8285a', got '%s'", c.Hex())
	}
}

// TestSeedRemote tests downloading, caching and reading a remote image.
func TestSeedRemote(t *testing.T) {
	src := filepath.Join(t.TempDir(), "remote.png")
	writeTestImage(t, src, color.RGBA{R: 20, G: 120, B: 200, A: 255}, color.RGBA{R: 250, G: 200, A: 255})

	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.ServeFile(w, r, src)
	}))
	defer srv.Close()

	plugin := New()
	plugin.SetPath(srv.URL + "/wall.png")
	plugin.cache.CacheDir = t.TempDir()
	plugin.cache.AllowPrivateHosts = true

	if err := plugin.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	for range 2 {
		c, err := plugin.Seed(context.Background(), input.SeedOptions{})
		if err != nil {
			t.Fatalf("Seed() error = %v", err)
		}
		if c.Hex() != "#1478c8" {
			t.Errorf("Expected dominant colour '#1478c8', got '%s'", c.Hex())
		}
	}
	if requests != 1 {
		t.Errorf("Expected 1 download, got %d", requests)
	}
}

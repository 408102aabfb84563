package colour

import (
	"os"
	"strings"
	"testing"
)

func TestColourPreview(t *testing.T) {
	got := ColourPreview(RGB{R: 300, G: 10, B: -4}, 3)
	want := "\033[48;2;255;10;0m   \033[0m"
	if got != want {
		t.Errorf("ColourPreview() = %q, want %q", got, want)
	}

	if got := ColourPreview(RGB{}, 0); !strings.Contains(got, strings.Repeat(" ", defaultWidth)) {
		t.Errorf("ColourPreview(width 0) = %q, want default width", got)
	}
}

func TestColourPreviewWithTextContrast(t *testing.T) {
	light := ColourPreviewWithText(FromRGB(RGB{R: 250, G: 250, B: 250}), "x", 4)
	if !strings.Contains(light, "\033[38;2;0;0;0m") {
		t.Errorf("light swatch should use black text: %q", light)
	}

	dark := ColourPreviewWithText(FromRGB(RGB{R: 10, G: 10, B: 40}), "x", 4)
	if !strings.Contains(dark, "\033[38;2;255;255;255m") {
		t.Errorf("dark swatch should use white text: %q", dark)
	}
	if !strings.Contains(dark, "x   \033[0m") {
		t.Errorf("label not padded to width: %q", dark)
	}
}

func TestSupportsANSIColours(t *testing.T) {
	if SupportsANSIColours(nil) {
		t.Error("nil file should not support colour")
	}

	t.Setenv("NO_COLOR", "1")
	if SupportsANSIColours(os.Stdout) {
		t.Error("NO_COLOR should disable colour")
	}
}

func TestSupportsANSIColoursNotTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	if SupportsANSIColours(f) {
		t.Error("regular file should not support colour")
	}
}

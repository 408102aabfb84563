package image

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type firstPicker struct{}

func (firstPicker) IntN(int) int { return 0 }

type lastPicker struct{}

func (lastPicker) IntN(n int) int { return n - 1 }

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestFileLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swatch.png")
	writePNG(t, path)

	img, err := NewFileLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if img.Bounds().Dx() != 4 {
		t.Errorf("Expected width 4, got %d", img.Bounds().Dx())
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r>>8 != 255 {
		t.Errorf("Expected red pixel at (1,1), got r=%d", r>>8)
	}
}

func TestFileLoaderLoadErrors(t *testing.T) {
	dir := t.TempDir()
	notImage := filepath.Join(dir, "notes.png")
	if err := os.WriteFile(notImage, []byte("not an image"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{"", filepath.Join(dir, "missing.png"), dir, notImage} {
		if _, err := NewFileLoader().Load(path); err == nil {
			t.Errorf("Load(%q) should fail", path)
		}
	}
}

func TestValidateImagePath(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "ok.png")
	writePNG(t, good)
	bad := filepath.Join(dir, "bad.png")
	if err := os.WriteFile(bad, []byte("nope"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "valid file", path: good},
		{name: "directory", path: dir},
		{name: "empty", path: "", wantErr: true},
		{name: "missing", path: filepath.Join(dir, "gone.png"), wantErr: true},
		{name: "undecodable", path: bad, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImagePath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImagePath() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScanAndResolveDirectory(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "a.png"))
	writePNG(t, filepath.Join(dir, "b.PNG"))
	if err := os.WriteFile(filepath.Join(dir, "readme.txt"), nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested.png"), 0o755); err != nil {
		t.Fatal(err)
	}

	got, err := ScanDirectoryForImages(dir)
	if err != nil {
		t.Fatalf("ScanDirectoryForImages() error = %v", err)
	}
	want := []string{filepath.Join(dir, "a.png"), filepath.Join(dir, "b.PNG")}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ScanDirectoryForImages() mismatch (-want +got):\n%s", diff)
	}

	first, err := ResolveImagePath(dir, firstPicker{})
	if err != nil || first != want[0] {
		t.Errorf("ResolveImagePath(first) = %q, %v", first, err)
	}
	last, err := ResolveImagePath(dir, lastPicker{})
	if err != nil || last != want[1] {
		t.Errorf("ResolveImagePath(last) = %q, %v", last, err)
	}

	file, err := ResolveImagePath(want[0], lastPicker{})
	if err != nil || file != want[0] {
		t.Errorf("ResolveImagePath(file) = %q, %v", file, err)
	}

	if _, err := ScanDirectoryForImages(t.TempDir()); err == nil {
		t.Error("empty directory should fail")
	}
	if _, err := SelectImage(nil, firstPicker{}); err == nil {
		t.Error("SelectImage(nil) should fail")
	}
}

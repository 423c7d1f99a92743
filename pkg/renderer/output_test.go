package renderer

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path      string
		expected  Format
		expectErr bool
	}{
		{"out.png", FormatPNG, false},
		{"dir/out.PNG", FormatPNG, false},
		{"out.jpg", FormatJPEG, false},
		{"out.jpeg", FormatJPEG, false},
		{"out.bmp", FormatBMP, false},
		{"out.tif", FormatTIFF, false},
		{"out.tiff", FormatTIFF, false},
		{"out.gif", "", true},
		{"out", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.path)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestWriteImage(t *testing.T) {
	fb, err := NewFramebuffer(3, 2)
	if err != nil {
		t.Fatalf("NewFramebuffer failed: %v", err)
	}
	fb.Set(0, 0, red)
	fb.Set(1, 0, green)
	fb.Set(2, 1, core.NewColor(1, 1, 1))

	decoders := map[string]func(f *os.File) (image.Image, error){
		"png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"bmp":  func(f *os.File) (image.Image, error) { return bmp.Decode(f) },
		"tiff": func(f *os.File) (image.Image, error) { return tiff.Decode(f) },
	}

	dir := t.TempDir()
	for ext, decode := range decoders {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(dir, "render."+ext)
			if err := WriteImage(path, fb); err != nil {
				t.Fatalf("WriteImage failed: %v", err)
			}

			file, err := os.Open(path)
			if err != nil {
				t.Fatalf("Failed to open output: %v", err)
			}
			defer file.Close()

			img, err := decode(file)
			if err != nil {
				t.Fatalf("Failed to decode output: %v", err)
			}
			if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
				t.Fatalf("Expected 3x2 image, got %v", img.Bounds())
			}

			// Lossless formats round-trip exactly
			for y := 0; y < 2; y++ {
				for x := 0; x < 3; x++ {
					r, g, b, _ := img.At(x, y).RGBA()
					want := fb.At(x, y).ToRGBA()
					if uint8(r>>8) != want.R || uint8(g>>8) != want.G || uint8(b>>8) != want.B {
						t.Errorf("Pixel (%d,%d): expected %v, got %d %d %d", x, y, want, r>>8, g>>8, b>>8)
					}
				}
			}
		})
	}
}

func TestWriteImage_JPEG(t *testing.T) {
	fb, err := NewFramebuffer(8, 8)
	if err != nil {
		t.Fatalf("NewFramebuffer failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "render.jpg")
	if err := WriteImage(path, fb); err != nil {
		t.Fatalf("WriteImage failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	cfg, err := jpeg.DecodeConfig(file)
	if err != nil {
		t.Fatalf("Failed to decode JPEG header: %v", err)
	}
	if cfg.Width != 8 || cfg.Height != 8 {
		t.Errorf("Expected 8x8, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestWriteImage_Errors(t *testing.T) {
	fb, err := NewFramebuffer(2, 2)
	if err != nil {
		t.Fatalf("NewFramebuffer failed: %v", err)
	}

	dir := t.TempDir()
	if err := WriteImage(filepath.Join(dir, "render.gif"), fb); err == nil {
		t.Error("Expected error for unsupported extension")
	}
	if _, err := os.Stat(filepath.Join(dir, "render.gif")); !os.IsNotExist(err) {
		t.Error("Expected no file for unsupported extension")
	}
	if err := WriteImage(filepath.Join(dir, "missing", "render.png"), fb); err == nil {
		t.Error("Expected error for missing directory")
	}
}

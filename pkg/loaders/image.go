package loaders

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io"
	"os"

	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/tiff" // TIFF decoder
	_ "golang.org/x/image/webp" // WebP decoder

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/texture"
)

// ImageData contains loaded image data as a row-major color array
type ImageData struct {
	Width  int
	Height int
	Format string
	Pixels []core.Color
}

// LoadImage loads an image file and converts it to a color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return DecodeImage(file)
}

// DecodeImage decodes PNG, JPEG, GIF, BMP, TIFF or WebP data, detected from
// the header
func DecodeImage(r io.Reader) (*ImageData, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewColor(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Format: format,
		Pixels: pixels,
	}, nil
}

// LoadTexture decodes an image file into a texture. It matches
// texture.DecodeFunc so it can back a texture registry.
func LoadTexture(path string) (*texture.Texture, error) {
	data, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	if data.Width == 0 || data.Height == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}
	return texture.NewTexture(path, data.Width, data.Height, data.Pixels), nil
}

package renderer

import (
	"fmt"
	"image"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// maxFramebufferPixels bounds allocations to about 6 GB of colors
const maxFramebufferPixels = 1 << 28

// Framebuffer is a width x height grid of colors, one per pixel, stored
// row-major with row 0 at the top of the image
type Framebuffer struct {
	width  int
	height int
	pixels []core.Color
}

// NewFramebuffer allocates a black framebuffer
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrImageSize, width, height)
	}
	if width > maxFramebufferPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageSize, width, height, maxFramebufferPixels)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pixels: make([]core.Color, width*height),
	}, nil
}

func (fb *Framebuffer) Width() int  { return fb.width }
func (fb *Framebuffer) Height() int { return fb.height }

// At returns the color of pixel (x, y)
func (fb *Framebuffer) At(x, y int) core.Color {
	return fb.pixels[y*fb.width+x]
}

// Set stores the color of pixel (x, y)
func (fb *Framebuffer) Set(x, y int, c core.Color) {
	fb.pixels[y*fb.width+x] = c
}

// Row returns row y as a slice aliasing the framebuffer
func (fb *Framebuffer) Row(y int) []core.Color {
	start := y * fb.width
	return fb.pixels[start : start+fb.width : start+fb.width]
}

// Pixels returns all pixels in row-major order, aliasing the framebuffer
func (fb *Framebuffer) Pixels() []core.Color {
	return fb.pixels
}

// ToImage converts to 8-bit RGBA, clamping each channel
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x, c := range fb.Row(y) {
			img.SetRGBA(x, y, c.ToRGBA())
		}
	}
	return img
}

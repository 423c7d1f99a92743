package texture

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Color) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			checkX := x / checkSize
			checkY := y / checkSize

			var c core.Color
			if (checkX+checkY)%2 == 0 {
				c = color1
			} else {
				c = color2
			}

			pixels[y*width+x] = c
		}
	}

	return NewTexture("", width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from color1 (top) to color2 (bottom)
func NewGradientTexture(width, height int, color1, color2 core.Color) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		t := 0.0
		if height > 1 {
			t = float64(y) / float64(height-1)
		}
		c := color1.Lerp(color2, t)

		for x := 0; x < width; x++ {
			pixels[y*width+x] = c
		}
	}

	return NewTexture("", width, height, pixels)
}

// NewStripeTexture creates vertical stripes alternating between the two colors
func NewStripeTexture(width, height, stripeWidth int, color1, color2 core.Color) *Texture {
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color1
			if (x/stripeWidth)%2 == 1 {
				c = color2
			}
			pixels[y*width+x] = c
		}
	}

	return NewTexture("", width, height, pixels)
}

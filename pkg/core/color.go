package core

import (
	"image/color"
	"math"
)

// Color is an RGB triple. Channels are nominally in [0,1] but are only
// clamped when converted to bytes.
type Color struct {
	R, G, B float64
}

// Black is the background color returned for rays that hit nothing
var Black = Color{0, 0, 0}

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel
func (c Color) Multiply(scalar float64) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// Lerp blends towards other by weight w: (1-w)*c + w*other
func (c Color) Lerp(other Color, w float64) Color {
	return c.Multiply(1 - w).Add(other.Multiply(w))
}

// Clamp returns a color with channels clamped to [minVal, maxVal]
func (c Color) Clamp(minVal, maxVal float64) Color {
	return Color{
		R: max(minVal, min(maxVal, c.R)),
		G: max(minVal, min(maxVal, c.G)),
		B: max(minVal, min(maxVal, c.B)),
	}
}

// Luminance returns the perceptual luminance of the color
func (c Color) Luminance() float64 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// ToRGBA converts to 8-bit channels with byte = round(255*channel)
func (c Color) ToRGBA() color.RGBA {
	c = c.Clamp(0.0, 1.0)
	return color.RGBA{
		R: uint8(math.Round(255 * c.R)),
		G: uint8(math.Round(255 * c.G)),
		B: uint8(math.Round(255 * c.B)),
		A: 255,
	}
}

// ColorFromRGBA converts 8-bit channels back to [0,1]
func ColorFromRGBA(rgba color.RGBA) Color {
	const byteToReal = 1.0 / 255.0
	return Color{
		R: float64(rgba.R) * byteToReal,
		G: float64(rgba.G) * byteToReal,
		B: float64(rgba.B) * byteToReal,
	}
}

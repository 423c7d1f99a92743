package material

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/texture"
)

// TextureLookup resolves texture handles stored on surfaces
type TextureLookup interface {
	Texture(h texture.Handle) *texture.Texture
}

// Pigment provides the color of a surface at a texture coordinate.
// Surfaces compute uv in their own parameterization and pass their
// texture scale along.
type Pigment interface {
	Evaluate(uv core.Vec2, scale float64, textures TextureLookup) core.Color
}

// SolidColor provides a uniform color
type SolidColor struct {
	Color core.Color
}

// NewSolidColor creates a new solid color pigment
func NewSolidColor(color core.Color) *SolidColor {
	return &SolidColor{Color: color}
}

// Evaluate returns the solid color regardless of UV
func (s *SolidColor) Evaluate(uv core.Vec2, scale float64, textures TextureLookup) core.Color {
	return s.Color
}

// Checker alternates two colors on a square grid of the given cell size
type Checker struct {
	Even core.Color
	Odd  core.Color
	Size float64
}

// NewChecker creates a checkerboard pigment
func NewChecker(even, odd core.Color, size float64) *Checker {
	return &Checker{Even: even, Odd: odd, Size: size}
}

// Evaluate picks Even or Odd by the parity of the cell containing uv
func (c *Checker) Evaluate(uv core.Vec2, scale float64, textures TextureLookup) core.Color {
	if c.Size <= 0 {
		return c.Even
	}
	cx := int64(math.Floor(uv.X / c.Size))
	cy := int64(math.Floor(uv.Y / c.Size))
	if (cx+cy)&1 == 0 {
		return c.Even
	}
	return c.Odd
}

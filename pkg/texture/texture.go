package texture

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// Texture is a decoded pixel grid. It is immutable once built and
// may be shared by any number of surfaces and goroutines.
type Texture struct {
	Path   string
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewTexture creates a texture from an already decoded pixel grid
func NewTexture(path string, width, height int, pixels []core.Color) *Texture {
	return &Texture{
		Path:   path,
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample maps fractional coordinates to a texel.
//
// fracx and fracy are fractions of the texture's width and height; scale
// repeats the texture (a reasonable plane scale for a 256x256 texture is
// 0.15). Coordinates wrap in both directions, negative ones included.
func (t *Texture) Sample(fracx, fracy, scale float64) core.Color {
	if t.Width <= 0 || t.Height <= 0 || len(t.Pixels) < t.Width*t.Height {
		return core.Black
	}

	x := wrap(fracx*float64(t.Width)*scale, t.Width)
	y := wrap(fracy*float64(t.Height)*scale, t.Height)

	return t.Pixels[y*t.Width+x]
}

// wrap floors v and reduces it modulo n into [0, n)
func wrap(v float64, n int) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	i := int(math.Mod(math.Floor(v), float64(n)))
	if i < 0 {
		i += n
	}
	return i
}

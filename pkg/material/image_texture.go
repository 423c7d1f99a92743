package material

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/texture"
)

// ImageTexture samples a texture owned by a registry. It holds the
// handle only, never the texture itself.
type ImageTexture struct {
	Handle texture.Handle
}

// NewImageTexture creates a pigment backed by the texture behind h
func NewImageTexture(h texture.Handle) *ImageTexture {
	return &ImageTexture{Handle: h}
}

// Evaluate samples the texture with nearest-texel lookup. Unresolvable
// handles render black.
func (t *ImageTexture) Evaluate(uv core.Vec2, scale float64, textures TextureLookup) core.Color {
	if textures == nil {
		return core.Black
	}
	tex := textures.Texture(t.Handle)
	if tex == nil {
		return core.Black
	}
	return tex.Sample(uv.X, uv.Y, scale)
}

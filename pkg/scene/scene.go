package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
	"github.com/df07/go-mirror-raytracer/pkg/renderer"
	"github.com/df07/go-mirror-raytracer/pkg/texture"
)

// Scene contains all the elements needed for rendering. It is built once
// and read-only afterwards, so one scene may back concurrent renders.
type Scene struct {
	Name     string
	Camera   *geometry.Camera
	Light    *lights.PointLight
	Surfaces []geometry.Surface // Objects in the scene, in declaration order
	Textures *texture.Registry

	// Config holds render settings chosen by the scene. Zero fields are
	// unset; apply with renderer.MergeConfig.
	Config renderer.Config
}

// NewScene creates an empty scene owning registry. A nil registry gets a
// fresh one without a decoder.
func NewScene(name string, registry *texture.Registry) *Scene {
	if registry == nil {
		registry = texture.NewRegistry(nil)
	}
	return &Scene{
		Name:     name,
		Surfaces: make([]geometry.Surface, 0),
		Textures: registry,
	}
}

// Add appends surfaces to the scene
func (s *Scene) Add(surfaces ...geometry.Surface) {
	s.Surfaces = append(s.Surfaces, surfaces...)
}

// RenderConfig merges the scene's settings over base
func (s *Scene) RenderConfig(base renderer.Config) renderer.Config {
	return renderer.MergeConfig(base, s.Config)
}

func (s *Scene) GetCamera() *geometry.Camera     { return s.Camera }
func (s *Scene) GetLight() *lights.PointLight    { return s.Light }
func (s *Scene) GetSurfaces() []geometry.Surface { return s.Surfaces }

// GetTextures returns a lock-free snapshot of the texture registry, or
// nil when there is none
func (s *Scene) GetTextures() material.TextureLookup {
	if s.Textures == nil {
		return nil
	}
	return s.Textures.Snapshot()
}

// GetSurfaceCount returns the number of surfaces of each kind
func (s *Scene) GetSurfaceCount() map[geometry.Kind]int {
	counts := make(map[geometry.Kind]int)
	for _, surface := range s.Surfaces {
		counts[surface.Kind()]++
	}
	return counts
}

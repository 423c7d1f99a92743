package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
	"github.com/df07/go-mirror-raytracer/pkg/texture"
)

// NewDefaultScene creates a textured room corner with a pillar and three
// balls, with procedural textures standing in for image files
func NewDefaultScene() *Scene {
	s := NewScene("default", nil)

	s.Camera = geometry.NewCamera(core.NewVec3(12, 4, 7), core.NewVec3(0, 0, 1), 0)
	s.Light = lights.NewPointLight(core.NewVec3(5, -5, 5))

	// Create textures
	floor := s.Textures.Register("builtin:floor",
		texture.NewCheckerboardTexture(256, 256, 32, core.NewColor(0.85, 0.8, 0.7), core.NewColor(0.35, 0.3, 0.25)))
	wall := s.Textures.Register("builtin:wall",
		texture.NewStripeTexture(256, 256, 16, core.NewColor(0.7, 0.75, 0.8), core.NewColor(0.5, 0.55, 0.65)))
	wood := s.Textures.Register("builtin:wood",
		texture.NewStripeTexture(64, 64, 4, core.NewColor(0.6, 0.4, 0.2), core.NewColor(0.45, 0.3, 0.15)))
	ball := s.Textures.Register("builtin:ball",
		texture.NewGradientTexture(16, 64, core.NewColor(0.9, 0.3, 0.2), core.NewColor(0.2, 0.3, 0.9)))

	// Floor and two walls
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), geometry.DefaultPlaneScale, 0, material.NewImageTexture(floor)),
		geometry.NewPlane(core.NewVec3(-12, 0, 0), core.NewVec3(1, 0, 0), geometry.DefaultPlaneScale, 0, material.NewImageTexture(wall)),
		geometry.NewPlane(core.NewVec3(0, -12, 0), core.NewVec3(0, 1, 0), 0.25, 0, material.NewImageTexture(wall)),
	)

	// Infinite pillar
	s.Add(geometry.NewCylinder(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1, -1, 0, material.NewImageTexture(wood)))

	// Balls tilted on the same axis
	axis := core.NewVec3(0, 1, 0.5)
	s.Add(
		geometry.NewSphere(core.NewVec3(3, 5, 1.2), 1.2, axis, 0, material.NewImageTexture(ball)),
		geometry.NewSphere(core.NewVec3(-3, 5, 1.2), 1.2, axis, 0, material.NewImageTexture(ball)),
		geometry.NewSphere(core.NewVec3(-1, -5, 1.2), 1.2, axis, 0, material.NewImageTexture(ball)),
	)

	return s
}

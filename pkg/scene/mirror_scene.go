package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// NewMirrorScene creates two facing mirrors with balls and a finite
// cylinder between them, a stress case for reflection depth
func NewMirrorScene() *Scene {
	s := NewScene("mirrors", nil)

	s.Camera = geometry.NewCamera(core.NewVec3(2, -14, 4), core.NewVec3(0, 0, 1.5), 0)
	s.Light = lights.NewPointLight(core.NewVec3(0, -6, 9))

	mirror := material.NewSolidColor(core.NewColor(0.3, 0.3, 0.35))
	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 0.5, 0,
			material.NewChecker(core.NewColor(0.9, 0.9, 0.9), core.NewColor(0.1, 0.1, 0.1), 1)),
		geometry.NewPlane(core.NewVec3(-6, 0, 0), core.NewVec3(1, 0, 0), geometry.DefaultPlaneScale, 0.9, mirror),
		geometry.NewPlane(core.NewVec3(6, 0, 0), core.NewVec3(-1, 0, 0), geometry.DefaultPlaneScale, 0.9, mirror),
	)

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 0, 1.5), 1.5, core.NewVec3(0, 0, 1), 0, material.NewSolidColor(core.NewColor(0.8, 0.15, 0.1))),
		geometry.NewSphere(core.NewVec3(-3, 3, 1), 1, core.NewVec3(0, 0, 1), 0.5, material.NewSolidColor(core.NewColor(0.9, 0.8, 0.2))),
		geometry.NewCylinder(core.NewVec3(3, 4, 2), core.NewVec3(0, 0, 1), 0.6, 2, 0.2, material.NewSolidColor(core.NewColor(0.1, 0.4, 0.8))),
	)

	// Deep enough to see a few mirror images
	s.Config.MaxDepth = 6
	return s
}

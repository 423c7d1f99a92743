package scene

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/geometry"
	"github.com/df07/go-mirror-raytracer/pkg/lights"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// NewPlaneScene creates a two-color checkered plane with a single
// reflective ball
func NewPlaneScene() *Scene {
	s := NewScene("plane", nil)

	s.Camera = geometry.NewCamera(core.NewVec3(0, -10, 3), core.NewVec3(0, 0, 1), 0)
	s.Light = lights.NewPointLight(core.NewVec3(4, -4, 10))

	s.Add(
		geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), geometry.DefaultPlaneScale, 0,
			material.NewChecker(core.NewColor(1, 1, 1), core.NewColor(0.2, 0.5, 0.2), 1)),
		geometry.NewSphere(core.NewVec3(0, 0, 1), 1, core.NewVec3(0, 0, 1), 0.4, material.NewSolidColor(core.NewColor(0.2, 0.2, 0.7))),
	)

	s.Config.Attenuation = lights.AttenuationLinear
	return s
}

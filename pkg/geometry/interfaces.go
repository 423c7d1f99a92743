package geometry

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// Kind enumerates the closed set of surface variants
type Kind int

const (
	KindPlane Kind = iota
	KindSphere
	KindCylinder
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindSphere:
		return "sphere"
	case KindCylinder:
		return "cylinder"
	default:
		return "unknown"
	}
}

// Surface is a renderable primitive. The set of implementations is closed:
// Plane, Sphere and Cylinder.
type Surface interface {
	// Hit returns the ray parameter of the nearest intersection within
	// [tMin, tMax], or false when there is none.
	Hit(ray core.Ray, tMin, tMax float64) (float64, bool)
	// NormalAt returns the unit normal at a point on the surface.
	// The point is not validated.
	NormalAt(point core.Vec3) core.Vec3
	// ColorAt returns the pigment color at a point with the given normal.
	ColorAt(point, normal core.Vec3, textures material.TextureLookup) core.Color
	CastsShadow() bool
	Reflectivity() float64
	Kind() Kind

	sealed()
}

// finish holds what every variant shares: its reflect coefficient and pigment
type finish struct {
	reflect float64
	pigment material.Pigment
}

func newFinish(reflect float64, pigment material.Pigment) finish {
	if pigment == nil {
		pigment = material.NewSolidColor(core.Black)
	}
	return finish{reflect: max(0, min(1, reflect)), pigment: pigment}
}

// Reflectivity returns the reflect coefficient in [0,1]
func (f finish) Reflectivity() float64 {
	return f.reflect
}

// Pigment returns the color source of the surface
func (f finish) Pigment() material.Pigment {
	return f.pigment
}

func (f finish) sealed() {}

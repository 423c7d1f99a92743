package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// Sphere represents a sphere shape. Axis orients the texture: it points
// from the texture's bottom pole to its top pole.
type Sphere struct {
	finish
	Center core.Vec3
	Radius float64
	Axis   core.Vec3

	// Texture frame: ty is the unit axis, tx and tz span the equator
	tx, ty, tz core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, axis core.Vec3, reflect float64, pigment material.Pigment) *Sphere {
	ty := axis.Normalize()
	tx := TangentSeed(ty).Cross(ty).Normalize()
	tz := ty.Cross(tx).Normalize()

	return &Sphere{
		finish: newFinish(reflect, pigment),
		Center: center,
		Radius: radius,
		Axis:   ty,
		tx:     tx,
		ty:     ty,
		tz:     tz,
	}
}

// Hit solves |O + tD - C|^2 = R^2 for the near root
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)

	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	return SolveQuadratic(a, b, c, tMin, tMax)
}

// NormalAt returns the outward unit normal
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// ColorAt maps the normal to spherical texture coordinates and evaluates the pigment
func (s *Sphere) ColorAt(point, normal core.Vec3, textures material.TextureLookup) core.Color {
	return s.pigment.Evaluate(s.TextureCoords(normal), 1.0, textures)
}

// TextureCoords maps a unit normal to (fracx, fracy) in [0,1]:
// fracy is the latitude measured from the -axis pole, fracx the longitude
// around the axis, mirrored on the -tz half.
func (s *Sphere) TextureCoords(normal core.Vec3) core.Vec2 {
	phi := math.Acos(clampUnit(-normal.Dot(s.ty)))
	fracy := phi / math.Pi

	theta := 0.0
	if sinPhi := math.Sin(phi); sinPhi != 0 {
		theta = math.Acos(clampUnit(normal.Dot(s.tx)/sinPhi)) / (2.0 * math.Pi)
	}

	fracx := 1.0 - theta
	if normal.Dot(s.tz) > 0 {
		fracx = theta
	}
	return core.NewVec2(fracx, fracy)
}

// Tangents returns the texture frame (tx, ty, tz)
func (s *Sphere) Tangents() (core.Vec3, core.Vec3, core.Vec3) {
	return s.tx, s.ty, s.tz
}

func (s *Sphere) CastsShadow() bool { return true }

func (s *Sphere) Kind() Kind { return KindSphere }

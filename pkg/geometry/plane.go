package geometry

import (
	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// DefaultPlaneScale is the texture scale used when none is given
const DefaultPlaneScale = 0.15

// Plane represents an infinite plane defined by a point and normal.
// Planes never cast shadows: they act as backdrops.
type Plane struct {
	finish
	Center core.Vec3 // A point on the plane
	Normal core.Vec3 // Unit normal
	Scale  float64   // Texture repeat scale

	// Tangent frame spanning the plane, used for texture coordinates
	tx, ty core.Vec3
}

// NewPlane creates a new plane
func NewPlane(center, normal core.Vec3, scale, reflect float64, pigment material.Pigment) *Plane {
	n := normal.Normalize()
	tx := TangentSeed(n).Cross(n).Normalize()
	ty := n.Cross(tx).Normalize()

	return &Plane{
		finish: newFinish(reflect, pigment),
		Center: center,
		Normal: n,
		Scale:  scale,
		tx:     tx,
		ty:     ty,
	}
}

// Hit solves d = -((O - C)·N) / (D·N). Rays parallel to the plane miss.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	denominator := ray.Direction.Dot(p.Normal)
	if denominator == 0 {
		return 0, false
	}

	d := -ray.Origin.Subtract(p.Center).Dot(p.Normal) / denominator
	if d < tMin || d > tMax {
		return 0, false
	}
	return d, true
}

// NormalAt returns the plane normal, which is the same everywhere
func (p *Plane) NormalAt(point core.Vec3) core.Vec3 {
	return p.Normal
}

// ColorAt projects the point onto the tangent frame and evaluates the pigment
func (p *Plane) ColorAt(point, normal core.Vec3, textures material.TextureLookup) core.Color {
	return p.pigment.Evaluate(p.TextureCoords(point), p.Scale, textures)
}

// TextureCoords returns the point's coordinates in the plane's tangent frame
func (p *Plane) TextureCoords(point core.Vec3) core.Vec2 {
	v := point.Subtract(p.Center)
	return core.NewVec2(v.Dot(p.tx), v.Dot(p.ty))
}

// Tangents returns the plane's tangent frame
func (p *Plane) Tangents() (core.Vec3, core.Vec3) {
	return p.tx, p.ty
}

func (p *Plane) CastsShadow() bool { return false }

func (p *Plane) Kind() Kind { return KindPlane }

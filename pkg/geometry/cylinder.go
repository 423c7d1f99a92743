package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

// Cylinder represents an open cylinder around an axis. Span is the
// half-length along the axis measured from Center; a non-positive span
// makes the cylinder infinite.
type Cylinder struct {
	finish
	Center core.Vec3 // Reference point on the axis
	Axis   core.Vec3 // Unit axis direction
	Radius float64
	Span   float64

	// Texture tangent perpendicular to the axis
	tx core.Vec3
}

// NewCylinder creates a new cylinder
func NewCylinder(center, axis core.Vec3, radius, span, reflect float64, pigment material.Pigment) *Cylinder {
	b := axis.Normalize()
	ty := TangentSeed(b)
	tx := ty.Cross(b).Normalize()

	return &Cylinder{
		finish: newFinish(reflect, pigment),
		Center: center,
		Axis:   b,
		Radius: radius,
		Span:   span,
		tx:     tx,
	}
}

// Hit intersects the ray with the cylinder.
//
// With A the axis point, B the unit axis, O and D the ray, T = O - A and
// the hit P = O + tD projecting to X = A + alpha*B on the axis:
//
//	(P - X)·B = 0, |P - X| = R
//	a = D·T, b = D·B, d = T·B, f = R^2 - T·T
//	t^2 (1 - b^2) + 2t (a - b d) - d^2 - f = 0
//	alpha = d + t b
func (c *Cylinder) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	tmp := ray.Origin.Subtract(c.Center)

	a := ray.Direction.Dot(tmp)
	b := ray.Direction.Dot(c.Axis)
	d := tmp.Dot(c.Axis)
	f := c.Radius*c.Radius - tmp.Dot(tmp)

	aa := 1.0 - b*b
	bb := 2.0 * (a - b*d)
	cc := -(d * d) - f

	t, ok := SolveQuadratic(aa, bb, cc, tMin, tMax)
	if !ok {
		return 0, false
	}

	if c.Span > 0 {
		alpha := d + t*b
		if alpha < -c.Span || alpha > c.Span {
			return 0, false
		}
	}
	return t, true
}

// NormalAt returns hit - (A + (B·(hit - A))B), normalized
func (c *Cylinder) NormalAt(point core.Vec3) core.Vec3 {
	alpha := c.Axis.Dot(point.Subtract(c.Center))
	onAxis := c.Center.Add(c.Axis.Multiply(alpha))
	return point.Subtract(onAxis).Normalize()
}

// ColorAt unrolls the cylinder into (angle, height) and evaluates the pigment
func (c *Cylinder) ColorAt(point, normal core.Vec3, textures material.TextureLookup) core.Color {
	return c.pigment.Evaluate(c.TextureCoords(point, normal), 1.0, textures)
}

// TextureCoords returns the angular fraction from the tangent and the
// axial distance in units of the circumference
func (c *Cylinder) TextureCoords(point, normal core.Vec3) core.Vec2 {
	alpha := point.Subtract(c.Center).Dot(c.Axis)
	fracx := math.Acos(clampUnit(normal.Dot(c.tx))) / math.Pi
	fracy := alpha / (2.0 * math.Pi * c.Radius)
	return core.NewVec2(fracx, fracy)
}

// Finite reports whether the cylinder is bounded along its axis
func (c *Cylinder) Finite() bool {
	return c.Span > 0
}

func (c *Cylinder) CastsShadow() bool { return true }

func (c *Cylinder) Kind() Kind { return KindCylinder }

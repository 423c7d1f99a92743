package lights

import "github.com/df07/go-mirror-raytracer/pkg/core"

// PointLight is the single light of a scene. It only has a position;
// falloff is chosen by the renderer through an Attenuation.
type PointLight struct {
	Position core.Vec3
}

// NewPointLight creates a point light at position
func NewPointLight(position core.Vec3) *PointLight {
	return &PointLight{Position: position}
}

// RayTo returns the unit direction from point to the light and the distance
// between them. A point at the light position yields a zero direction.
func (l *PointLight) RayTo(point core.Vec3) (core.Vec3, float64) {
	toLight := l.Position.Subtract(point)
	dist := toLight.Length()
	if dist == 0 {
		return core.Vec3{}, 0
	}
	return toLight.Multiply(1.0 / dist), dist
}

package geometry

import (
	"math"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

// SolveQuadratic solves a*t^2 + b*t + c = 0 and returns the smaller real
// root if it lies within [tMin, tMax]. The larger root is never tried, so
// a ray starting inside a sphere or cylinder misses it.
func SolveQuadratic(a, b, c, tMin, tMax float64) (float64, bool) {
	delta := b*b - 4*a*c
	if delta < 0 {
		return 0, false
	}

	var t float64
	if delta > 0 {
		sqrtDelta := math.Sqrt(delta)
		inv := 0.5 / a
		ta := (-b - sqrtDelta) * inv
		tb := (-b + sqrtDelta) * inv
		t = min(ta, tb)
	} else {
		t = -b / (2 * a)
	}

	if math.IsNaN(t) || t < tMin || t > tMax {
		return 0, false
	}
	return t, true
}

// TangentSeed picks the coordinate axis least aligned with v, used to
// build tangent frames. Comparison order decides ties: z unless x is
// strictly smaller than y (then x if also strictly smaller than z),
// otherwise y if strictly smaller than z. An x/y tie deliberately goes
// to y, matching the frames existing scenes were rendered with.
func TangentSeed(v core.Vec3) core.Vec3 {
	x := math.Abs(v.X)
	y := math.Abs(v.Y)
	z := math.Abs(v.Z)

	seed := core.NewVec3(0, 0, 1)
	if x < y {
		if x < z {
			seed = core.NewVec3(1, 0, 0)
		}
	} else if y < z {
		seed = core.NewVec3(0, 1, 0)
	}
	return seed
}

// clampUnit keeps acos arguments inside its domain
func clampUnit(v float64) float64 {
	return max(-1, min(1, v))
}

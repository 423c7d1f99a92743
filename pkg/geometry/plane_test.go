package geometry

import (
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
	"github.com/df07/go-mirror-raytracer/pkg/material"
)

func TestPlane_Hit_BasicIntersection(t *testing.T) {
	// Ground plane at z=0
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), DefaultPlaneScale, 0, nil)

	// Ray shooting down from above
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))

	tHit, isHit := plane.Hit(ray, 0, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if !approxEqual(tHit, 1.0, 1e-9) {
		t.Errorf("Expected t=1, got t=%f", tHit)
	}
	if p := ray.At(tHit); !p.Equals(core.NewVec3(0, 0, 0)) {
		t.Errorf("Expected hit point at origin, got %v", p)
	}
}

func TestPlane_Hit_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), DefaultPlaneScale, 0, nil)

	origins := []core.Vec3{
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 0, 0), // lying in the plane
		core.NewVec3(100, -50, 3),
	}

	for _, origin := range origins {
		ray := core.NewRay(origin, core.NewVec3(1, 1, 0).Normalize())
		if tHit, isHit := plane.Hit(ray, 0, 1000.0); isHit {
			t.Errorf("Origin %v: expected miss for parallel ray, got hit at t=%f", origin, tHit)
		}
	}
}

func TestPlane_Hit_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), DefaultPlaneScale, 0, nil)

	// Ray shooting up from above (intersection behind ray origin)
	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 1))

	if tHit, isHit := plane.Hit(ray, 0, 1000.0); isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at t=%f", tHit)
	}
}

func TestPlane_Hit_Range(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), DefaultPlaneScale, 0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := plane.Hit(ray, 0, 4.9); isHit {
		t.Error("Expected miss beyond tMax")
	}
	if _, isHit := plane.Hit(ray, 5.1, 10); isHit {
		t.Error("Expected miss below tMin")
	}
	if tHit, isHit := plane.Hit(ray, 5, 5); !isHit || tHit != 5 {
		t.Errorf("Expected hit at the closed interval bound, got %f (%t)", tHit, isHit)
	}
}

func TestPlane_NormalIsNormalized(t *testing.T) {
	plane := NewPlane(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 7), DefaultPlaneScale, 0, nil)

	// The stored normal is unit length and does not depend on the side hit
	n := plane.NormalAt(core.NewVec3(4, 5, 3))
	if !n.Equals(core.NewVec3(0, 0, 1)) {
		t.Errorf("Expected (0,0,1), got %v", n)
	}

	tx, ty := plane.Tangents()
	if !approxEqual(tx.Length(), 1, 1e-12) || !approxEqual(ty.Length(), 1, 1e-12) {
		t.Errorf("Expected unit tangents, got %v and %v", tx, ty)
	}
	if !approxEqual(tx.Dot(ty), 0, 1e-12) || !approxEqual(tx.Dot(n), 0, 1e-12) {
		t.Errorf("Expected orthogonal frame, got tx=%v ty=%v n=%v", tx, ty, n)
	}
}

func TestPlane_TextureCoords(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), DefaultPlaneScale, 0, nil)

	tx, ty := plane.Tangents()
	if !tx.Equals(core.NewVec3(1, 0, 0)) || !ty.Equals(core.NewVec3(0, 1, 0)) {
		t.Fatalf("Expected tangents x and y, got %v and %v", tx, ty)
	}

	uv := plane.TextureCoords(core.NewVec3(3, 4, 0))
	if !approxEqual(uv.X, 3, 1e-12) || !approxEqual(uv.Y, 4, 1e-12) {
		t.Errorf("Expected (3,4), got %v", uv)
	}
}

func TestPlane_ColorAt_Checker(t *testing.T) {
	white := core.NewColor(1, 1, 1)
	black := core.NewColor(0, 0, 0)
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), DefaultPlaneScale, 0,
		material.NewChecker(white, black, 1))

	n := plane.NormalAt(core.Vec3{})
	if c := plane.ColorAt(core.NewVec3(0.5, 0.5, 0), n, nil); c != white {
		t.Errorf("Expected white cell, got %v", c)
	}
	if c := plane.ColorAt(core.NewVec3(1.5, 0.5, 0), n, nil); c != black {
		t.Errorf("Expected black cell, got %v", c)
	}
}

func TestPlane_DoesNotCastShadows(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), DefaultPlaneScale, 0, nil)
	if plane.CastsShadow() {
		t.Error("Planes must not cast shadows")
	}
}

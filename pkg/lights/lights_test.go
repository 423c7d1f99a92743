package lights

import (
	"math"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

func TestPointLight_RayTo(t *testing.T) {
	light := NewPointLight(core.NewVec3(0, 0, 10))

	tests := []struct {
		name        string
		point       core.Vec3
		expectedDir core.Vec3
		expectedD   float64
	}{
		{"directly below", core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 10},
		{"offset", core.NewVec3(3, 0, 6), core.NewVec3(-0.6, 0, 0.8), 5},
		{"above", core.NewVec3(0, 0, 12), core.NewVec3(0, 0, -1), 2},
		{"at the light", core.NewVec3(0, 0, 10), core.Vec3{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, dist := light.RayTo(tt.point)
			if !dir.Equals(tt.expectedDir) {
				t.Errorf("Expected direction %v, got %v", tt.expectedDir, dir)
			}
			if math.Abs(dist-tt.expectedD) > 1e-9 {
				t.Errorf("Expected distance %f, got %f", tt.expectedD, dist)
			}
		})
	}
}

func TestAttenuation_Factor(t *testing.T) {
	tests := []struct {
		name     string
		model    Attenuation
		distance float64
		expected float64
	}{
		{"none near", AttenuationNone, 1, 1},
		{"none far", AttenuationNone, 1000, 1},
		{"linear zero", AttenuationLinear, 0, 1},
		{"linear half", AttenuationLinear, 30, 0.5},
		{"linear at reach", AttenuationLinear, 60, 0},
		{"linear beyond reach is clamped", AttenuationLinear, 90, 0},
		{"quadratic half", AttenuationQuadratic, 30, 0.75},
		{"quadratic at reach", AttenuationQuadratic, 60, 0},
		{"quadratic beyond reach is clamped", AttenuationQuadratic, 120, 0},
		{"unset behaves like none", Attenuation(0), 50, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.model.Factor(tt.distance, 60)
			if math.Abs(got-tt.expected) > 1e-12 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestAttenuation_Monotonic(t *testing.T) {
	const maxDistance = 60.0

	for _, model := range []Attenuation{AttenuationLinear, AttenuationQuadratic} {
		t.Run(model.String(), func(t *testing.T) {
			prev := model.Factor(0, maxDistance)
			for d := 0.5; d <= 2*maxDistance; d += 0.5 {
				f := model.Factor(d, maxDistance)
				if f > prev {
					t.Fatalf("Factor increased from %f to %f at distance %f", prev, f, d)
				}
				if f < 0 {
					t.Fatalf("Factor went negative (%f) at distance %f", f, d)
				}
				if d >= maxDistance && f != 0 {
					t.Fatalf("Expected zero at or beyond reach, got %f at distance %f", f, d)
				}
				prev = f
			}
		})
	}
}

func TestParseAttenuation(t *testing.T) {
	tests := []struct {
		input     string
		expected  Attenuation
		expectErr bool
	}{
		{"none", AttenuationNone, false},
		{"Linear", AttenuationLinear, false},
		{" quadratic ", AttenuationQuadratic, false},
		{"", AttenuationQuadratic, false},
		{"cubic", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseAttenuation(tt.input)
			if tt.expectErr {
				if err == nil {
					t.Errorf("Expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
			if roundTrip, _ := ParseAttenuation(got.String()); roundTrip != got {
				t.Errorf("String() did not round-trip: %q", got.String())
			}
		})
	}
}

package texture

import (
	"errors"
	"sync"
	"testing"

	"github.com/df07/go-mirror-raytracer/pkg/core"
)

var (
	white = core.NewColor(1, 1, 1)
	black = core.NewColor(0, 0, 0)
	red   = core.NewColor(1, 0, 0)
	blue  = core.NewColor(0, 0, 1)
)

// 2x2 texture laid out as
//
//	white red
//	blue  black
func newQuadTexture() *Texture {
	return NewTexture("quad", 2, 2, []core.Color{white, red, blue, black})
}

func TestTexture_Sample(t *testing.T) {
	tex := newQuadTexture()

	tests := []struct {
		name         string
		fracx, fracy float64
		scale        float64
		expected     core.Color
	}{
		{"top-left", 0.1, 0.1, 1, white},
		{"top-right", 0.9, 0.1, 1, red},
		{"bottom-left", 0.1, 0.9, 1, blue},
		{"bottom-right", 0.9, 0.9, 1, black},
		{"wraps past one", 1.1, 0.1, 1, white},
		{"scale repeats", 0.3, 0.1, 2, red},
		{"negative wraps", -0.1, 0.1, 1, red},
		{"negative both", -0.1, -0.1, 1, black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tex.Sample(tt.fracx, tt.fracy, tt.scale)
			if got != tt.expected {
				t.Errorf("Sample(%f, %f, %f): expected %v, got %v", tt.fracx, tt.fracy, tt.scale, tt.expected, got)
			}
		})
	}
}

func TestTexture_SampleDegenerate(t *testing.T) {
	empty := NewTexture("empty", 0, 0, nil)
	if got := empty.Sample(0.5, 0.5, 1); got != core.Black {
		t.Errorf("Expected black from empty texture, got %v", got)
	}

	tex := newQuadTexture()
	if got := tex.Sample(0, 0, 0); got != white {
		t.Errorf("Expected zero scale to pin to the first texel, got %v", got)
	}
}

func TestRegistry_DeduplicatesByPath(t *testing.T) {
	decodes := 0
	registry := NewRegistry(func(path string) (*Texture, error) {
		decodes++
		return newQuadTexture(), nil
	})

	first, err := registry.Add("wood.png")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	second, err := registry.Add("wood.png")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	other, err := registry.Add("stone.png")
	if err != nil {
		t.Fatalf("Add failed: %v", err)
	}

	if first != second {
		t.Errorf("Expected same handle for same path, got %d and %d", first, second)
	}
	if first == other {
		t.Errorf("Expected different handles for different paths")
	}
	if decodes != 2 {
		t.Errorf("Expected 2 decodes, got %d", decodes)
	}
	if registry.Len() != 2 {
		t.Errorf("Expected 2 textures, got %d", registry.Len())
	}
	if tex := registry.Texture(first); tex == nil || tex.Path != "wood.png" {
		t.Errorf("Expected texture with path wood.png, got %+v", tex)
	}
}

func TestRegistry_HandlesSurviveGrowth(t *testing.T) {
	registry := NewRegistry(nil)
	h := registry.Register("first", newQuadTexture())
	tex := registry.Texture(h)

	for i := 0; i < 100; i++ {
		registry.Register(string(rune('a'+i%26))+string(rune('0'+i/26)), newQuadTexture())
	}

	if registry.Texture(h) != tex {
		t.Error("Expected handle to resolve to the same texture after growth")
	}
	if got, ok := registry.Lookup("first"); !ok || got != h {
		t.Errorf("Expected Lookup to return %d, got %d (%t)", h, got, ok)
	}
}

func TestRegistry_Errors(t *testing.T) {
	decodeErr := errors.New("corrupt")
	registry := NewRegistry(func(path string) (*Texture, error) {
		return nil, decodeErr
	})

	h, err := registry.Add("bad.png")
	if !errors.Is(err, decodeErr) {
		t.Errorf("Expected wrapped decode error, got %v", err)
	}
	if h != NoTexture {
		t.Errorf("Expected NoTexture, got %d", h)
	}
	if registry.Len() != 0 {
		t.Errorf("Failed loads must not be registered")
	}

	if _, err := NewRegistry(nil).Add("any.png"); err == nil {
		t.Error("Expected error without a decoder")
	}

	if registry.Texture(NoTexture) != nil || registry.Texture(42) != nil {
		t.Error("Expected nil for unknown handles")
	}
}

func TestRegistry_ConcurrentReads(t *testing.T) {
	registry := NewRegistry(nil)
	h := registry.Register("quad", newQuadTexture())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if registry.Texture(h).Sample(0.1, 0.1, 1) != white {
					t.Error("Unexpected sample")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestRegistry_Snapshot(t *testing.T) {
	registry := NewRegistry(nil)
	h := registry.Register("quad", newQuadTexture())
	snapshot := registry.Snapshot()

	later := registry.Register("later", newQuadTexture())
	if snapshot.Texture(h) != registry.Texture(h) {
		t.Error("Expected snapshot to resolve the same texture as the registry")
	}
	if snapshot.Texture(later) != nil {
		t.Error("Expected textures added after the snapshot to be invisible")
	}
	if snapshot.Texture(NoTexture) != nil || snapshot.Texture(42) != nil {
		t.Error("Expected nil for unknown handles")
	}

	// Snapshot reads need no lock while the registry keeps growing
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if snapshot.Texture(h).Sample(0.1, 0.1, 1) != white {
					t.Error("Unexpected sample")
					return
				}
			}
		}()
	}
	for i := 0; i < 100; i++ {
		registry.Register(string(rune('a'+i%26))+string(rune('0'+i/26)), newQuadTexture())
	}
	wg.Wait()
}

func TestProceduralTextures(t *testing.T) {
	checker := NewCheckerboardTexture(4, 4, 2, white, black)
	if checker.Pixels[0] != white || checker.Pixels[2] != black || checker.Pixels[2*4+2] != white {
		t.Errorf("Unexpected checkerboard layout: %v", checker.Pixels)
	}

	gradient := NewGradientTexture(1, 3, white, black)
	if gradient.Pixels[0] != white || gradient.Pixels[2] != black {
		t.Errorf("Expected gradient endpoints white and black, got %v", gradient.Pixels)
	}
	if gradient.Pixels[1] != core.NewColor(0.5, 0.5, 0.5) {
		t.Errorf("Expected mid gray, got %v", gradient.Pixels[1])
	}

	stripes := NewStripeTexture(4, 1, 1, red, blue)
	if stripes.Pixels[0] != red || stripes.Pixels[1] != blue || stripes.Pixels[2] != red {
		t.Errorf("Unexpected stripes: %v", stripes.Pixels)
	}
}

package renderer

import (
	"strings"
	"testing"
	"time"
)

func TestNewRenderStats(t *testing.T) {
	results := []BlockResult{
		{BlockIndex: 0, PrimaryRays: 400},
		{BlockIndex: 1, PrimaryRays: 400},
		{BlockIndex: 2, PrimaryRays: 40},
	}

	stats := NewRenderStats(20, 42, 2, results, 2*time.Second)

	if stats.Blocks != 3 {
		t.Errorf("Expected 3 blocks, got %d", stats.Blocks)
	}
	if stats.PrimaryRays != 840 {
		t.Errorf("Expected 840 rays, got %d", stats.PrimaryRays)
	}
	if stats.NormalizedTime != time.Second {
		t.Errorf("Expected normalized time 1s, got %v", stats.NormalizedTime)
	}
	if rps := stats.RaysPerSecond(); rps != 420 {
		t.Errorf("Expected 420 rays/s, got %f", rps)
	}
	if s := stats.String(); !strings.Contains(s, "20x42") || !strings.Contains(s, "840 rays") {
		t.Errorf("Unexpected summary %q", s)
	}
}

func TestRenderStats_ZeroValues(t *testing.T) {
	stats := NewRenderStats(1, 1, 0, nil, 0)
	if stats.NormalizedTime != 0 || stats.RaysPerSecond() != 0 {
		t.Errorf("Expected zero timings, got %+v", stats)
	}
}

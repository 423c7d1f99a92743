package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	Width       int
	Height      int
	Workers     int // Effective number of parallel workers
	Blocks      int // Blocks rendered, the remainder block included
	PrimaryRays int // One per pixel
	WallTime    time.Duration

	// NormalizedTime is wall time divided by the worker count, a coarse
	// per-worker figure rather than CPU time
	NormalizedTime time.Duration
}

// NewRenderStats summarizes the block results of one render
func NewRenderStats(width, height, workers int, results []BlockResult, wall time.Duration) RenderStats {
	stats := RenderStats{
		Width:    width,
		Height:   height,
		Workers:  workers,
		Blocks:   len(results),
		WallTime: wall,
	}
	for _, r := range results {
		stats.PrimaryRays += r.PrimaryRays
	}
	if workers > 0 {
		stats.NormalizedTime = wall / time.Duration(workers)
	}
	return stats
}

// RaysPerSecond returns the primary ray throughput
func (s RenderStats) RaysPerSecond() float64 {
	if s.WallTime <= 0 {
		return 0
	}
	return float64(s.PrimaryRays) / s.WallTime.Seconds()
}

func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d, %d workers, %d blocks, %d rays in %v (%v normalized)",
		s.Width, s.Height, s.Workers, s.Blocks, s.PrimaryRays,
		s.WallTime.Round(time.Millisecond), s.NormalizedTime.Round(time.Millisecond))
}

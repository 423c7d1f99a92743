package renderer

import (
	"image"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPartitionRows(t *testing.T) {
	tests := []struct {
		name          string
		height, n     int
		expectedRows  [][2]int // [min, max) per block
		remainderRows [2]int
	}{
		{"serial", 10, 1, [][2]int{{0, 10}}, [2]int{10, 10}},
		{"even split", 12, 3, [][2]int{{0, 4}, {4, 8}, {8, 12}}, [2]int{12, 12}},
		{"with remainder", 10, 3, [][2]int{{0, 3}, {3, 6}, {6, 9}}, [2]int{9, 10}},
		{"more workers than rows", 3, 8, [][2]int{{0, 1}, {1, 2}, {2, 3}}, [2]int{3, 3}},
		{"zero workers", 4, 0, [][2]int{{0, 4}}, [2]int{4, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			blocks, remainder := PartitionRows(7, tt.height, tt.n)

			var gotRows [][2]int
			for i, b := range blocks {
				if b.Index != i {
					t.Errorf("Block %d has index %d", i, b.Index)
				}
				if b.Bounds.Min.X != 0 || b.Bounds.Max.X != 7 {
					t.Errorf("Block %d does not span the full width: %v", i, b.Bounds)
				}
				gotRows = append(gotRows, [2]int{b.Bounds.Min.Y, b.Bounds.Max.Y})
			}
			if diff := cmp.Diff(tt.expectedRows, gotRows); diff != "" {
				t.Errorf("Block rows mismatch (-want +got):\n%s", diff)
			}

			gotRemainder := [2]int{remainder.Bounds.Min.Y, remainder.Bounds.Max.Y}
			if gotRemainder != tt.remainderRows {
				t.Errorf("Expected remainder rows %v, got %v", tt.remainderRows, gotRemainder)
			}
			if remainder.Empty() != (tt.remainderRows[0] == tt.remainderRows[1]) {
				t.Errorf("Unexpected remainder emptiness for %v", remainder.Bounds)
			}

			// Blocks and remainder cover every row exactly once
			covered := remainder.Rows()
			for _, b := range blocks {
				covered += b.Rows()
			}
			if covered != tt.height {
				t.Errorf("Expected %d rows covered, got %d", tt.height, covered)
			}
		})
	}
}

func TestEffectiveWorkers(t *testing.T) {
	tests := []struct {
		name       string
		numWorkers int
		height     int
		expected   int
	}{
		{"explicit", 4, 480, 4},
		{"capped at height", 16, 5, 5},
		{"auto", 0, 1 << 20, runtime.NumCPU()},
		{"negative is auto", -3, 1 << 20, runtime.NumCPU()},
		{"never below one", 4, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EffectiveWorkers(tt.numWorkers, tt.height); got != tt.expected {
				t.Errorf("Expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWorkerPool_RunsEveryBlockOnce(t *testing.T) {
	scene := createGreenPlaneScene()
	config := testConfig(6, 11)
	rt := NewRaytracer(scene, config, nil)

	fb, err := NewFramebuffer(6, 11)
	if err != nil {
		t.Fatalf("NewFramebuffer failed: %v", err)
	}
	camera := *scene.camera
	camera.CalculateWindow(6, 11, 0.5)

	blocks, remainder := PartitionRows(6, 11, 4)
	pool := NewWorkerPool(NewBlockRenderer(rt, &camera, fb), blocks)
	if pool.GetNumWorkers() != 4 {
		t.Errorf("Expected 4 workers, got %d", pool.GetNumWorkers())
	}

	results := pool.Run()
	if len(results) != 4 {
		t.Fatalf("Expected 4 results, got %d", len(results))
	}
	for i, r := range results {
		if r.BlockIndex != i {
			t.Errorf("Expected results ordered by block, got index %d at %d", r.BlockIndex, i)
		}
		if r.PrimaryRays != 6*2 {
			t.Errorf("Block %d: expected 12 rays, got %d", i, r.PrimaryRays)
		}
	}

	if remainder.Rows() != 3 {
		t.Errorf("Expected 3 remainder rows, got %d", remainder.Rows())
	}
	last := NewBlockRenderer(rt, &camera, fb).RenderBlock(remainder)
	if last.PrimaryRays != 6*3 || last.BlockIndex != 4 {
		t.Errorf("Unexpected remainder result %+v", last)
	}
}

func TestRenderStats(t *testing.T) {
	scene := createGreenPlaneScene()
	config := testConfig(9, 10)
	config.NumWorkers = 3

	_, stats, err := NewRaytracer(scene, config, nil).Render()
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if stats.Width != 9 || stats.Height != 10 || stats.Workers != 3 {
		t.Errorf("Unexpected stats header %+v", stats)
	}
	// Three blocks of three rows plus one remainder row
	if stats.Blocks != 4 {
		t.Errorf("Expected 4 blocks, got %d", stats.Blocks)
	}
	if stats.PrimaryRays != 90 {
		t.Errorf("Expected 90 primary rays, got %d", stats.PrimaryRays)
	}
	if stats.NormalizedTime > stats.WallTime {
		t.Errorf("Normalized time %v exceeds wall time %v", stats.NormalizedTime, stats.WallTime)
	}
	if stats.String() == "" {
		t.Error("Expected a summary string")
	}
}

func TestBlock_Empty(t *testing.T) {
	if !(Block{Bounds: image.Rect(0, 5, 10, 5)}).Empty() {
		t.Error("Expected zero-row block to be empty")
	}
	if (Block{Bounds: image.Rect(0, 4, 10, 5)}).Empty() {
		t.Error("Expected one-row block to be non-empty")
	}
}

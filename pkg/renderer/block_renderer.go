package renderer

import (
	"image"
	"runtime"
	"time"

	"github.com/df07/go-mirror-raytracer/pkg/geometry"
)

// Block is a contiguous strip of full-width image rows
type Block struct {
	Index  int
	Bounds image.Rectangle
}

// Rows returns the number of rows in the block
func (b Block) Rows() int {
	return b.Bounds.Dy()
}

// Empty reports whether the block covers no pixels
func (b Block) Empty() bool {
	return b.Bounds.Empty()
}

// EffectiveWorkers resolves the configured worker count: 0 or less means
// one per CPU, and there are never more workers than rows
func EffectiveWorkers(numWorkers, height int) int {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return max(1, min(numWorkers, height))
}

// PartitionRows splits height rows into n equal blocks. Block i owns rows
// [i*rowsPerBlock, (i+1)*rowsPerBlock); the rows left over when height is
// not divisible by n form the remainder block, which may be empty.
func PartitionRows(width, height, n int) ([]Block, Block) {
	n = max(1, min(n, height))
	rowsPerBlock := height / n

	blocks := make([]Block, n)
	for i := range blocks {
		blocks[i] = Block{
			Index:  i,
			Bounds: image.Rect(0, i*rowsPerBlock, width, (i+1)*rowsPerBlock),
		}
	}

	remainder := Block{
		Index:  n,
		Bounds: image.Rect(0, n*rowsPerBlock, width, height),
	}
	return blocks, remainder
}

// BlockRenderer renders blocks of primary rays into a shared framebuffer.
// Blocks never overlap, so concurrent RenderBlock calls write disjoint rows.
type BlockRenderer struct {
	raytracer *Raytracer
	camera    *geometry.Camera
	fb        *Framebuffer
}

// NewBlockRenderer creates a block renderer. The camera window must already
// be calculated for the framebuffer size.
func NewBlockRenderer(raytracer *Raytracer, camera *geometry.Camera, fb *Framebuffer) *BlockRenderer {
	return &BlockRenderer{
		raytracer: raytracer,
		camera:    camera,
		fb:        fb,
	}
}

// RenderBlock traces every pixel within the block bounds
func (br *BlockRenderer) RenderBlock(block Block) BlockResult {
	start := time.Now()
	rays := 0

	for y := block.Bounds.Min.Y; y < block.Bounds.Max.Y; y++ {
		row := br.fb.Row(y)
		for x := block.Bounds.Min.X; x < block.Bounds.Max.X; x++ {
			ray := br.camera.RayForPixel(x, y)
			row[x] = br.raytracer.Trace(ray, 0)
			rays++
		}
	}

	return BlockResult{
		BlockIndex:  block.Index,
		PrimaryRays: rays,
		Duration:    time.Since(start),
	}
}

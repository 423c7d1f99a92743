package renderer

import (
	"sort"
	"sync"
	"time"
)

// BlockResult contains the result from rendering a block
type BlockResult struct {
	BlockIndex  int
	PrimaryRays int
	Duration    time.Duration
}

// WorkerPool renders a fixed set of blocks in parallel, one worker per
// block. Assignment is static: worker i always renders block i.
type WorkerPool struct {
	resultQueue chan BlockResult
	workers     []*Worker
	wg          sync.WaitGroup
}

// Worker handles a single block
type Worker struct {
	ID          int
	renderer    *BlockRenderer
	block       Block
	resultQueue chan<- BlockResult
}

// NewWorkerPool creates a worker per block
func NewWorkerPool(renderer *BlockRenderer, blocks []Block) *WorkerPool {
	wp := &WorkerPool{
		resultQueue: make(chan BlockResult, len(blocks)), // Buffer for every result
	}

	for i, block := range blocks {
		wp.workers = append(wp.workers, &Worker{
			ID:          i,
			renderer:    renderer,
			block:       block,
			resultQueue: wp.resultQueue,
		})
	}

	return wp
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return len(wp.workers)
}

// Run starts every worker, waits for all of them to finish and returns
// the results ordered by block index
func (wp *WorkerPool) Run() []BlockResult {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}

	wp.wg.Wait()
	close(wp.resultQueue)

	results := make([]BlockResult, 0, len(wp.workers))
	for result := range wp.resultQueue {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].BlockIndex < results[j].BlockIndex
	})
	return results
}

func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()
	w.resultQueue <- w.renderer.RenderBlock(w.block)
}

// Package worker provides a worker pool for parallel perft searches.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// WorkItem is one subtree to count: the position reached after Move,
// searched to Depth further plies.
type WorkItem struct {
	Position *chess.Position
	Move     chess.Move // Root move that produced Position; zero for whole-position items
	Depth    int
	Label    string // Free-form name, e.g. a suite case
	Index    int    // Original index for tracking
}

// ProcessResult is the outcome of one work item.
type ProcessResult struct {
	Index int
	Move  chess.Move
	Label string
	Depth int
	Nodes uint64
	Error error
}

// ProcessFunc counts the nodes below a work item.
type ProcessFunc func(ctx context.Context, item WorkItem) ProcessResult

// Pool manages a pool of workers.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. processFunc is required; by default there is
// one worker and a buffer of 16 items.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  16,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines. Items taken after ctx is done are
// answered with ctx.Err() instead of being processed.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(ctx)
	}
}

func (p *Pool) worker(ctx context.Context) {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain without processing
		}
		if err := ctx.Err(); err != nil {
			p.resultChan <- ProcessResult{Index: item.Index, Move: item.Move, Label: item.Label, Depth: item.Depth, Error: err}
			continue
		}
		p.resultChan <- p.processFunc(ctx, item)
	}
}

// Submit queues a work item, blocking while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// TrySubmit queues a work item without blocking.
// Returns false if the buffer is full or the pool is stopped.
func (p *Pool) TrySubmit(item WorkItem) bool {
	if p.IsStopped() {
		return false
	}
	select {
	case p.workChan <- item:
		return true
	default:
		return false
	}
}

// Stop signals workers to stop processing new items.
// Items already queued are drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish,
// then closes the result channel.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run processes all items on a fresh pool of the given size and returns
// the results ordered by Index. The first failed item stops the pool and
// its error is returned alongside whatever results completed.
func Run(ctx context.Context, items []WorkItem, workers int, fn ProcessFunc) ([]ProcessResult, error) {
	pool := NewPool(fn, WithWorkers(workers), WithBufferSize(len(items)+1))
	pool.Start(ctx)

	// The buffer holds every item, so TrySubmit only refuses once a
	// failure has stopped the pool.
	go func() {
		for _, item := range items {
			if !pool.TrySubmit(item) {
				break
			}
		}
		pool.Close()
	}()

	var firstErr error
	results := make([]ProcessResult, 0, len(items))
	for result := range pool.Results() {
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			pool.Stop()
			continue
		}
		results = append(results, result)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })
	return results, firstErr
}

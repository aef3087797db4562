// Package worker plays scripted games in parallel.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/output"
)

// WorkItem is one scripted game: an optional start position and the
// coordinate moves to play from it.
type WorkItem struct {
	Index    int // Original index for ordering output
	StartFEN string
	Moves    []string
}

// ProcessResult is the outcome of playing one scripted game.
type ProcessResult struct {
	Index int

	// Game is the game as far as it was played; it is set even when Err
	// reports a failed move.
	Game *output.Game
	Err  error

	// Log holds the diagnostics written while playing the game.
	Log []byte
}

// ProcessFunc plays a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool runs a ProcessFunc over work items on a fixed set of goroutines.
type Pool struct {
	numWorkers  int
	bufferSize  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopFlag    int32
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

// NewPool creates a pool. Defaults: 1 worker, buffer size of 10.
func NewPool(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

func (p *Pool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.stopped() {
			continue // drain
		}
		p.resultChan <- p.processFunc(item)
	}
}

// stop makes the workers skip the items still queued.
func (p *Pool) stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

func (p *Pool) stopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// close closes the work channel, waits for the workers and then closes the
// result channel.
func (p *Pool) close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run starts the pool, feeds it the items and returns the results ordered
// by index. A pool runs once. Cancelling ctx stops the pool; results already produced are
// returned along with ctx.Err().
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	p.start()

	go func() {
		defer p.close()
		for _, item := range items {
			select {
			case p.workChan <- item:
			case <-ctx.Done():
				p.stop()
				return
			}
		}
	}()

	results := make([]ProcessResult, 0, len(items))
	for r := range p.resultChan {
		results = append(results, r)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, ctx.Err()
}

// Package worker runs game checks on a fixed set of goroutines.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// WorkItem is one game to be checked: a named move list.
type WorkItem struct {
	Index int // position in the batch, used to order results
	Name  string
	Moves []string
}

// ProcessResult is the outcome of checking one game.
type ProcessResult struct {
	Index  int
	Name   string
	Plies  int               // moves accepted before the game ended or a move was rejected
	Status chess.CheckStatus // status of the side to move at the end
	Result string            // "1-0", "0-1", "1/2-1/2" or "*"
	Hash   uint64            // hash of the final position or move sequence
	Err    error             // first rejected move, if any
}

// ProcessFunc checks one game. It must be safe to call from several
// goroutines at once.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool feeds work items to a fixed number of goroutines running the same
// ProcessFunc.
type Pool struct {
	check   ProcessFunc
	workers int
	buffer  int

	jobs    chan WorkItem
	results chan ProcessResult
	running sync.WaitGroup
	halted  atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets how many games are checked at once. Values below one
// are ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the job and result channels. Values
// below one are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size > 0 {
			p.buffer = size
		}
	}
}

// NewPool creates a pool running check. Without options it has one worker
// and channels of capacity 10.
func NewPool(check ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{check: check, workers: 1, buffer: 10}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.running.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.loop()
	}
}

func (p *Pool) loop() {
	defer p.running.Done()
	for item := range p.jobs {
		// A halted pool still drains jobs so that Submit never blocks forever.
		if p.halted.Load() {
			continue
		}
		p.results <- p.check(item)
	}
}

// Submit queues a game, blocking while the job channel is full.
func (p *Pool) Submit(item WorkItem) {
	p.jobs <- item
}

// Stop makes the workers discard queued games instead of checking them.
func (p *Pool) Stop() {
	p.halted.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.halted.Load()
}

// Close ends submission, waits for the workers and then closes the result
// channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.running.Wait()
	close(p.results)
}

// Results returns the channel of finished checks, in completion order.
func (p *Pool) Results() <-chan ProcessResult {
	return p.results
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int {
	return p.workers
}

// Run starts the pool, checks every item and closes the pool. Results are
// returned in item order, indexed by WorkItem.Index.
func (p *Pool) Run(items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		for _, item := range items {
			p.Submit(item)
		}
		p.Close()
	}()

	ordered := make([]ProcessResult, len(items))
	for r := range p.results {
		if r.Index >= 0 && r.Index < len(ordered) {
			ordered[r.Index] = r
		}
	}
	return ordered
}

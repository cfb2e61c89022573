// Package worker provides a worker pool for splitting move-tree work, such as
// perft subtrees, across goroutines. Every job carries its own GameState copy.
package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/termchess-go/internal/chess"
)

// Job is one subtree to process: the state after Move was played from the root.
type Job struct {
	Index int // Position of Move in the root move list
	Move  chess.Move
	State chess.GameState
	Depth int // Remaining depth below State
}

// Result is the outcome of processing a Job.
type Result struct {
	Index int
	Move  chess.Move
	Nodes uint64
	Err   error
}

// ProcessFunc processes a single job. It must not retain the job's state.
type ProcessFunc func(job Job) Result

// Pool manages a fixed set of goroutines consuming jobs.
type Pool struct {
	numWorkers  int
	bufferSize  int
	jobs        chan Job
	results     chan Result
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool. Defaults: one worker per CPU, buffer of 64.
func NewPool(processFunc ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers:  runtime.NumCPU(),
		bufferSize:  64,
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes jobs until the job channel is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.results <- p.processFunc(job)
	}
}

// Submit queues a job. It blocks while the buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes workers skip the jobs still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the job channel and waits for all workers to finish, then
// closes the result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes jobs with a fresh pool and returns results ordered by Job.Index.
// Indices must be 0..len(jobs)-1. Cancelling ctx stops the pool: queued jobs
// are skipped and Run returns ctx.Err() once the running jobs finish.
func Run(ctx context.Context, jobs []Job, processFunc ProcessFunc, opts ...Option) ([]Result, error) {
	pool := NewPool(processFunc, opts...)
	pool.Start()

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			pool.Stop()
		case <-done:
		}
	}()

	go func() {
		for _, job := range jobs {
			if pool.IsStopped() {
				break
			}
			pool.Submit(job)
		}
		pool.Close()
	}()

	results := make([]Result, len(jobs))
	for r := range pool.Results() {
		results[r.Index] = r
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

package worker

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/baharkarakas/portfolio-api/internal/metrics"
)

var (
	ErrStopped   = errors.New("worker pool stopped")
	ErrQueueFull = errors.New("worker queue full")
)

const queueSize = 1024

// Pool runs submitted tasks on a fixed number of goroutines. A panicking
// task is logged and does not take its worker down.
type Pool struct {
	wg      sync.WaitGroup
	mu      sync.RWMutex
	stopped bool
	jobs    chan func()
	log     *slog.Logger
}

func NewPool(n int, log *slog.Logger) *Pool {
	return newPool(n, queueSize, log)
}

func newPool(n, size int, log *slog.Logger) *Pool {
	if n < 1 {
		n = 1
	}
	p := &Pool{jobs: make(chan func(), size), log: log}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.WorkerQueueDepth.Dec()
				p.run(job)
			}
		}()
	}
	return p
}

func (p *Pool) run(job func()) {
	defer func() {
		if rec := recover(); rec != nil {
			p.log.Error("worker task panic", "err", rec)
		}
	}()
	job()
}

// Submit queues f without blocking. It returns ErrQueueFull when the queue
// is at capacity and ErrStopped once Stop has been called.
func (p *Pool) Submit(f func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrStopped
	}
	metrics.WorkerQueueDepth.Inc()
	select {
	case p.jobs <- f:
		return nil
	default:
		metrics.WorkerQueueDepth.Dec()
		return ErrQueueFull
	}
}

// Stop drains queued tasks and waits for the workers to exit.
func (p *Pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

package worker

import (
	"context"
	"sync"

	"easyhire-backend/internal/shared/telemetry"
)

// Pool runs background scoring jobs on a fixed number of goroutines. Jobs
// are plain closures; the pool owns no domain knowledge.
type Pool struct {
	workers int
	jobs    chan func(ctx context.Context)
	wg      sync.WaitGroup

	stopOnce sync.Once
}

// NewPool builds a pool with the given worker count (minimum 1).
func NewPool(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		jobs:    make(chan func(ctx context.Context), workers*4),
	}
}

// Start launches the workers. Jobs inherit ctx.
func (p *Pool) Start(ctx context.Context) {
	telemetry.Info("worker.pool_started", map[string]any{"workers": p.workers})
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.run(ctx, i+1)
	}
}

// Stop closes the queue and waits for in-flight jobs to finish.
func (p *Pool) Stop() {
	p.stopOnce.Do(func() {
		close(p.jobs)
	})
	p.wg.Wait()
	telemetry.Info("worker.pool_stopped", nil)
}

// Submit enqueues a job. It reports false when the queue is full and the job
// was dropped.
func (p *Pool) Submit(job func(ctx context.Context)) bool {
	select {
	case p.jobs <- job:
		return true
	default:
		telemetry.Warn("worker.queue_full", map[string]any{"workers": p.workers})
		return false
	}
}

func (p *Pool) run(ctx context.Context, id int) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-p.jobs:
			if !ok {
				return
			}
			p.safeRun(ctx, id, job)
		}
	}
}

func (p *Pool) safeRun(ctx context.Context, id int, job func(ctx context.Context)) {
	defer func() {
		if rec := recover(); rec != nil {
			telemetry.Error("worker.job_panic", map[string]any{"worker": id, "error": rec})
		}
	}()
	job(ctx)
}

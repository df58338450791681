package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolRunsSubmittedJobs(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())

	var count atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		ok := pool.Submit(func(ctx context.Context) {
			defer wg.Done()
			count.Add(1)
		})
		if !ok {
			t.Fatalf("submit %d rejected", i)
		}
	}

	wg.Wait()
	pool.Stop()
	if got := count.Load(); got != 5 {
		t.Fatalf("expected 5 jobs run, got %d", got)
	}
}

func TestPoolStopWaitsForInFlightJobs(t *testing.T) {
	pool := NewPool(1)
	pool.Start(context.Background())

	var done atomic.Bool
	started := make(chan struct{})
	pool.Submit(func(ctx context.Context) {
		close(started)
		time.Sleep(50 * time.Millisecond)
		done.Store(true)
	})

	<-started
	pool.Stop()
	if !done.Load() {
		t.Fatalf("Stop returned before in-flight job finished")
	}
}

func TestPoolSubmitRejectsWhenFull(t *testing.T) {
	pool := NewPool(1)
	// Not started: nothing drains the queue, so it fills up.
	capacity := 4
	for i := 0; i < capacity; i++ {
		if !pool.Submit(func(ctx context.Context) {}) {
			t.Fatalf("submit %d should fit in the buffer", i)
		}
	}
	if pool.Submit(func(ctx context.Context) {}) {
		t.Fatalf("expected submit to report a full queue")
	}
}

func TestPoolRecoversFromPanickingJob(t *testing.T) {
	pool := NewPool(1)
	pool.Start(context.Background())

	pool.Submit(func(ctx context.Context) {
		panic("boom")
	})

	var ran atomic.Bool
	var wg sync.WaitGroup
	wg.Add(1)
	pool.Submit(func(ctx context.Context) {
		defer wg.Done()
		ran.Store(true)
	})

	wg.Wait()
	pool.Stop()
	if !ran.Load() {
		t.Fatalf("worker did not survive the panic")
	}
}

func TestPoolStopIsIdempotent(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())
	pool.Stop()
	pool.Stop()
}

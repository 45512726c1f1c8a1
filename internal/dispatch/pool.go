package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/digiri/giriloyo-batik/internal/api/middleware"
	"github.com/digiri/giriloyo-batik/internal/models"
)

type queuedJob struct {
	ctx context.Context
	job models.MintJob
}

// Pool runs jobs on a fixed number of goroutines fed by a bounded queue.
type Pool struct {
	handler Handler
	queue   chan queuedJob
	wg      sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewPool(handler Handler, workers, queueSize int) *Pool {
	workers = max(workers, 1)
	queueSize = max(queueSize, 1)

	p := &Pool{handler: handler, queue: make(chan queuedJob, queueSize)}

	p.wg.Add(workers)
	for range workers {
		go p.work()
	}

	return p
}

func (p *Pool) work() {
	defer p.wg.Done()

	for q := range p.queue {
		if err := p.handler(q.ctx, q.job); err != nil {
			middleware.LoggerFromContext(q.ctx).Error("Mint job failed",
				slog.String("orderId", q.job.OrderID), slog.Any("error", err))
		}
	}
}

// Dispatch enqueues the job, waiting for room until ctx is done. The job
// keeps ctx's values (logger, trace) but not its cancellation.
func (p *Pool) Dispatch(ctx context.Context, job models.MintJob) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}

	select {
	case p.queue <- queuedJob{ctx: context.WithoutCancel(ctx), job: job}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (p *Pool) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()

	return nil
}

// Package async runs independent extraction jobs on a bounded worker pool.
// The engine itself is stateless per document, so jobs never share state and
// ordering between documents is not guaranteed.
package async

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrPoolClosed is returned by Enqueue after Shutdown has started.
var ErrPoolClosed = errors.New("worker pool closed")

// Job is the smallest useful unit: one OCR payload to extract.
type Job struct {
	DocumentID  uuid.UUID
	Path        string
	Payload     []byte
	SubmittedAt time.Time
}

// Handler processes one job. Errors are logged, not retried: extraction is
// deterministic, so a retry would fail identically.
type Handler func(ctx context.Context, job Job) error

// Queue accepts jobs until Shutdown.
type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// Pool is a fixed-size worker pool implementation of Queue.
type Pool struct {
	logger  *slog.Logger
	handler Handler
	jobs    chan Job
	wg      sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewPool starts workers goroutines draining the job channel.
func NewPool(logger *slog.Logger, workers int, handler Handler) *Pool {
	if logger == nil {
		logger = slog.Default()
	}
	if workers < 1 {
		workers = 1
	}
	p := &Pool{
		logger:  logger,
		handler: handler,
		jobs:    make(chan Job, workers*2),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		start := time.Now()
		if err := p.handler(context.Background(), job); err != nil {
			p.logger.Error("async.job.failed",
				"document_id", job.DocumentID,
				"path", job.Path,
				"error", err,
			)
			continue
		}
		p.logger.Debug("async.job.ok",
			"document_id", job.DocumentID,
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
	}
}

// Enqueue submits a job, blocking while the pool is saturated. It fails once
// the context is canceled or the pool has shut down.
func (p *Pool) Enqueue(ctx context.Context, job Job) error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return ErrPoolClosed
	}
	p.mu.Unlock()

	if job.DocumentID == uuid.Nil {
		job.DocumentID = uuid.New()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now()
	}
	select {
	case p.jobs <- job:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Shutdown stops intake and waits for in-flight jobs, or returns early when
// the context expires.
func (p *Pool) Shutdown(ctx context.Context) {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.jobs)
	}
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		p.logger.Warn("async.shutdown.timeout")
	}
}

// Package async runs the document pipeline off a bounded in-process
// queue. Uploads are acknowledged as soon as the row exists; workers pull
// document ids from the channel and drive them through the stages.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Processor advances one document; errors are already recorded on the
// row by the pipeline, so the queue only logs them.
type Processor interface {
	Process(ctx context.Context, docID uuid.UUID) error
}

type Config struct {
	Workers      int
	QueueSize    int
	StageTimeout time.Duration
}

type Queue struct {
	cfg    Config
	proc   Processor
	logger *slog.Logger

	jobs chan uuid.UUID
	wg   sync.WaitGroup

	mu      sync.Mutex
	started bool
	closed  bool
}

func NewQueue(cfg Config, proc Processor, logger *slog.Logger) *Queue {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 256
	}
	if cfg.StageTimeout <= 0 {
		cfg.StageTimeout = 3 * time.Minute
	}
	return &Queue{
		cfg:    cfg,
		proc:   proc,
		logger: logger,
		jobs:   make(chan uuid.UUID, cfg.QueueSize),
	}
}

// Start launches the worker pool. Workers stop when the queue is drained
// after Stop, or immediately when ctx is cancelled.
func (q *Queue) Start(ctx context.Context) {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return
	}
	q.started = true
	q.mu.Unlock()

	for i := 0; i < q.cfg.Workers; i++ {
		q.wg.Add(1)
		go q.worker(ctx, i)
	}
	q.logger.Info("pipeline workers started", "workers", q.cfg.Workers, "queue_size", q.cfg.QueueSize)
}

// Enqueue hands a document to the pool without blocking; it reports false
// when the queue is full so the caller can surface backpressure.
func (q *Queue) Enqueue(docID uuid.UUID) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.mu.Unlock()

	select {
	case q.jobs <- docID:
		return true
	default:
		q.logger.Warn("pipeline queue full, rejecting enqueue", "doc_id", docID)
		return false
	}
}

// Stop closes intake and waits for in-flight work to finish.
func (q *Queue) Stop() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	close(q.jobs)
	q.wg.Wait()
	q.logger.Info("pipeline workers drained")
}

func (q *Queue) worker(ctx context.Context, id int) {
	defer q.wg.Done()
	log := q.logger.With("worker", id)
	for {
		select {
		case <-ctx.Done():
			log.Info("worker stopping", "reason", ctx.Err())
			return
		case docID, ok := <-q.jobs:
			if !ok {
				return
			}
			q.run(ctx, log, docID)
		}
	}
}

func (q *Queue) run(ctx context.Context, log *slog.Logger, docID uuid.UUID) {
	stageCtx, cancel := context.WithTimeout(ctx, q.cfg.StageTimeout)
	defer cancel()

	start := time.Now()
	if err := q.proc.Process(stageCtx, docID); err != nil {
		// the pipeline already recorded the failure on the document row
		log.Warn("document processing failed", "doc_id", docID, "elapsed_ms", time.Since(start).Milliseconds(), "error", err)
		return
	}
	log.Debug("document processed", "doc_id", docID, "elapsed_ms", time.Since(start).Milliseconds())
}

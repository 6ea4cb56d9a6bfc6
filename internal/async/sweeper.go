package async

import (
	"context"
	"log/slog"
	"time"

	"github.com/patriciodunstan/back-investigacion-vehiculos/gen/ent"
)

// RetrySource yields documents whose scheduled retry is due.
type RetrySource interface {
	FindDueRetries(ctx context.Context, now time.Time, limit int) ([]*ent.ProcessedDocument, error)
}

// Sweeper periodically re-enqueues documents waiting on a retry schedule.
// It is the only way a failed stage gets a second attempt, so it runs for
// the whole process lifetime.
type Sweeper struct {
	source   RetrySource
	queue    *Queue
	interval time.Duration
	batch    int
	logger   *slog.Logger
}

func NewSweeper(source RetrySource, queue *Queue, interval time.Duration, logger *slog.Logger) *Sweeper {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = 15 * time.Second
	}
	return &Sweeper{source: source, queue: queue, interval: interval, batch: 100, logger: logger}
}

// Run blocks until ctx is cancelled.
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.Info("retry sweeper stopping")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Sweeper) sweep(ctx context.Context) {
	due, err := s.source.FindDueRetries(ctx, time.Now(), s.batch)
	if err != nil {
		s.logger.Error("retry sweep query failed", "error", err)
		return
	}
	if len(due) == 0 {
		return
	}
	var enqueued int
	for _, doc := range due {
		if s.queue.Enqueue(doc.ID) {
			enqueued++
		}
	}
	s.logger.Info("retry sweep", "due", len(due), "enqueued", enqueued)
}

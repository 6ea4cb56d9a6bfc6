package async

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProcessor struct {
	mu   sync.Mutex
	seen []uuid.UUID
	slow time.Duration
}

func (c *countingProcessor) Process(_ context.Context, docID uuid.UUID) error {
	if c.slow > 0 {
		time.Sleep(c.slow)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seen = append(c.seen, docID)
	return nil
}

func (c *countingProcessor) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

func TestQueueProcessesEnqueuedDocuments(t *testing.T) {
	proc := &countingProcessor{}
	q := NewQueue(Config{Workers: 2, QueueSize: 16}, proc, nil)
	q.Start(context.Background())

	ids := make([]uuid.UUID, 5)
	for i := range ids {
		ids[i] = uuid.New()
		require.True(t, q.Enqueue(ids[i]))
	}
	q.Stop()

	assert.Equal(t, 5, proc.count())
	assert.ElementsMatch(t, ids, proc.seen)
}

func TestQueueRejectsWhenFull(t *testing.T) {
	// no workers running: the buffer is the only capacity
	q := NewQueue(Config{Workers: 1, QueueSize: 2}, &countingProcessor{}, nil)

	assert.True(t, q.Enqueue(uuid.New()))
	assert.True(t, q.Enqueue(uuid.New()))
	assert.False(t, q.Enqueue(uuid.New()))
}

func TestQueueRejectsAfterStop(t *testing.T) {
	q := NewQueue(Config{Workers: 1, QueueSize: 4}, &countingProcessor{}, nil)
	q.Start(context.Background())
	q.Stop()

	assert.False(t, q.Enqueue(uuid.New()))
}

func TestQueueDrainsInFlightWorkOnStop(t *testing.T) {
	proc := &countingProcessor{slow: 20 * time.Millisecond}
	q := NewQueue(Config{Workers: 4, QueueSize: 32}, proc, nil)
	q.Start(context.Background())

	for i := 0; i < 10; i++ {
		require.True(t, q.Enqueue(uuid.New()))
	}
	q.Stop()

	assert.Equal(t, 10, proc.count())
}

package registry

import (
	"sync"
	"time"
)

// minuteLimiter is a fixed-window counter: at most limit calls per minute,
// rejecting instead of queueing above the ceiling.
type minuteLimiter struct {
	mu          sync.Mutex
	limit       int
	windowStart time.Time
	count       int
}

func newMinuteLimiter(limit int) *minuteLimiter {
	return &minuteLimiter{limit: limit}
}

func (l *minuteLimiter) Allow(now time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if now.Sub(l.windowStart) >= time.Minute {
		l.windowStart = now
		l.count = 0
	}
	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}

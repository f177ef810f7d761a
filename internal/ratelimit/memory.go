package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter holds counters in-process. Budgets are not shared across
// instances; only correct for single-instance deployments.
type MemoryLimiter struct {
	config Config
	now    func() time.Time

	mu        sync.Mutex
	entries   map[string]*memoryEntry
	lastSweep time.Time
}

type memoryEntry struct {
	count        int
	windowStart  time.Time
	blockedUntil time.Time
}

func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		config:  cfg,
		now:     time.Now,
		entries: make(map[string]*memoryEntry),
	}
}

func (l *MemoryLimiter) Consume(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	entry, ok := l.entries[key]
	if !ok {
		entry = &memoryEntry{windowStart: now}
		l.entries[key] = entry
	}

	if now.Before(entry.blockedUntil) {
		return ErrRateLimited
	}

	if now.Sub(entry.windowStart) >= l.config.Window {
		entry.count = 0
		entry.windowStart = now
	}

	entry.count++
	if entry.count > l.config.Points {
		entry.blockedUntil = now.Add(l.config.Block)
		return ErrRateLimited
	}

	return nil
}

// sweep drops entries whose window and block have both lapsed, at most once
// per window, so the map does not grow with every client IP ever seen.
// Callers hold l.mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.config.Window {
		return
	}
	l.lastSweep = now

	for key, entry := range l.entries {
		if now.Sub(entry.windowStart) >= l.config.Window && !now.Before(entry.blockedUntil) {
			delete(l.entries, key)
		}
	}
}

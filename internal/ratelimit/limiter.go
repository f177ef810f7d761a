// Package ratelimit provides fixed-window per-key budgets with a block
// period on breach. Backends are interchangeable: Redis shares counters
// across instances, the in-memory limiter is for single-instance
// deployments and tests.
package ratelimit

import (
	"context"
	"errors"
	"time"
)

var ErrRateLimited = errors.New("rate limited")

// Config tunes one route class. A key may spend Points within Window;
// exceeding the budget blocks the key for Block.
type Config struct {
	Prefix string
	Points int
	Window time.Duration
	Block  time.Duration
}

type Limiter interface {
	// Consume spends one point for the key, failing with ErrRateLimited
	// when the key is over budget or currently blocked.
	Consume(ctx context.Context, key string) error
}

package ratelimit

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

var ErrRedisUnavailable = errors.New("redis unavailable")

// RedisLimiter keeps fixed-window counters in Redis so budgets hold across
// horizontally scaled instances.
type RedisLimiter struct {
	redis  redis.UniversalClient
	config Config
}

func NewRedisLimiter(redisClient redis.UniversalClient, cfg Config) *RedisLimiter {
	return &RedisLimiter{
		redis:  redisClient,
		config: cfg,
	}
}

func (l *RedisLimiter) Consume(ctx context.Context, key string) error {
	blocked, err := l.redis.Exists(ctx, l.blockKey(key)).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}
	if blocked > 0 {
		return ErrRateLimited
	}

	count, err := l.redis.Incr(ctx, l.countKey(key)).Result()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
	}

	// Fixed-window semantics: set TTL only for the first hit in the window.
	if count == 1 {
		if err := l.redis.Expire(ctx, l.countKey(key), l.config.Window).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
	}

	if count > int64(l.config.Points) {
		if err := l.redis.Set(ctx, l.blockKey(key), 1, l.config.Block).Err(); err != nil {
			return fmt.Errorf("%w: %v", ErrRedisUnavailable, err)
		}
		return ErrRateLimited
	}

	return nil
}

func (l *RedisLimiter) countKey(key string) string {
	return l.config.Prefix + ":cnt:" + key
}

func (l *RedisLimiter) blockKey(key string) string {
	return l.config.Prefix + ":blk:" + key
}

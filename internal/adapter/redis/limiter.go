package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "ratelimit:"
	window    = time.Minute
)

// Limiter counts requests per key in one-minute fixed windows shared by
// every server instance.
type Limiter struct {
	client goredis.Cmdable
	now    func() time.Time
}

// NewLimiter creates a limiter on top of client.
func NewLimiter(client goredis.Cmdable) *Limiter {
	return &Limiter{client: client, now: time.Now}
}

// Allow increments the counter of key for the current window and reports
// whether it is still within maxPerMinute.
func (l *Limiter) Allow(ctx context.Context, key string, maxPerMinute int) (bool, error) {
	slot := l.now().Unix() / int64(window.Seconds())
	k := keyPrefix + key + ":" + strconv.FormatInt(slot, 10)

	pipe := l.client.TxPipeline()
	incr := pipe.Incr(ctx, k)
	pipe.Expire(ctx, k, 2*window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("redis.Limiter.Allow: %w", err)
	}

	return incr.Val() <= int64(maxPerMinute), nil
}

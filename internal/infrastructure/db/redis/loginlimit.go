package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles authentication attempts with a fixed window counter
// per (email, remote IP) pair. It counts attempts only — it never caches the
// outcome of a credential check or token verification.
// Key format: loginlimit:<email>:<ip>
type LoginLimiter struct {
	client *redis.Client
	max    int64
	window time.Duration
}

// NewLoginLimiter creates a limiter allowing max attempts per window.
func NewLoginLimiter(client *redis.Client, max int, window time.Duration) *LoginLimiter {
	if max <= 0 {
		max = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{client: client, max: int64(max), window: window}
}

// Allow records one attempt and reports whether it is within the limit.
// The window TTL is set on the first attempt of each window.
func (l *LoginLimiter) Allow(ctx context.Context, email, ip string) (bool, error) {
	key := l.key(email, ip)

	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("login limit incr: %w", err)
	}
	if n == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, fmt.Errorf("login limit expire: %w", err)
		}
	}
	return n <= l.max, nil
}

func (l *LoginLimiter) key(email, ip string) string {
	return fmt.Sprintf("loginlimit:%s:%s", email, ip)
}

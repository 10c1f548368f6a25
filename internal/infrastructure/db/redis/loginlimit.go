package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles failed login attempts per email, backed by Redis.
// Key format: login:fail:<email>. The counter expires after the attempt
// window; once it reaches maxAttempts the expiry is extended to the lockout
// duration, so the lockout outlives the window that triggered it.
type LoginLimiter struct {
	client      *redis.Client
	maxAttempts int64
	window      time.Duration
	lockout     time.Duration
}

func NewLoginLimiter(client *redis.Client, maxAttempts int64, window, lockout time.Duration) *LoginLimiter {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	if lockout <= 0 {
		lockout = 30 * time.Minute
	}
	return &LoginLimiter{client: client, maxAttempts: maxAttempts, window: window, lockout: lockout}
}

// IsLocked reports whether this email has reached the failure limit.
func (l *LoginLimiter) IsLocked(ctx context.Context, email string) (bool, error) {
	n, err := l.client.Get(ctx, l.key(email)).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("throttle check: %w", err)
	}
	return n >= l.maxAttempts, nil
}

// RecordFailure increments the failure counter for this email.
func (l *LoginLimiter) RecordFailure(ctx context.Context, email string) error {
	key := l.key(email)
	n, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return fmt.Errorf("throttle incr: %w", err)
	}

	ttl := l.window
	if n >= l.maxAttempts {
		ttl = l.lockout
	}
	if err := l.client.Expire(ctx, key, ttl).Err(); err != nil {
		return fmt.Errorf("throttle expire: %w", err)
	}
	return nil
}

// Reset clears the failure counter after a successful login.
func (l *LoginLimiter) Reset(ctx context.Context, email string) error {
	return l.client.Del(ctx, l.key(email)).Err()
}

func (l *LoginLimiter) key(email string) string {
	return fmt.Sprintf("login:fail:%s", email)
}

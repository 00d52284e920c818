package ratelimit

import "time"

// LoginLimitConfig bounds login attempts per key within a sliding window.
type LoginLimitConfig struct {
	MaxAttempts   int
	WindowMinutes int
}

func (c LoginLimitConfig) Window() time.Duration {
	return time.Duration(c.WindowMinutes) * time.Minute
}

type RateLimiter interface {
	Allow(key string, config LoginLimitConfig) (bool, error)
	GetRemaining(key string, window time.Duration) (int64, error)
	Reset(key string) error
}

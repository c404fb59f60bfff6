package mock

import (
	"time"

	"github.com/fwojciec/pith"
)

var _ pith.RateLimiter = (*RateLimiter)(nil)

// RateLimiter is a mock implementation of pith.RateLimiter.
type RateLimiter struct {
	AllowFn      func(key string) bool
	RemainingFn  func(key string) int
	RetryAfterFn func(key string) time.Duration
}

func (l *RateLimiter) Allow(key string) bool {
	return l.AllowFn(key)
}

func (l *RateLimiter) Remaining(key string) int {
	return l.RemainingFn(key)
}

func (l *RateLimiter) RetryAfter(key string) time.Duration {
	return l.RetryAfterFn(key)
}

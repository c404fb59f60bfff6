package pith

import "time"

// Default rate-limit policy applied per URL origin.
const (
	DefaultRateLimitRequests = 10
	DefaultRateLimitWindow   = 60 * time.Second
)

// RateLimiter is sliding-window admission control per key (here, per URL
// origin).
type RateLimiter interface {
	// Allow atomically tests and records: it returns true iff fewer than
	// the configured maximum of timestamps for key fall within the
	// trailing window, in which case the current time is recorded.
	Allow(key string) bool

	// Remaining returns how many further requests the window for key
	// admits. Read-only: it prunes expired timestamps but never records
	// a new one.
	Remaining(key string) int

	// RetryAfter returns how long until the window for key next admits a
	// request. Zero when a request would be admitted now.
	RetryAfter(key string) time.Duration
}

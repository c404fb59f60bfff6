package extract

import (
	"sync"
	"time"

	"github.com/fwojciec/pith"
)

var _ pith.RateLimiter = (*SlidingLimiter)(nil)

// SlidingLimiter is sliding-window admission control per key. It keeps the
// timestamps of admitted requests inside the trailing window and rejects
// once the configured maximum is reached.
type SlidingLimiter struct {
	// Now returns the current time. Replaceable in tests.
	Now func() time.Time

	mu     sync.Mutex
	max    int
	window time.Duration
	stamps map[string][]time.Time
}

// NewSlidingLimiter creates a limiter admitting maxRequests per window for
// each key. Non-positive arguments take the defaults, 10 requests per 60s.
func NewSlidingLimiter(maxRequests int, window time.Duration) *SlidingLimiter {
	if maxRequests <= 0 {
		maxRequests = pith.DefaultRateLimitRequests
	}
	if window <= 0 {
		window = pith.DefaultRateLimitWindow
	}
	return &SlidingLimiter{
		Now:    time.Now,
		max:    maxRequests,
		window: window,
		stamps: make(map[string][]time.Time),
	}
}

// Allow atomically tests and records: it returns true iff fewer than the
// maximum of timestamps for key fall within the trailing window, in which
// case the current time is recorded.
func (l *SlidingLimiter) Allow(key string) bool {
	now := l.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.prune(key, now)
	if len(kept) >= l.max {
		return false
	}
	l.stamps[key] = append(kept, now)
	return true
}

// Remaining returns how many further requests the window for key admits.
// Read-only: it prunes expired timestamps but never records a new one.
func (l *SlidingLimiter) Remaining(key string) int {
	now := l.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.prune(key, now)
	return l.max - len(kept)
}

// RetryAfter returns how long until the window for key next admits a
// request, zero when a request would be admitted now.
func (l *SlidingLimiter) RetryAfter(key string) time.Duration {
	now := l.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	kept := l.prune(key, now)
	if len(kept) < l.max {
		return 0
	}
	return kept[0].Add(l.window).Sub(now)
}

// prune drops timestamps that have left the trailing window and returns the
// survivors. The map entry is updated, or deleted once empty. Callers must
// hold the mutex.
func (l *SlidingLimiter) prune(key string, now time.Time) []time.Time {
	cutoff := now.Add(-l.window)
	stamps := l.stamps[key]

	kept := stamps[:0]
	for _, t := range stamps {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.stamps, key)
		return nil
	}
	l.stamps[key] = kept
	return kept
}

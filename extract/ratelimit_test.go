package extract_test

import (
	"testing"
	"time"

	"github.com/fwojciec/pith/extract"
	"github.com/stretchr/testify/assert"
)

func TestSlidingLimiter(t *testing.T) {
	t.Parallel()

	t.Run("allows up to the quota and then rejects", func(t *testing.T) {
		t.Parallel()

		l := extract.NewSlidingLimiter(3, time.Minute)
		assert.True(t, l.Allow("https://example.com"))
		assert.True(t, l.Allow("https://example.com"))
		assert.True(t, l.Allow("https://example.com"))
		assert.False(t, l.Allow("https://example.com"))
	})

	t.Run("forgets requests outside the window", func(t *testing.T) {
		t.Parallel()

		now := time.Now()
		l := extract.NewSlidingLimiter(2, time.Minute)
		l.Now = func() time.Time { return now }

		assert.True(t, l.Allow("k"))
		assert.True(t, l.Allow("k"))
		assert.False(t, l.Allow("k"))

		now = now.Add(61 * time.Second)
		assert.True(t, l.Allow("k"))
	})

	t.Run("remaining does not consume quota", func(t *testing.T) {
		t.Parallel()

		l := extract.NewSlidingLimiter(5, time.Minute)
		l.Allow("k")
		l.Allow("k")

		assert.Equal(t, 3, l.Remaining("k"))
		assert.Equal(t, 3, l.Remaining("k"))
	})

	t.Run("retry after reports when the oldest request expires", func(t *testing.T) {
		t.Parallel()

		now := time.Now()
		l := extract.NewSlidingLimiter(1, time.Minute)
		l.Now = func() time.Time { return now }

		assert.True(t, l.Allow("k"))
		assert.Equal(t, time.Minute, l.RetryAfter("k"))

		now = now.Add(20 * time.Second)
		assert.Equal(t, 40*time.Second, l.RetryAfter("k"))

		now = now.Add(41 * time.Second)
		assert.Equal(t, time.Duration(0), l.RetryAfter("k"))
	})

	t.Run("keys are limited independently", func(t *testing.T) {
		t.Parallel()

		l := extract.NewSlidingLimiter(1, time.Minute)
		assert.True(t, l.Allow("https://a.example"))
		assert.False(t, l.Allow("https://a.example"))
		assert.True(t, l.Allow("https://b.example"))
	})
}

package bloom_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/fwojciec/pith/bloom"
	"github.com/stretchr/testify/assert"
)

func TestIndex_RecordAndSeen(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndex(1000, 0.01)

	// Fingerprint not yet recorded should return false
	assert.False(t, idx.Seen("a1b2c3d4e5f60718"))

	idx.Record("a1b2c3d4e5f60718")

	// Now it should return true
	assert.True(t, idx.Seen("a1b2c3d4e5f60718"))

	// Different fingerprint should still return false
	assert.False(t, idx.Seen("ffeeddccbbaa9988"))
}

func TestIndex_EstimatedCount(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndex(1000, 0.01)

	// Empty index should have count near 0
	assert.Equal(t, uint(0), idx.EstimatedCount())

	idx.Record("fp-1")
	idx.Record("fp-2")
	idx.Record("fp-3")

	// Estimated count should be approximately 3
	count := idx.EstimatedCount()
	assert.True(t, count >= 2 && count <= 4, "expected count near 3, got %d", count)
}

func TestIndex_RecordIsIdempotent(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndex(1000, 0.01)

	fingerprint := "a1b2c3d4e5f60718"

	idx.Record(fingerprint)
	countAfterFirst := idx.EstimatedCount()

	// Recording the same fingerprint multiple times should not change the index
	idx.Record(fingerprint)
	idx.Record(fingerprint)
	idx.Record(fingerprint)

	assert.Equal(t, countAfterFirst, idx.EstimatedCount())
	assert.True(t, idx.Seen(fingerprint))
}

func TestIndex_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	idx := bloom.NewIndex(10000, 0.01)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := range 100 {
				fp := fmt.Sprintf("fp-%d-%d", worker, j)
				idx.Record(fp)
				idx.Seen(fp)
			}
		}(i)
	}
	wg.Wait()

	assert.True(t, idx.Seen("fp-0-0"))
	assert.True(t, idx.Seen("fp-9-99"))
}

func TestIndex_FalsePositiveRate(t *testing.T) {
	t.Parallel()

	const (
		numItems   = 10000
		fpRate     = 0.01
		testProbes = 10000
	)

	idx := bloom.NewIndex(numItems, fpRate)

	// Record 10k fingerprints
	for i := range numItems {
		idx.Record(fmt.Sprintf("recorded-%d", i))
	}

	// Probe with 10k fingerprints that were NOT recorded
	falsePositives := 0
	for i := range testProbes {
		if idx.Seen(fmt.Sprintf("unrecorded-%d", i)) {
			falsePositives++
		}
	}

	// False positive rate should be approximately 1%
	// Allow up to 2% to account for statistical variance
	actualRate := float64(falsePositives) / float64(testProbes)
	assert.Less(t, actualRate, 0.02, "false positive rate %f exceeds 2%%", actualRate)
}

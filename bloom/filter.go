// Package bloom provides a probabilistic pith.DuplicateIndex over content
// fingerprints using Bloom filters.
package bloom

import (
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/fwojciec/pith"
)

// Ensure Index implements pith.DuplicateIndex at compile time.
var _ pith.DuplicateIndex = (*Index)(nil)

// Index remembers content fingerprints in a Bloom filter. Seen may report
// false positives at the configured rate; it never reports false negatives.
// Safe for concurrent use.
type Index struct {
	mu sync.Mutex
	f  *bloom.BloomFilter
}

// NewIndex creates an index sized for n expected fingerprints
// with the given false positive rate.
func NewIndex(n uint, fpRate float64) *Index {
	return &Index{
		f: bloom.NewWithEstimates(n, fpRate),
	}
}

// Seen reports whether the fingerprint has probably been recorded.
func (i *Index) Seen(fingerprint string) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.f.TestString(fingerprint)
}

// Record adds the fingerprint to the index.
func (i *Index) Record(fingerprint string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.f.AddString(fingerprint)
}

// EstimatedCount returns the approximate number of recorded fingerprints.
func (i *Index) EstimatedCount() uint {
	i.mu.Lock()
	defer i.mu.Unlock()
	return uint(i.f.ApproximatedSize())
}

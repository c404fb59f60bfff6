package mock

import "github.com/fwojciec/pith"

var _ pith.DuplicateIndex = (*DuplicateIndex)(nil)

// DuplicateIndex is a mock implementation of pith.DuplicateIndex.
type DuplicateIndex struct {
	SeenFn   func(fingerprint string) bool
	RecordFn func(fingerprint string)
}

func (d *DuplicateIndex) Seen(fingerprint string) bool {
	return d.SeenFn(fingerprint)
}

func (d *DuplicateIndex) Record(fingerprint string) {
	d.RecordFn(fingerprint)
}

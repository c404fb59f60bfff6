package pith

// DuplicateIndex remembers content fingerprints across extractions and
// reports probable repeats. Implementations may be probabilistic: false
// positives are acceptable, false negatives are not.
type DuplicateIndex interface {
	// Seen reports whether the fingerprint has probably been recorded.
	Seen(fingerprint string) bool

	// Record adds the fingerprint to the index.
	Record(fingerprint string)
}

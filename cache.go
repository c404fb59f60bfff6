package pith

import (
	"context"
	"time"
)

// CacheEntry pairs cached content with its write time. Staleness is judged
// by the reader against its TTL policy: an entry is stale once
// now - Timestamp >= ttl.
type CacheEntry struct {
	Content   *ExtractedContent `json:"content"`
	Timestamp time.Time         `json:"timestamp"`
}

// ContentCache is the extraction result cache, keyed by the orchestrator's
// cache key (a digest of URL and serialized options). Implementations bound
// their own capacity; TTL enforcement stays with the caller.
type ContentCache interface {
	// Get returns the entry for key. Returns ENOTFOUND when absent.
	Get(ctx context.Context, key string) (*CacheEntry, error)

	// Set stores an entry, evicting older entries per the cache's policy.
	Set(ctx context.Context, key string, entry *CacheEntry) error

	// Delete removes the entry for key if present.
	Delete(ctx context.Context, key string) error

	// Clear removes every entry.
	Clear(ctx context.Context) error
}

// ContentStore is a secondary, unbounded content store consulted on
// primary-cache miss when persistent caching is enabled.
type ContentStore interface {
	// SaveContent persists a content record under the cache key,
	// replacing any previous record with the same key.
	SaveContent(ctx context.Context, key string, content *ExtractedContent) error

	// FindContentByKey retrieves a record by cache key.
	// Returns ENOTFOUND if no record exists.
	FindContentByKey(ctx context.Context, key string) (*ExtractedContent, error)

	// FindContentByURL retrieves all stored records for a source URL.
	FindContentByURL(ctx context.Context, url string) ([]*ExtractedContent, error)

	// FindContentByFingerprint retrieves all stored records sharing a
	// fingerprint.
	FindContentByFingerprint(ctx context.Context, fingerprint string) ([]*ExtractedContent, error)

	// DeleteContent removes the record for the cache key.
	// Returns ENOTFOUND if no record exists.
	DeleteContent(ctx context.Context, key string) error
}

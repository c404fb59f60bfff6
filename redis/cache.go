// Package redis provides a Redis-backed implementation of pith.ContentCache
// for sharing extraction results across processes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pith"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how long entries live in Redis when no explicit TTL is
// configured. Staleness within that bound is still judged by the caller
// against the extraction options, so a shorter option TTL behaves correctly.
const DefaultTTL = 24 * time.Hour

// Ensure Cache implements pith.ContentCache at compile time.
var _ pith.ContentCache = (*Cache)(nil)

// Cache stores extraction results in Redis as JSON values. Unlike the
// in-process cache, entries survive restarts and are visible to every
// process sharing the server.
type Cache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Cache.
type Option func(*Cache)

// WithPrefix namespaces every key, so multiple deployments can share one
// Redis database.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithTTL sets the Redis-side expiry for entries. Defaults to DefaultTTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// NewCache connects to the Redis server at url (redis://...) and verifies
// the connection before returning.
func NewCache(url string, opts ...Option) (*Cache, error) {
	ropts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(ropts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	c := &Cache{
		client: client,
		prefix: "pith",
		ttl:    DefaultTTL,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Get returns the entry for key.
func (c *Cache) Get(ctx context.Context, key string) (*pith.CacheEntry, error) {
	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, pith.Errorf(pith.ENOTFOUND, "cache entry not found")
	}
	if err != nil {
		return nil, pith.Errorf(pith.EUNAVAILABLE, "cache get: %v", err)
	}

	var entry pith.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decode cache entry: %w", err)
	}
	return &entry, nil
}

// Set stores an entry under key with the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, entry *pith.CacheEntry) error {
	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry: %w", err)
	}

	if err := c.client.Set(ctx, c.key(key), data, c.ttl).Err(); err != nil {
		return pith.Errorf(pith.EUNAVAILABLE, "cache set: %v", err)
	}
	return nil
}

// Delete removes the entry for key if present.
func (c *Cache) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, c.key(key)).Err(); err != nil {
		return pith.Errorf(pith.EUNAVAILABLE, "cache delete: %v", err)
	}
	return nil
}

// Clear removes every entry under the cache's prefix. Keys are collected
// with SCAN so the server is never blocked by a KEYS call.
func (c *Cache) Clear(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, c.prefix+":*", 0).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return pith.Errorf(pith.EUNAVAILABLE, "cache scan: %v", err)
	}

	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return pith.Errorf(pith.EUNAVAILABLE, "cache clear: %v", err)
	}
	return nil
}

// Close releases the underlying client.
func (c *Cache) Close() error {
	return c.client.Close()
}

func (c *Cache) key(parts ...string) string {
	if c.prefix == "" {
		return strings.Join(parts, ":")
	}
	return c.prefix + ":" + strings.Join(parts, ":")
}

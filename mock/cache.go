package mock

import (
	"context"

	"github.com/fwojciec/pith"
)

var _ pith.ContentCache = (*ContentCache)(nil)

// ContentCache is a mock implementation of pith.ContentCache.
type ContentCache struct {
	GetFn    func(ctx context.Context, key string) (*pith.CacheEntry, error)
	SetFn    func(ctx context.Context, key string, entry *pith.CacheEntry) error
	DeleteFn func(ctx context.Context, key string) error
	ClearFn  func(ctx context.Context) error
}

func (c *ContentCache) Get(ctx context.Context, key string) (*pith.CacheEntry, error) {
	return c.GetFn(ctx, key)
}

func (c *ContentCache) Set(ctx context.Context, key string, entry *pith.CacheEntry) error {
	return c.SetFn(ctx, key, entry)
}

func (c *ContentCache) Delete(ctx context.Context, key string) error {
	return c.DeleteFn(ctx, key)
}

func (c *ContentCache) Clear(ctx context.Context) error {
	return c.ClearFn(ctx)
}

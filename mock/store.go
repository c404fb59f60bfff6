package mock

import (
	"context"

	"github.com/fwojciec/pith"
)

var _ pith.ContentStore = (*ContentStore)(nil)

// ContentStore is a mock implementation of pith.ContentStore.
type ContentStore struct {
	SaveContentFn              func(ctx context.Context, key string, content *pith.ExtractedContent) error
	FindContentByKeyFn         func(ctx context.Context, key string) (*pith.ExtractedContent, error)
	FindContentByURLFn         func(ctx context.Context, url string) ([]*pith.ExtractedContent, error)
	FindContentByFingerprintFn func(ctx context.Context, fingerprint string) ([]*pith.ExtractedContent, error)
	DeleteContentFn            func(ctx context.Context, key string) error
}

func (s *ContentStore) SaveContent(ctx context.Context, key string, content *pith.ExtractedContent) error {
	return s.SaveContentFn(ctx, key, content)
}

func (s *ContentStore) FindContentByKey(ctx context.Context, key string) (*pith.ExtractedContent, error) {
	return s.FindContentByKeyFn(ctx, key)
}

func (s *ContentStore) FindContentByURL(ctx context.Context, url string) ([]*pith.ExtractedContent, error) {
	return s.FindContentByURLFn(ctx, url)
}

func (s *ContentStore) FindContentByFingerprint(ctx context.Context, fingerprint string) ([]*pith.ExtractedContent, error) {
	return s.FindContentByFingerprintFn(ctx, fingerprint)
}

func (s *ContentStore) DeleteContent(ctx context.Context, key string) error {
	return s.DeleteContentFn(ctx, key)
}

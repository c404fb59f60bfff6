package mock

import (
	"context"

	"github.com/fwojciec/pith"
)

var _ pith.ContentWriter = (*ContentWriter)(nil)

// ContentWriter is a mock implementation of pith.ContentWriter.
type ContentWriter struct {
	WriteContentFn func(ctx context.Context, content *pith.ExtractedContent) error
}

func (w *ContentWriter) WriteContent(ctx context.Context, content *pith.ExtractedContent) error {
	return w.WriteContentFn(ctx, content)
}

var _ pith.SiteStore = (*SiteStore)(nil)

// SiteStore is a mock implementation of pith.SiteStore.
type SiteStore struct {
	SaveFn   func(ctx context.Context, content *pith.ExtractedContent) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *SiteStore) Save(ctx context.Context, content *pith.ExtractedContent) error {
	return s.SaveFn(ctx, content)
}

func (s *SiteStore) Commit() error {
	return s.CommitFn()
}

func (s *SiteStore) Abort() error {
	return s.AbortFn()
}

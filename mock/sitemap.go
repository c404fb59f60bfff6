package mock

import (
	"context"

	"github.com/fwojciec/pith"
)

var _ pith.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of pith.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string, filter *pith.URLFilter) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pith.URLFilter) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL, filter)
}

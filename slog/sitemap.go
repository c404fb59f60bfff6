package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pith"
)

var _ pith.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService decorates a SitemapService with structured logging.
// Site-wide runs can take minutes, so the discovery log line is the first
// signal of how large the run will be.
type LoggingSitemapService struct {
	next   pith.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next pith.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the outcome,
// including whether a URL filter was applied.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *pith.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("sitemap discovery",
			"url", baseURL,
			"count", len(urls),
			"filtered", filter != nil,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}

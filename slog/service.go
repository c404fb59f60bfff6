package slog

import (
	"context"
	"iter"
	"log/slog"
	"time"

	"github.com/fwojciec/pith"
)

// Ensure LoggingContentService implements pith.ContentService.
var _ pith.ContentService = (*LoggingContentService)(nil)

// LoggingContentService wraps a ContentService with debug logging.
type LoggingContentService struct {
	next   pith.ContentService
	logger *slog.Logger
}

// NewLoggingContentService creates a new LoggingContentService.
func NewLoggingContentService(next pith.ContentService, logger *slog.Logger) *LoggingContentService {
	return &LoggingContentService{next: next, logger: logger}
}

// Extract delegates to the wrapped service and logs the outcome, including
// which extraction strategy produced the record.
func (s *LoggingContentService) Extract(ctx context.Context, url string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (content *pith.ExtractedContent, err error) {
	defer func(begin time.Time) {
		words := 0
		extractor := ""
		if content != nil {
			words = content.WordCount
			extractor = content.Metadata.ExtractedBy
		}
		s.logger.Info("extract",
			"url", url,
			"words", words,
			"extractor", extractor,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Extract(ctx, url, opts, progress)
}

// ExtractFromHTML delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) ExtractFromHTML(ctx context.Context, markup, url string, opts *pith.ExtractionOptions) (content *pith.ExtractedContent, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract from html",
			"url", url,
			"bytes", len(markup),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractFromHTML(ctx, markup, url, opts)
}

// ExtractFromDocument delegates to the wrapped service and logs the operation.
func (s *LoggingContentService) ExtractFromDocument(ctx context.Context, doc pith.Document, url string, opts *pith.ExtractionOptions) (content *pith.ExtractedContent, err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract from document",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractFromDocument(ctx, doc, url, opts)
}

// ExtractBatch delegates to the wrapped service and logs the batch outcome.
func (s *LoggingContentService) ExtractBatch(ctx context.Context, urls []string, opts *pith.ExtractionOptions, concurrency int) (results []pith.BatchResult) {
	defer func(begin time.Time) {
		failed := 0
		for _, r := range results {
			if r.Err != nil {
				failed++
			}
		}
		s.logger.Info("extract batch",
			"count", len(urls),
			"concurrency", concurrency,
			"failed", failed,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return s.next.ExtractBatch(ctx, urls, opts, concurrency)
}

// ExtractStream delegates to the wrapped service and logs stream setup. The
// chunks themselves are not logged.
func (s *LoggingContentService) ExtractStream(ctx context.Context, url string, opts *pith.ExtractionOptions) (seq iter.Seq[pith.ContentChunk], err error) {
	defer func(begin time.Time) {
		s.logger.Info("extract stream",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExtractStream(ctx, url, opts)
}

// FindDuplicates delegates to the wrapped service and logs the outcome.
func (s *LoggingContentService) FindDuplicates(ctx context.Context, urls []string, opts *pith.ExtractionOptions) (groups [][]string, err error) {
	defer func(begin time.Time) {
		s.logger.Info("find duplicates",
			"count", len(urls),
			"groups", len(groups),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindDuplicates(ctx, urls, opts)
}

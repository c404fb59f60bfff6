package mock

import (
	"context"
	"iter"

	"github.com/fwojciec/pith"
)

var _ pith.ContentService = (*ContentService)(nil)

// ContentService is a mock implementation of pith.ContentService.
type ContentService struct {
	ExtractFn             func(ctx context.Context, url string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (*pith.ExtractedContent, error)
	ExtractFromHTMLFn     func(ctx context.Context, markup, url string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, error)
	ExtractFromDocumentFn func(ctx context.Context, doc pith.Document, url string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, error)
	ExtractBatchFn        func(ctx context.Context, urls []string, opts *pith.ExtractionOptions, concurrency int) []pith.BatchResult
	ExtractStreamFn       func(ctx context.Context, url string, opts *pith.ExtractionOptions) (iter.Seq[pith.ContentChunk], error)
	FindDuplicatesFn      func(ctx context.Context, urls []string, opts *pith.ExtractionOptions) ([][]string, error)
}

func (s *ContentService) Extract(ctx context.Context, url string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (*pith.ExtractedContent, error) {
	return s.ExtractFn(ctx, url, opts, progress)
}

func (s *ContentService) ExtractFromHTML(ctx context.Context, markup, url string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, error) {
	return s.ExtractFromHTMLFn(ctx, markup, url, opts)
}

func (s *ContentService) ExtractFromDocument(ctx context.Context, doc pith.Document, url string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, error) {
	return s.ExtractFromDocumentFn(ctx, doc, url, opts)
}

func (s *ContentService) ExtractBatch(ctx context.Context, urls []string, opts *pith.ExtractionOptions, concurrency int) []pith.BatchResult {
	return s.ExtractBatchFn(ctx, urls, opts, concurrency)
}

func (s *ContentService) ExtractStream(ctx context.Context, url string, opts *pith.ExtractionOptions) (iter.Seq[pith.ContentChunk], error) {
	return s.ExtractStreamFn(ctx, url, opts)
}

func (s *ContentService) FindDuplicates(ctx context.Context, urls []string, opts *pith.ExtractionOptions) ([][]string, error) {
	return s.FindDuplicatesFn(ctx, urls, opts)
}

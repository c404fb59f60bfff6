package extract

import (
	"context"
	"fmt"
	"iter"
	"sync/atomic"

	"github.com/fwojciec/pith"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds batch extraction when the caller passes no
// explicit concurrency.
const DefaultBatchConcurrency = 10

// StreamChunkSize is the number of paragraphs per streamed chunk.
const StreamChunkSize = 5

// ExtractBatch extracts URLs in fixed-size groups of the given concurrency.
// Each group runs fully in parallel before the next begins. Results preserve
// input order and per-URL failures never abort siblings.
func (s *Service) ExtractBatch(ctx context.Context, urls []string, opts *pith.ExtractionOptions, concurrency int) []pith.BatchResult {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	results := make([]pith.BatchResult, len(urls))
	for start := 0; start < len(urls); start += concurrency {
		end := min(start+concurrency, len(urls))

		var g errgroup.Group
		for i := start; i < end; i++ {
			g.Go(func() error {
				content, err := s.Extract(ctx, urls[i], opts, nil)
				results[i] = pith.BatchResult{URL: urls[i], Content: content, Err: err}
				return nil
			})
		}
		_ = g.Wait()
	}
	return results
}

// ExtractStream performs a full extraction and yields the paragraphs in
// chunks of StreamChunkSize. The sequence is lazy, finite, and single-use:
// ranging over it a second time yields nothing.
func (s *Service) ExtractStream(ctx context.Context, rawURL string, opts *pith.ExtractionOptions) (iter.Seq[pith.ContentChunk], error) {
	content, err := s.Extract(ctx, rawURL, opts, nil)
	if err != nil {
		return nil, err
	}

	var consumed atomic.Bool
	return func(yield func(pith.ContentChunk) bool) {
		if consumed.Swap(true) {
			return
		}
		index := 0
		for start := 0; start < len(content.Paragraphs); start += StreamChunkSize {
			end := min(start+StreamChunkSize, len(content.Paragraphs))
			chunk := pith.ContentChunk{Index: index, Paragraphs: content.Paragraphs[start:end]}
			for i := range chunk.Paragraphs {
				chunk.WordCount += chunk.Paragraphs[i].WordCount()
			}
			if !yield(chunk) {
				return
			}
			index++
		}
	}, nil
}

// FindDuplicates extracts every URL and groups them by fingerprint,
// returning only groups with at least two members, in first-seen order.
// URLs that fail to extract are skipped.
func (s *Service) FindDuplicates(ctx context.Context, urls []string, opts *pith.ExtractionOptions) ([][]string, error) {
	results := s.ExtractBatch(ctx, urls, opts, DefaultBatchConcurrency)
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	groups := make(map[string][]string)
	var order []string
	for _, r := range results {
		if r.Err != nil || r.Content == nil {
			continue
		}
		fp := r.Content.Fingerprint
		if len(groups[fp]) == 0 {
			order = append(order, fp)
		}
		groups[fp] = append(groups[fp], r.URL)
	}

	var dupes [][]string
	for _, fp := range order {
		if len(groups[fp]) >= 2 {
			dupes = append(dupes, groups[fp])
		}
	}
	return dupes, nil
}

// ExtractSite discovers page URLs from the site's sitemap and extracts them
// as a batch.
func (s *Service) ExtractSite(ctx context.Context, baseURL string, opts *pith.ExtractionOptions, concurrency int) ([]pith.BatchResult, error) {
	if s.Sitemaps == nil {
		return nil, pith.Errorf(pith.EINVALID, "no sitemap service configured")
	}
	urls, err := s.Sitemaps.DiscoverURLs(ctx, baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("sitemap discovery: %w", err)
	}
	if len(urls) == 0 {
		return nil, nil
	}
	return s.ExtractBatch(ctx, urls, opts, concurrency), nil
}

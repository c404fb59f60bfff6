package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/mock"
	pithslog "github.com/fwojciec/pith/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingContentService_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs outcome with word count and extractor", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentService{
			ExtractFn: func(ctx context.Context, url string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (*pith.ExtractedContent, error) {
				return &pith.ExtractedContent{
					URL:       url,
					WordCount: 250,
					Metadata:  pith.ContentMetadata{ExtractedBy: "generic"},
				}, nil
			},
		}

		svc := pithslog.NewLoggingContentService(inner, logger)
		content, err := svc.Extract(context.Background(), "https://example.com/article", nil, nil)

		require.NoError(t, err)
		require.NotNil(t, content)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "url=https://example.com/article")
		assert.Contains(t, output, "words=250")
		assert.Contains(t, output, "extractor=generic")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ContentService{
			ExtractFn: func(ctx context.Context, url string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (*pith.ExtractedContent, error) {
				return nil, pith.Errorf(pith.EUNAVAILABLE, "HTTP 503 for %s", url)
			},
		}

		svc := pithslog.NewLoggingContentService(inner, logger)
		_, err := svc.Extract(context.Background(), "https://example.com/article", nil, nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "words=0")
		assert.Contains(t, output, "HTTP 503")
	})
}

func TestLoggingContentService_ExtractFromHTML(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ContentService{
		ExtractFromHTMLFn: func(ctx context.Context, markup, url string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, error) {
			return &pith.ExtractedContent{URL: url}, nil
		},
	}

	svc := pithslog.NewLoggingContentService(inner, logger)
	_, err := svc.ExtractFromHTML(context.Background(), "<html></html>", "https://example.com", nil)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "extract from html")
	assert.Contains(t, output, "bytes=13")
}

func TestLoggingContentService_ExtractBatch(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ContentService{
		ExtractBatchFn: func(ctx context.Context, urls []string, opts *pith.ExtractionOptions, concurrency int) []pith.BatchResult {
			return []pith.BatchResult{
				{URL: urls[0], Content: &pith.ExtractedContent{}},
				{URL: urls[1], Err: pith.Errorf(pith.ENOTFOUND, "HTTP 404 for %s", urls[1])},
			}
		},
	}

	svc := pithslog.NewLoggingContentService(inner, logger)
	results := svc.ExtractBatch(context.Background(), []string{"https://a.example", "https://b.example"}, nil, 2)

	require.Len(t, results, 2)
	output := buf.String()
	assert.Contains(t, output, "extract batch")
	assert.Contains(t, output, "count=2")
	assert.Contains(t, output, "concurrency=2")
	assert.Contains(t, output, "failed=1")
}

func TestLoggingContentService_FindDuplicates(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ContentService{
		FindDuplicatesFn: func(ctx context.Context, urls []string, opts *pith.ExtractionOptions) ([][]string, error) {
			return [][]string{{urls[0], urls[2]}}, nil
		},
	}

	svc := pithslog.NewLoggingContentService(inner, logger)
	groups, err := svc.FindDuplicates(context.Background(), []string{"https://a.example", "https://b.example", "https://c.example"}, nil)

	require.NoError(t, err)
	require.Len(t, groups, 1)
	output := buf.String()
	assert.Contains(t, output, "find duplicates")
	assert.Contains(t, output, "count=3")
	assert.Contains(t, output, "groups=1")
}

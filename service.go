package pith

import (
	"context"
	"iter"
)

// Stage labels the phase an extraction has reached when a progress event
// fires.
type Stage string

// Extraction stages in pipeline order.
const (
	StageFetching   Stage = "fetching"
	StageParsing    Stage = "parsing"
	StageCleaning   Stage = "cleaning"
	StageExtracting Stage = "extracting"
	StageAnalyzing  Stage = "analyzing"
	StageComplete   Stage = "complete"
)

// ProgressEvent reports extraction progress at fixed milestones.
type ProgressEvent struct {
	Stage   Stage
	Percent int
	URL     string
}

// ProgressFunc receives progress events. A nil ProgressFunc is a no-op.
type ProgressFunc func(ProgressEvent)

// BatchResult is the outcome of one URL within a batch extraction.
// Failures are independent: Err set for one URL never aborts its siblings.
type BatchResult struct {
	URL     string
	Content *ExtractedContent
	Err     error
}

// ContentChunk is one fixed-size slice of a streamed extraction result.
// WordCount covers only the paragraphs in this chunk.
type ContentChunk struct {
	Index      int         `json:"index"`
	Paragraphs []Paragraph `json:"paragraphs"`
	WordCount  int         `json:"wordCount"`
}

// ContentService extracts main content from web pages.
type ContentService interface {
	// Extract fetches the URL and extracts its main content. The progress
	// callback, if provided, receives events at fixed milestones.
	//
	// Returns ERATELIMIT when the URL's origin is over quota, ETIMEOUT
	// when the fetch exceeds its deadline, and EUNAVAILABLE for transport
	// failures.
	Extract(ctx context.Context, url string, opts *ExtractionOptions, progress ProgressFunc) (*ExtractedContent, error)

	// ExtractFromHTML extracts from markup the caller already has,
	// skipping fetch, rate limiting, and caching.
	ExtractFromHTML(ctx context.Context, markup, url string, opts *ExtractionOptions) (*ExtractedContent, error)

	// ExtractFromDocument extracts from an already-parsed document,
	// skipping fetch, rate limiting, and caching.
	ExtractFromDocument(ctx context.Context, doc Document, url string, opts *ExtractionOptions) (*ExtractedContent, error)

	// ExtractBatch extracts URLs in fixed-size groups of the given
	// concurrency, each group fully in parallel before the next begins.
	// Results preserve input order.
	ExtractBatch(ctx context.Context, urls []string, opts *ExtractionOptions, concurrency int) []BatchResult

	// ExtractStream performs a full extraction and yields the paragraphs
	// in fixed-size chunks as a lazy, finite, non-restartable sequence.
	ExtractStream(ctx context.Context, url string, opts *ExtractionOptions) (iter.Seq[ContentChunk], error)

	// FindDuplicates extracts every URL and groups them by fingerprint,
	// returning only groups with at least two members.
	FindDuplicates(ctx context.Context, urls []string, opts *ExtractionOptions) ([][]string, error)
}

// ExportFormat identifies a serialization format for content records.
type ExportFormat string

// Supported export formats.
const (
	FormatJSON     ExportFormat = "json"
	FormatMarkdown ExportFormat = "markdown"
	FormatHTML     ExportFormat = "html"
)

// Exporter serializes content records for interchange. Re-importing
// exported JSON yields a record equal to the original.
type Exporter interface {
	Export(content *ExtractedContent, format ExportFormat) ([]byte, error)
	Import(data []byte) (*ExtractedContent, error)
}

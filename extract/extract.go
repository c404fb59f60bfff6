// Package extract provides the content extraction orchestrator.
// It composes fetching, parsing, cleaning, detection, adapter dispatch,
// and plugin hooks into a resilient service with result caching,
// in-flight request deduplication, and per-origin rate limiting.
package extract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/pith"
	"golang.org/x/sync/singleflight"
)

// fingerprintPrefixBytes bounds how much clean text feeds the fingerprint.
const fingerprintPrefixBytes = 1000

var _ pith.ContentService = (*Service)(nil)

// Service orchestrates content extraction. Parser and Detector are required
// for the generic pipeline; Fetcher is required for URL extraction. Every
// other dependency is optional: a nil field disables the capability it
// provides.
type Service struct {
	Parser   pith.Parser
	Fetcher  pith.Fetcher
	Cleaner  pith.Cleaner
	Detector pith.Detector
	Adapters *pith.Registry

	// Cache stores results per ExtractionOptions.Cache; Store is the
	// secondary unbounded store consulted when CacheOptions.Persistent
	// is set.
	Cache pith.ContentCache
	Store pith.ContentStore

	// Limiter admits requests per URL origin before any network or cache
	// access.
	Limiter pith.RateLimiter

	// Fallback re-extracts pages for which the generic pipeline found no
	// paragraphs.
	Fallback pith.Extractor

	// Duplicates remembers fingerprints across extractions and flags
	// probable repeats on Metadata.LikelyDuplicate.
	Duplicates pith.DuplicateIndex

	// Sitemaps enables ExtractSite.
	Sitemaps pith.SitemapService

	// Exporter backs Export and Import.
	Exporter pith.Exporter

	// Optional analyzers, each gated by the matching extraction option.
	Language    pith.LanguageDetector
	Sentiment   pith.SentimentAnalyzer
	Entities    pith.EntityRecognizer
	Readability pith.ReadabilityScorer
	Summarizer  pith.Summarizer

	group singleflight.Group

	mu      sync.Mutex
	plugins []pith.Plugin
}

// RegisterPlugin attaches a plugin to the service. Hooks run in registration
// order. If the plugin implements pith.PluginInitializer, Init is called
// once here; an Init failure rejects the registration with EPLUGIN.
func (s *Service) RegisterPlugin(p pith.Plugin) error {
	if init, ok := p.(pith.PluginInitializer); ok {
		if err := init.Init(); err != nil {
			return pith.Errorf(pith.EPLUGIN, "plugin %q: %v", p.Name(), err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.plugins = append(s.plugins, p)
	return nil
}

// Extract fetches the URL and extracts its main content.
//
// The rate limiter is consulted first, before the cache or the network.
// Concurrent calls with an identical cache key share one in-flight
// extraction.
func (s *Service) Extract(ctx context.Context, rawURL string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (*pith.ExtractedContent, error) {
	if opts == nil {
		opts = pith.DefaultExtractionOptions()
	}
	key := CacheKey(rawURL, opts)

	if s.Limiter != nil {
		org := origin(rawURL)
		if !s.Limiter.Allow(org) {
			retry := s.Limiter.RetryAfter(org).Round(time.Second)
			return nil, pith.Errorf(pith.ERATELIMIT, "rate limit exceeded for %s: retry in %s", org, retry)
		}
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		return s.extractURL(ctx, rawURL, key, opts, progress)
	})
	if err != nil {
		return nil, err
	}
	return v.(*pith.ExtractedContent), nil
}

// ExtractFromHTML extracts from markup the caller already has, skipping
// fetch, rate limiting, and caching.
func (s *Service) ExtractFromHTML(ctx context.Context, markup, rawURL string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, error) {
	if opts == nil {
		opts = pith.DefaultExtractionOptions()
	}
	if s.Parser == nil {
		return nil, pith.Errorf(pith.EINVALID, "no parser configured")
	}
	doc, err := s.Parser.Parse(markup)
	if err != nil {
		return nil, err
	}
	return s.extractDocument(ctx, doc, rawURL, opts, nil)
}

// ExtractFromDocument extracts from an already-parsed document, skipping
// fetch, rate limiting, and caching.
func (s *Service) ExtractFromDocument(ctx context.Context, doc pith.Document, rawURL string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, error) {
	if opts == nil {
		opts = pith.DefaultExtractionOptions()
	}
	return s.extractDocument(ctx, doc, rawURL, opts, nil)
}

// Validate checks a content record against the minimum quality rules.
func (s *Service) Validate(content *pith.ExtractedContent) pith.ValidationResult {
	return pith.ValidateContent(content)
}

// Export serializes a content record via the configured exporter.
func (s *Service) Export(content *pith.ExtractedContent, format pith.ExportFormat) ([]byte, error) {
	if s.Exporter == nil {
		return nil, pith.Errorf(pith.EINVALID, "no exporter configured")
	}
	return s.Exporter.Export(content, format)
}

// Import deserializes a previously exported JSON record.
func (s *Service) Import(data []byte) (*pith.ExtractedContent, error) {
	if s.Exporter == nil {
		return nil, pith.Errorf(pith.EINVALID, "no exporter configured")
	}
	return s.Exporter.Import(data)
}

// extractURL runs the network path for one deduplicated request: cache
// lookup, fetch, parse, document extraction, cache write.
func (s *Service) extractURL(ctx context.Context, rawURL, key string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (*pith.ExtractedContent, error) {
	if content, ok := s.cached(ctx, key, opts); ok {
		emit(progress, pith.StageComplete, 100, rawURL)
		return content, nil
	}

	emit(progress, pith.StageFetching, 10, rawURL)
	markup, err := s.fetch(ctx, rawURL, opts.Timeout)
	if err != nil {
		return nil, err
	}

	emit(progress, pith.StageParsing, 30, rawURL)
	if s.Parser == nil {
		return nil, pith.Errorf(pith.EINVALID, "no parser configured")
	}
	doc, err := s.Parser.Parse(markup)
	if err != nil {
		return nil, err
	}

	content, err := s.extractDocument(ctx, doc, rawURL, opts, progress)
	if err != nil {
		return nil, err
	}

	s.storeResult(ctx, key, opts, content)
	emit(progress, pith.StageComplete, 100, rawURL)
	return content, nil
}

// extractDocument runs the document pipeline: before-hooks, adapter or
// generic extraction, default filling, analyses, after-hooks, fingerprint.
func (s *Service) extractDocument(ctx context.Context, doc pith.Document, rawURL string, opts *pith.ExtractionOptions, progress pith.ProgressFunc) (*pith.ExtractedContent, error) {
	doc, err := s.runBeforeHooks(ctx, doc, opts)
	if err != nil {
		return nil, err
	}

	// Metadata and JSON-LD are read before cleaning: the attribute pass
	// strips meta content attributes and the category pass removes script
	// elements.
	var meta pith.ContentMetadata
	if opts.IncludeMetadata && s.Detector != nil {
		meta = s.Detector.Metadata(doc)
	}
	var structured []map[string]any
	if opts.ExtractStructuredData && s.Detector != nil {
		structured = s.Detector.StructuredData(doc)
	}

	adapter, err := s.resolveAdapter(rawURL, opts)
	if err != nil {
		return nil, err
	}

	var content *pith.ExtractedContent
	structDoc := doc
	if adapter != nil {
		emit(progress, pith.StageExtracting, 70, rawURL)
		content, err = adapter.Extract(doc, rawURL)
		if err != nil {
			return nil, err
		}
		if content == nil {
			content = &pith.ExtractedContent{}
		}
		if len(content.Paragraphs) == 0 {
			if pd, ok := adapter.(pith.AdapterParagraphDetector); ok {
				paragraphs, err := pd.DetectParagraphs(doc)
				if err != nil {
					return nil, err
				}
				content.Paragraphs = paragraphs
			}
		}
	} else {
		emit(progress, pith.StageCleaning, 50, rawURL)
		cleaned := doc
		if s.Cleaner != nil {
			cleaned, err = s.Cleaner.Clean(doc, opts.Cleaning)
			if err != nil {
				return nil, err
			}
		}

		emit(progress, pith.StageExtracting, 70, rawURL)
		if s.Detector == nil {
			return nil, pith.Errorf(pith.EINVALID, "no detector configured")
		}
		paragraphs, err := s.Detector.Detect(cleaned, opts)
		if err != nil {
			return nil, err
		}

		title := ""
		if len(paragraphs) == 0 && s.Fallback != nil {
			paragraphs, title = s.fallbackDetect(doc, opts)
		}

		content = &pith.ExtractedContent{Title: title, Paragraphs: paragraphs}
		structDoc = cleaned
	}

	// Fill whatever the producer omitted with safe defaults.
	content.URL = rawURL
	if content.Title == "" && s.Detector != nil {
		content.Title = s.Detector.Title(doc)
	}
	if content.Title == "" {
		content.Title = doc.Title()
	}
	if content.Paragraphs == nil {
		content.Paragraphs = []pith.Paragraph{}
	}
	content.Paragraphs = dropShortParagraphs(content.Paragraphs, opts.MinParagraphLength)

	if err := s.fillStructure(content, adapter, structDoc, opts); err != nil {
		return nil, err
	}

	if opts.IncludeMetadata {
		fillMetadata(&content.Metadata, meta)
	} else {
		content.Metadata = pith.ContentMetadata{ExtractedBy: content.Metadata.ExtractedBy}
	}
	if content.Metadata.ExtractedBy == "" {
		if adapter != nil {
			content.Metadata.ExtractedBy = adapter.Name()
		} else {
			content.Metadata.ExtractedBy = "generic"
		}
	}
	if opts.ExtractStructuredData && len(content.StructuredData) == 0 {
		content.StructuredData = structured
	}

	emit(progress, pith.StageAnalyzing, 90, rawURL)
	content.Finalize()

	if content.Language == "" {
		content.Language = htmlLang(doc)
	}
	if content.Language == "" && s.Language != nil && content.CleanText != "" {
		if lang, ok := s.Language.DetectLanguage(content.CleanText); ok {
			content.Language = lang
		}
	}

	if err := s.analyze(ctx, content, opts); err != nil {
		return nil, err
	}

	content, err = s.runAfterHooks(ctx, content)
	if err != nil {
		return nil, err
	}
	content.Finalize()

	if opts.DetectSections && len(content.Sections) == 0 {
		content.Sections = pith.BuildSections(content.Paragraphs)
	}

	content.Fingerprint = Fingerprint(content.Title, content.CleanText)
	content.ExtractedAt = time.Now()

	if s.Duplicates != nil {
		seen := s.Duplicates.Seen(content.Fingerprint)
		s.Duplicates.Record(content.Fingerprint)
		if seen {
			content.Metadata.LikelyDuplicate = true
		}
	}

	return content, nil
}

// resolveAdapter picks the adapter for the URL, or the one named by the
// options override. An unknown override name is EINVALID.
func (s *Service) resolveAdapter(rawURL string, opts *pith.ExtractionOptions) (pith.SiteAdapter, error) {
	if opts.Adapter != "" {
		if s.Adapters == nil {
			return nil, pith.Errorf(pith.EINVALID, "unknown adapter %q", opts.Adapter)
		}
		adapter, ok := s.Adapters.Get(opts.Adapter)
		if !ok {
			return nil, pith.Errorf(pith.EINVALID, "unknown adapter %q", opts.Adapter)
		}
		return adapter, nil
	}
	if s.Adapters == nil {
		return nil, nil
	}
	adapter, ok := s.Adapters.Dispatch(rawURL)
	if !ok {
		return nil, nil
	}
	return adapter, nil
}

// fillStructure populates tables, lists, and embeds per the options,
// preferring adapter capabilities over the generic detector.
func (s *Service) fillStructure(content *pith.ExtractedContent, adapter pith.SiteAdapter, doc pith.Document, opts *pith.ExtractionOptions) error {
	if opts.ExtractTables && len(content.Tables) == 0 {
		if td, ok := adapter.(pith.AdapterTableDetector); ok {
			tables, err := td.DetectTables(doc)
			if err != nil {
				return err
			}
			content.Tables = tables
		} else if s.Detector != nil {
			content.Tables = s.Detector.Tables(doc)
		}
	}
	if opts.ExtractLists && len(content.Lists) == 0 {
		if ld, ok := adapter.(pith.AdapterListDetector); ok {
			lists, err := ld.DetectLists(doc)
			if err != nil {
				return err
			}
			content.Lists = lists
		} else if s.Detector != nil {
			content.Lists = s.Detector.Lists(doc)
		}
	}
	if opts.ExtractEmbeds && len(content.Embeds) == 0 {
		if ed, ok := adapter.(pith.AdapterEmbedDetector); ok {
			embeds, err := ed.DetectEmbeds(doc)
			if err != nil {
				return err
			}
			content.Embeds = embeds
		} else if s.Detector != nil {
			content.Embeds = s.Detector.Embeds(doc)
		}
	}
	return nil
}

// analyze runs the optional per-paragraph and whole-content analyses.
// Each analysis runs only when its option is set and an analyzer is wired.
func (s *Service) analyze(ctx context.Context, content *pith.ExtractedContent, opts *pith.ExtractionOptions) error {
	if opts.CalculateReadability && s.Readability != nil {
		for i := range content.Paragraphs {
			content.Paragraphs[i].Readability = s.Readability.Readability(content.Paragraphs[i].Text)
		}
	}
	if opts.AnalyzeSentiment && s.Sentiment != nil {
		for i := range content.Paragraphs {
			score, err := s.Sentiment.Sentiment(ctx, content.Paragraphs[i].Text)
			if err != nil {
				return fmt.Errorf("sentiment: %w", err)
			}
			content.Paragraphs[i].Sentiment = score
		}
	}
	if opts.ExtractEntities && s.Entities != nil {
		for i := range content.Paragraphs {
			entities, err := s.Entities.Entities(ctx, content.Paragraphs[i].Text)
			if err != nil {
				return fmt.Errorf("entities: %w", err)
			}
			content.Paragraphs[i].Entities = entities
		}
	}
	if opts.GenerateSummary && s.Summarizer != nil {
		summary, err := s.Summarizer.Summarize(ctx, content.Title, content.CleanText)
		if err != nil {
			return fmt.Errorf("summarize: %w", err)
		}
		content.Summary = summary
	}
	return nil
}

// fallbackDetect re-extracts the page through the fallback engine and runs
// the detector over the engine's cleaned content HTML. Fallback failures
// are swallowed: an empty result is not an error.
func (s *Service) fallbackDetect(doc pith.Document, opts *pith.ExtractionOptions) ([]pith.Paragraph, string) {
	markup, err := doc.HTML()
	if err != nil {
		return nil, ""
	}
	res, err := s.Fallback.Extract(markup)
	if err != nil || res == nil {
		return nil, ""
	}
	if s.Parser == nil || s.Detector == nil {
		return nil, res.Title
	}
	contentDoc, err := s.Parser.Parse(res.ContentHTML)
	if err != nil {
		return nil, res.Title
	}
	paragraphs, err := s.Detector.Detect(contentDoc, opts)
	if err != nil {
		return nil, res.Title
	}
	return paragraphs, res.Title
}

func (s *Service) runBeforeHooks(ctx context.Context, doc pith.Document, opts *pith.ExtractionOptions) (pith.Document, error) {
	for _, p := range s.pluginList() {
		hook, ok := p.(pith.DocumentHook)
		if !ok {
			continue
		}
		next, err := hook.BeforeExtract(ctx, doc, opts)
		if err != nil {
			return nil, pith.Errorf(pith.EPLUGIN, "plugin %q: %v", p.Name(), err)
		}
		if next != nil {
			doc = next
		}
	}
	return doc, nil
}

func (s *Service) runAfterHooks(ctx context.Context, content *pith.ExtractedContent) (*pith.ExtractedContent, error) {
	for _, p := range s.pluginList() {
		hook, ok := p.(pith.ContentHook)
		if !ok {
			continue
		}
		next, err := hook.AfterExtract(ctx, content)
		if err != nil {
			return nil, pith.Errorf(pith.EPLUGIN, "plugin %q: %v", p.Name(), err)
		}
		if next != nil {
			content = next
		}
	}
	return content, nil
}

func (s *Service) pluginList() []pith.Plugin {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.plugins)
}

// cached returns a fresh cache hit, consulting the persistent store on
// primary miss when enabled. Store hits warm the primary cache.
func (s *Service) cached(ctx context.Context, key string, opts *pith.ExtractionOptions) (*pith.ExtractedContent, bool) {
	if s.Cache == nil || !opts.Cache.Enabled {
		return nil, false
	}
	ttl := opts.Cache.TTL
	if ttl <= 0 {
		ttl = pith.DefaultCacheTTL
	}
	if entry, err := s.Cache.Get(ctx, key); err == nil && time.Since(entry.Timestamp) < ttl {
		return entry.Content, true
	}
	if opts.Cache.Persistent && s.Store != nil {
		if content, err := s.Store.FindContentByKey(ctx, key); err == nil {
			_ = s.Cache.Set(ctx, key, &pith.CacheEntry{Content: content, Timestamp: time.Now()})
			return content, true
		}
	}
	return nil, false
}

// storeResult writes a successful extraction to the cache and, when
// persistence is enabled, through to the store. Write failures never fail
// the extraction.
func (s *Service) storeResult(ctx context.Context, key string, opts *pith.ExtractionOptions, content *pith.ExtractedContent) {
	if s.Cache == nil || !opts.Cache.Enabled {
		return
	}
	_ = s.Cache.Set(ctx, key, &pith.CacheEntry{Content: content, Timestamp: time.Now()})
	if opts.Cache.Persistent && s.Store != nil {
		_ = s.Store.SaveContent(ctx, key, content)
	}
}

// fetch retrieves markup with a bounded timeout. A deadline overrun maps to
// ETIMEOUT; other fetch errors pass through with their own codes.
func (s *Service) fetch(ctx context.Context, rawURL string, timeout time.Duration) (string, error) {
	if s.Fetcher == nil {
		return "", pith.Errorf(pith.EINVALID, "no fetcher configured")
	}
	if timeout <= 0 {
		timeout = pith.DefaultFetchTimeout
	}
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	markup, err := s.Fetcher.Fetch(fetchCtx, rawURL)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return "", pith.Errorf(pith.ETIMEOUT, "fetch %s: timed out after %s", rawURL, timeout)
		}
		return "", err
	}
	return markup, nil
}

// dropShortParagraphs filters out paragraphs whose trimmed text is shorter
// than minLen and reindexes the survivors. A non-positive minLen keeps
// everything.
func dropShortParagraphs(paragraphs []pith.Paragraph, minLen int) []pith.Paragraph {
	if minLen <= 0 {
		return paragraphs
	}
	kept := paragraphs[:0]
	for _, p := range paragraphs {
		if len(strings.TrimSpace(p.Text)) >= minLen {
			kept = append(kept, p)
		}
	}
	return pith.ReindexParagraphs(kept)
}

// fillMetadata copies src fields into empty dst fields, so adapter-provided
// metadata wins over the generic reading.
func fillMetadata(dst *pith.ContentMetadata, src pith.ContentMetadata) {
	if dst.Author == "" {
		dst.Author = src.Author
	}
	if dst.Description == "" {
		dst.Description = src.Description
	}
	if dst.Published == "" {
		dst.Published = src.Published
	}
	if dst.Modified == "" {
		dst.Modified = src.Modified
	}
	if dst.SiteName == "" {
		dst.SiteName = src.SiteName
	}
	if dst.CanonicalURL == "" {
		dst.CanonicalURL = src.CanonicalURL
	}
	if dst.ImageURL == "" {
		dst.ImageURL = src.ImageURL
	}
	if len(dst.Keywords) == 0 {
		dst.Keywords = src.Keywords
	}
	if dst.Language == "" {
		dst.Language = src.Language
	}
}

func htmlLang(doc pith.Document) string {
	nodes, err := doc.Find("html")
	if err != nil || len(nodes) == 0 {
		return ""
	}
	lang, _ := nodes[0].Attr("lang")
	return lang
}

func emit(progress pith.ProgressFunc, stage pith.Stage, percent int, url string) {
	if progress == nil {
		return
	}
	progress(pith.ProgressEvent{Stage: stage, Percent: percent, URL: url})
}

// CacheKey derives the cache key for a URL and options pair.
func CacheKey(rawURL string, opts *pith.ExtractionOptions) string {
	data, _ := json.Marshal(opts)
	return fmt.Sprintf("%x", xxhash.Sum64String(rawURL+"|"+string(data)))
}

// Fingerprint digests a title and a bounded prefix of clean text. Records
// with equal fingerprints are treated as the same underlying article.
func Fingerprint(title, cleanText string) string {
	prefix := cleanText
	if len(prefix) > fingerprintPrefixBytes {
		prefix = prefix[:fingerprintPrefixBytes]
	}
	return fmt.Sprintf("%x", xxhash.Sum64String(title+"\n"+prefix))
}

// origin reduces a URL to its rate-limit key, scheme://host. Unparseable
// URLs key by their raw string.
func origin(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Scheme + "://" + u.Host
}

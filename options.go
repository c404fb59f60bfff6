package pith

import "time"

// DefaultFetchTimeout bounds a single fetch when options carry no timeout.
const DefaultFetchTimeout = 30 * time.Second

// ExtractionOptions controls which analyses run during extraction.
// Every toggle is independent. The zero value is valid; use
// DefaultExtractionOptions for the standard configuration.
type ExtractionOptions struct {
	// Adapter forces dispatch to the named site adapter, bypassing
	// pattern matching. Empty means match by URL.
	Adapter string `json:"adapter,omitempty"`

	Cleaning CleaningOptions `json:"cleaning"`

	// MinParagraphLength drops detected paragraphs whose trimmed text is
	// shorter than this many characters. Zero applies no extra filter.
	MinParagraphLength int `json:"minParagraphLength"`

	IncludeMetadata       bool `json:"includeMetadata"`
	DetectSections        bool `json:"detectSections"`
	ScoreParagraphs       bool `json:"scoreParagraphs"`
	ExtractTables         bool `json:"extractTables"`
	ExtractLists          bool `json:"extractLists"`
	ExtractEmbeds         bool `json:"extractEmbeds"`
	ExtractStructuredData bool `json:"extractStructuredData"`
	ExtractEntities       bool `json:"extractEntities"`
	AnalyzeSentiment      bool `json:"analyzeSentiment"`
	CalculateReadability  bool `json:"calculateReadability"`
	GenerateSummary       bool `json:"generateSummary"`

	// Timeout bounds the network fetch. Zero means DefaultFetchTimeout.
	Timeout time.Duration `json:"timeout"`

	Cache CacheOptions `json:"cache"`
}

// DefaultExtractionOptions returns the standard extraction configuration:
// metadata, sections, and paragraph scoring on, optional structure and
// language analyses off.
func DefaultExtractionOptions() *ExtractionOptions {
	return &ExtractionOptions{
		Cleaning:        DefaultCleaningOptions(),
		IncludeMetadata: true,
		DetectSections:  true,
		ScoreParagraphs: true,
		Timeout:         DefaultFetchTimeout,
		Cache:           DefaultCacheOptions(),
	}
}

// CleaningOptions is a flat set of boilerplate-removal toggles. Category
// removals run before attribute and class cleanup, which runs before empty
// and hidden element pruning, which runs before aggressive-mode pruning.
type CleaningOptions struct {
	RemoveAds           bool `json:"removeAds"`
	RemoveNavigation    bool `json:"removeNavigation"`
	RemoveComments      bool `json:"removeComments"`
	RemoveRelated       bool `json:"removeRelated"`
	RemoveFooters       bool `json:"removeFooters"`
	RemoveSidebars      bool `json:"removeSidebars"`
	RemovePopups        bool `json:"removePopups"`
	RemoveCookieBanners bool `json:"removeCookieBanners"`
	RemoveNewsletters   bool `json:"removeNewsletters"`

	PreserveImages  bool `json:"preserveImages"`
	PreserveVideos  bool `json:"preserveVideos"`
	PreserveIframes bool `json:"preserveIframes"`

	// Aggressive additionally drops short divs, stray anchors, and
	// promo-pattern elements. Off by default.
	Aggressive bool `json:"aggressive"`

	// RemoveSelectors are additional CSS selectors to remove; invalid
	// selectors are logged and skipped, never fatal.
	RemoveSelectors []string `json:"removeSelectors,omitempty"`

	// KeepSelectors protect matching elements from every removal pass.
	KeepSelectors []string `json:"keepSelectors,omitempty"`
}

// DefaultCleaningOptions returns the standard cleaning configuration:
// all category removals on, images preserved, videos and iframes dropped.
func DefaultCleaningOptions() CleaningOptions {
	return CleaningOptions{
		RemoveAds:           true,
		RemoveNavigation:    true,
		RemoveComments:      true,
		RemoveRelated:       true,
		RemoveFooters:       true,
		RemoveSidebars:      true,
		RemovePopups:        true,
		RemoveCookieBanners: true,
		RemoveNewsletters:   true,
		PreserveImages:      true,
	}
}

// CacheStrategy selects the eviction policy of the result cache.
type CacheStrategy string

// Recognized cache strategies. Only LRU is implemented; LFU and FIFO are
// accepted for compatibility and behave as LRU.
const (
	CacheLRU  CacheStrategy = "lru"
	CacheLFU  CacheStrategy = "lfu"
	CacheFIFO CacheStrategy = "fifo"
)

// Default cache policy.
const (
	DefaultCacheTTL        = 15 * time.Minute
	DefaultCacheMaxSizeMB  = 50
	DefaultCacheMaxEntries = 100
)

// CacheOptions configures the orchestrator's result cache. The entry-count
// bound (DefaultCacheMaxEntries) and the size bound (MaxSizeMB) apply
// jointly: whichever is exceeded first triggers eviction.
type CacheOptions struct {
	Enabled   bool          `json:"enabled"`
	TTL       time.Duration `json:"ttl"`
	MaxSizeMB int           `json:"maxSizeMb"`
	Strategy  CacheStrategy `json:"strategy"`

	// Persistent adds a secondary unbounded store consulted on
	// primary-cache miss and written through on success.
	Persistent bool `json:"persistent"`
}

// DefaultCacheOptions returns the standard cache configuration.
func DefaultCacheOptions() CacheOptions {
	return CacheOptions{
		Enabled:   true,
		TTL:       DefaultCacheTTL,
		MaxSizeMB: DefaultCacheMaxSizeMB,
		Strategy:  CacheLRU,
	}
}

package pith

import (
	"regexp"
	"sync"
)

// SiteAdapter is a named, pattern-matched, priority-ranked strategy that
// knows how to extract content from one specific site's markup conventions.
type SiteAdapter interface {
	// Name uniquely identifies the adapter within a registry.
	Name() string

	// Patterns returns the regular expressions, as source strings, that
	// select the URLs this adapter handles.
	Patterns() []string

	// Priority ranks the adapter when several match the same URL.
	// Higher wins.
	Priority() int

	// Extract returns a partial content record: any subset of fields may
	// be set, and the orchestrator fills the rest with safe defaults.
	Extract(doc Document, url string) (*ExtractedContent, error)
}

// AdapterParagraphDetector is an optional adapter capability that overrides
// generic paragraph detection for the adapter's sites.
type AdapterParagraphDetector interface {
	DetectParagraphs(doc Document) ([]Paragraph, error)
}

// AdapterTableDetector is an optional adapter capability for site-specific
// table extraction.
type AdapterTableDetector interface {
	DetectTables(doc Document) ([]Table, error)
}

// AdapterListDetector is an optional adapter capability for site-specific
// list extraction.
type AdapterListDetector interface {
	DetectLists(doc Document) ([]List, error)
}

// AdapterEmbedDetector is an optional adapter capability for site-specific
// embed extraction.
type AdapterEmbedDetector interface {
	DetectEmbeds(doc Document) ([]Embed, error)
}

// registeredAdapter pairs an adapter with its compiled URL patterns.
type registeredAdapter struct {
	adapter  SiteAdapter
	patterns []*regexp.Regexp
}

// Registry is an ordered catalogue of site adapters with pattern-matched
// dispatch. A Registry is an explicit value owned by whoever constructs the
// extraction service; there is no ambient global instance. It is safe for
// concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []registeredAdapter
	byName  map[string]int
}

// NewRegistry creates an empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]int)}
}

// Register adds an adapter, compiling its URL patterns. Registering a name
// already present replaces that adapter's definition in place, keeping its
// original position. Returns EINVALID if any pattern does not compile.
func (r *Registry) Register(adapter SiteAdapter) error {
	patterns := adapter.Patterns()
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return Errorf(EINVALID, "adapter %q: invalid pattern %q: %v", adapter.Name(), pattern, err)
		}
		compiled = append(compiled, re)
	}

	entry := registeredAdapter{adapter: adapter, patterns: compiled}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i, ok := r.byName[adapter.Name()]; ok {
		r.entries[i] = entry
		return nil
	}
	r.byName[adapter.Name()] = len(r.entries)
	r.entries = append(r.entries, entry)
	return nil
}

// Unregister removes the named adapter. Returns false if no adapter with
// that name is registered.
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byName[name]
	if !ok {
		return false
	}
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.byName, name)
	for j := i; j < len(r.entries); j++ {
		r.byName[r.entries[j].adapter.Name()] = j
	}
	return true
}

// Get returns the named adapter.
func (r *Registry) Get(name string) (SiteAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.byName[name]
	if !ok {
		return nil, false
	}
	return r.entries[i].adapter, true
}

// Dispatch returns the adapter for the URL: among adapters whose patterns
// match, the one with the highest priority wins, with equal priorities
// resolved by registration order.
func (r *Registry) Dispatch(url string) (SiteAdapter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var best SiteAdapter
	bestPriority := 0
	for _, entry := range r.entries {
		if !matchesAny(entry.patterns, url) {
			continue
		}
		if best == nil || entry.adapter.Priority() > bestPriority {
			best = entry.adapter
			bestPriority = entry.adapter.Priority()
		}
	}
	return best, best != nil
}

// List returns the registered adapters in registration order.
func (r *Registry) List() []SiteAdapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapters := make([]SiteAdapter, 0, len(r.entries))
	for _, entry := range r.entries {
		adapters = append(adapters, entry.adapter)
	}
	return adapters
}

func matchesAny(patterns []*regexp.Regexp, url string) bool {
	for _, re := range patterns {
		if re.MatchString(url) {
			return true
		}
	}
	return false
}

package pith

import "context"

// ContentWriter persists extracted content outside the cache, for example
// as files on disk.
type ContentWriter interface {
	WriteContent(ctx context.Context, content *ExtractedContent) error
}

// SiteStore persists the results of a site-wide extraction with atomic
// semantics. Save writes to a staging location; Commit makes the staged
// results permanent; Abort discards pending changes.
type SiteStore interface {
	Save(ctx context.Context, content *ExtractedContent) error
	Commit() error
	Abort() error
}

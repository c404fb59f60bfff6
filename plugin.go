package pith

import "context"

// Plugin is an extension point invoked around every extraction. Plugins are
// first-class extension code: a failure inside a hook aborts the current
// extraction and surfaces as an EPLUGIN error attributed to the plugin by
// name.
type Plugin interface {
	Name() string
	Version() string
}

// PluginInitializer is an optional plugin capability, called once when the
// plugin is attached to a service.
type PluginInitializer interface {
	Init() error
}

// DocumentHook is an optional plugin capability, called before extraction
// with the parsed document. The hook may mutate the document in place or
// return a replacement; returning nil keeps the current document.
type DocumentHook interface {
	BeforeExtract(ctx context.Context, doc Document, opts *ExtractionOptions) (Document, error)
}

// ContentHook is an optional plugin capability, called after extraction
// with the content record. The hook may mutate the record in place or
// return a replacement; returning nil keeps the current record.
type ContentHook interface {
	AfterExtract(ctx context.Context, content *ExtractedContent) (*ExtractedContent, error)
}

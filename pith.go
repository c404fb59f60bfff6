// Package pith extracts the main content of arbitrary web pages: title,
// body paragraphs, structural metadata, and a quality signal, with
// boilerplate (navigation, ads, comments, footers) suppressed without
// site-specific templates. The extraction service layers result caching,
// in-flight request deduplication, and per-origin rate limiting on top of
// the document-analysis pipeline.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, redis/) or their
// domain role (e.g., clean/, detect/, extract/).
package pith

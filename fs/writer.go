// Package fs provides file-based persistence for extracted content.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/pith"
)

// URLToPath converts a content URL to a relative file path with the given
// extension.
// Example: https://example.com/news/article → news/article.md
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", pith.Errorf(pith.EINVALID, "invalid URL: %v", err)
	}

	path := u.Path

	// Root or trailing slash → index file
	if path == "" || path == "/" {
		return "index." + ext, nil
	}

	path = strings.TrimPrefix(path, "/")

	if strings.HasSuffix(path, "/") {
		path += "index." + ext
	} else {
		path += "." + ext
	}

	if !filepath.IsLocal(path) {
		return "", pith.Errorf(pith.EINVALID, "path traversal in URL %q", rawURL)
	}

	return path, nil
}

// formatExt maps an export format to its file extension.
func formatExt(format pith.ExportFormat) string {
	switch format {
	case pith.FormatMarkdown:
		return "md"
	case pith.FormatHTML:
		return "html"
	default:
		return string(format)
	}
}

// Ensure Writer implements pith.ContentWriter at compile time.
var _ pith.ContentWriter = (*Writer)(nil)

// Writer writes content records as files to a directory, one file per URL,
// mirroring the URL path structure.
type Writer struct {
	baseDir  string
	exporter pith.Exporter
	format   pith.ExportFormat
}

// NewWriter creates a new Writer that writes to the given base directory in
// the given format.
func NewWriter(baseDir string, exporter pith.Exporter, format pith.ExportFormat) *Writer {
	return &Writer{baseDir: baseDir, exporter: exporter, format: format}
}

// WriteContent serializes the content and writes it to disk.
func (w *Writer) WriteContent(ctx context.Context, content *pith.ExtractedContent) error {
	if content == nil {
		return pith.Errorf(pith.EINVALID, "no content to write")
	}

	data, err := w.exporter.Export(content, w.format)
	if err != nil {
		return err
	}

	relPath, err := URLToPath(content.URL, formatExt(w.format))
	if err != nil {
		return err
	}

	fullPath := filepath.Join(w.baseDir, relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/pith"
)

// Ensure SiteStore implements pith.SiteStore at compile time.
var _ pith.SiteStore = (*SiteStore)(nil)

// SiteStore implements pith.SiteStore with atomic update semantics.
// Content is saved to a temporary directory, then moved atomically on
// Commit, so a partially extracted site never replaces a complete one.
type SiteStore struct {
	baseDir  string
	name     string
	exporter pith.Exporter
	format   pith.ExportFormat
}

// NewSiteStore creates a new SiteStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewSiteStore(baseDir, name string, exporter pith.Exporter, format pith.ExportFormat) *SiteStore {
	return &SiteStore{
		baseDir:  baseDir,
		name:     name,
		exporter: exporter,
		format:   format,
	}
}

func (s *SiteStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *SiteStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save serializes the content and writes it to the staging directory.
func (s *SiteStore) Save(ctx context.Context, content *pith.ExtractedContent) error {
	if content == nil {
		return pith.Errorf(pith.EINVALID, "no content to save")
	}

	data, err := s.exporter.Export(content, s.format)
	if err != nil {
		return err
	}

	relPath, err := URLToPath(content.URL, formatExt(s.format))
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, data, 0644)
}

// Commit atomically replaces the final directory with the staged one.
func (s *SiteStore) Commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the staging directory.
func (s *SiteStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

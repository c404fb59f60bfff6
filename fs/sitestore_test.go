package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Story: Atomic Site Storage
// The store uses a temp directory for atomic updates

func TestSiteStore_SaveWritesToTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store targeting a directory
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output", exporterStub(), pith.FormatMarkdown)

	// When I save content
	err := store.Save(context.Background(), &pith.ExtractedContent{
		URL:   "https://example.com/news/article",
		Title: "Article",
	})

	// Then no error occurs
	require.NoError(t, err)

	// And the file exists in the temp directory (not final)
	tempPath := filepath.Join(base, "output.tmp", "news", "article.md")
	_, err = os.Stat(tempPath)
	require.NoError(t, err, "file should exist in temp directory")

	// And final directory does not exist yet
	finalPath := filepath.Join(base, "output", "news", "article.md")
	_, err = os.Stat(finalPath)
	assert.True(t, os.IsNotExist(err), "final directory should not exist until commit")
}

func TestSiteStore_CommitMovesFromTempToFinal(t *testing.T) {
	t.Parallel()

	// Given a store with saved content
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output", exporterStub(), pith.FormatMarkdown)
	err := store.Save(context.Background(), &pith.ExtractedContent{
		URL:   "https://example.com/a",
		Title: "A",
	})
	require.NoError(t, err)

	// When I commit
	err = store.Commit()

	// Then no error occurs
	require.NoError(t, err)

	// And final directory exists with content
	finalPath := filepath.Join(base, "output", "a.md")
	_, err = os.Stat(finalPath)
	require.NoError(t, err, "file should exist in final directory after commit")

	// And temp directory is gone
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after commit")
}

func TestSiteStore_CommitReplacesPreviousRun(t *testing.T) {
	t.Parallel()

	// Given a committed site
	base := t.TempDir()
	first := fs.NewSiteStore(base, "output", exporterStub(), pith.FormatMarkdown)
	err := first.Save(context.Background(), &pith.ExtractedContent{
		URL:   "https://example.com/old-story",
		Title: "Old",
	})
	require.NoError(t, err)
	require.NoError(t, first.Commit())

	// When a second run commits different content
	second := fs.NewSiteStore(base, "output", exporterStub(), pith.FormatMarkdown)
	err = second.Save(context.Background(), &pith.ExtractedContent{
		URL:   "https://example.com/new-story",
		Title: "New",
	})
	require.NoError(t, err)
	require.NoError(t, second.Commit())

	// Then only the new content remains
	_, err = os.Stat(filepath.Join(base, "output", "new-story.md"))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(base, "output", "old-story.md"))
	assert.True(t, os.IsNotExist(err), "previous run should be replaced entirely")
}

func TestSiteStore_AbortCleansUpTempDirectory(t *testing.T) {
	t.Parallel()

	// Given a store with saved content
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output", exporterStub(), pith.FormatMarkdown)
	err := store.Save(context.Background(), &pith.ExtractedContent{
		URL:   "https://example.com/a",
		Title: "A",
	})
	require.NoError(t, err)

	// When I abort
	err = store.Abort()

	// Then no error occurs
	require.NoError(t, err)

	// And temp directory is cleaned up
	tempDir := filepath.Join(base, "output.tmp")
	_, err = os.Stat(tempDir)
	assert.True(t, os.IsNotExist(err), "temp directory should be removed after abort")

	// And final directory doesn't exist
	finalDir := filepath.Join(base, "output")
	_, err = os.Stat(finalDir)
	assert.True(t, os.IsNotExist(err), "final directory should not exist after abort")
}

func TestSiteStore_PreservesURLPathStructure(t *testing.T) {
	t.Parallel()

	// Given content with nested paths
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output", exporterStub(), pith.FormatMarkdown)
	err := store.Save(context.Background(), &pith.ExtractedContent{
		URL:   "https://example.com/news/local/election",
		Title: "Election",
	})
	require.NoError(t, err)
	err = store.Commit()
	require.NoError(t, err)

	// Then nested directories are created
	expectedPath := filepath.Join(base, "output", "news", "local", "election.md")
	_, err = os.Stat(expectedPath)
	require.NoError(t, err, "nested path structure should be preserved")
}

func TestSiteStore_RejectsPathTraversal(t *testing.T) {
	t.Parallel()

	// Given a store
	base := t.TempDir()
	store := fs.NewSiteStore(base, "output", exporterStub(), pith.FormatMarkdown)

	// When I try to save content with path traversal in the URL
	err := store.Save(context.Background(), &pith.ExtractedContent{
		URL:   "https://example.com/../../../etc/passwd",
		Title: "Malicious",
	})

	// Then an error is returned
	require.Error(t, err, "path traversal should be rejected")
	assert.Contains(t, err.Error(), "path traversal")
}

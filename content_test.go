package pith_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pith"
	"github.com/stretchr/testify/assert"
)

func TestExtractedContent_Finalize(t *testing.T) {
	t.Parallel()

	t.Run("derives clean text from paragraphs joined by blank lines", func(t *testing.T) {
		t.Parallel()

		c := &pith.ExtractedContent{
			Title: "Title",
			Paragraphs: []pith.Paragraph{
				{Text: "First paragraph."},
				{Text: "Second paragraph."},
			},
		}
		c.Finalize()

		assert.Equal(t, "First paragraph.\n\nSecond paragraph.", c.CleanText)
		assert.Equal(t, 4, c.WordCount)
		assert.Equal(t, 1, c.ReadingTime)
	})

	t.Run("skips blank paragraphs in clean text", func(t *testing.T) {
		t.Parallel()

		c := &pith.ExtractedContent{
			Paragraphs: []pith.Paragraph{
				{Text: "Real text."},
				{Text: "   "},
				{Text: "More text."},
			},
		}
		c.Finalize()

		assert.Equal(t, "Real text.\n\nMore text.", c.CleanText)
	})

	t.Run("reading time rounds up and is zero only for empty content", func(t *testing.T) {
		t.Parallel()

		empty := &pith.ExtractedContent{}
		empty.Finalize()
		assert.Equal(t, 0, empty.ReadingTime)

		long := &pith.ExtractedContent{
			Paragraphs: []pith.Paragraph{{Text: strings.Repeat("word ", 401)}},
		}
		long.Finalize()
		assert.Equal(t, 401, long.WordCount)
		assert.Equal(t, 3, long.ReadingTime)
	})
}

func TestCountWords(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, pith.CountWords(""))
	assert.Equal(t, 0, pith.CountWords("  \n\t "))
	assert.Equal(t, 5, pith.CountWords("one two  three\nfour\tfive"))
}

func TestScoreQuality(t *testing.T) {
	t.Parallel()

	t.Run("rewards title paragraphs and word count", func(t *testing.T) {
		t.Parallel()

		c := &pith.ExtractedContent{
			Title: "A Title",
			Paragraphs: []pith.Paragraph{
				{Text: strings.Repeat("word ", 100)},
				{Text: strings.Repeat("word ", 100)},
				{Text: strings.Repeat("word ", 100)},
			},
		}
		c.Finalize()

		assert.GreaterOrEqual(t, c.Quality.Score, 0.9)
		assert.InDelta(t, 100.0, c.Quality.TextDensity, 0.001)
	})

	t.Run("penalizes link-heavy content", func(t *testing.T) {
		t.Parallel()

		linky := &pith.ExtractedContent{
			Title: "Nav Page",
			Paragraphs: []pith.Paragraph{{
				Text: "home about contact archive",
				HTML: `<p><a href="/">home</a> <a href="/a">about</a> <a href="/c">contact</a> <a href="/r">archive</a></p>`,
			}},
		}
		linky.Finalize()

		prose := &pith.ExtractedContent{
			Title:      "Article",
			Paragraphs: []pith.Paragraph{{Text: "home about contact archive"}},
		}
		prose.Finalize()

		assert.Less(t, linky.Quality.Score, prose.Quality.Score)
		assert.Greater(t, linky.Quality.LinkDensity, 0.0)
	})

	t.Run("score stays within unit interval", func(t *testing.T) {
		t.Parallel()

		empty := &pith.ExtractedContent{}
		empty.Finalize()
		assert.GreaterOrEqual(t, empty.Quality.Score, 0.0)
		assert.LessOrEqual(t, empty.Quality.Score, 1.0)
	})
}

package pith_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/pith"
	"github.com/stretchr/testify/assert"
)

func TestValidateContent(t *testing.T) {
	t.Parallel()

	t.Run("reports every violated rule", func(t *testing.T) {
		t.Parallel()

		c := &pith.ExtractedContent{
			Title:      "",
			Paragraphs: nil,
			WordCount:  10,
			Quality:    pith.ContentQuality{Score: 0.2},
		}

		result := pith.ValidateContent(c)

		assert.False(t, result.Valid)
		assert.Contains(t, result.Errors, "Missing title")
		assert.Contains(t, result.Errors, "No paragraphs extracted")
		assert.Contains(t, result.Errors, "Word count below minimum (50)")
		assert.Contains(t, result.Errors, "Quality score below threshold (0.3)")
	})

	t.Run("valid content has no errors", func(t *testing.T) {
		t.Parallel()

		c := &pith.ExtractedContent{
			Title: "Real Article",
			Paragraphs: []pith.Paragraph{
				{Text: strings.Repeat("substantial words here ", 20)},
			},
		}
		c.Finalize()

		result := pith.ValidateContent(c)

		assert.True(t, result.Valid)
		assert.Empty(t, result.Errors)
	})

	t.Run("whitespace-only title is missing", func(t *testing.T) {
		t.Parallel()

		c := &pith.ExtractedContent{Title: "   "}
		result := pith.ValidateContent(c)

		assert.Contains(t, result.Errors, "Missing title")
	})
}

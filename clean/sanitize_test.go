package clean_test

import (
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/clean"
	"github.com/stretchr/testify/assert"
)

func TestCleaner_SanitizeHTML(t *testing.T) {
	t.Parallel()

	c := clean.NewCleaner()

	t.Run("strips scripts styles and comments", func(t *testing.T) {
		t.Parallel()

		in := `<p>keep me</p><script>alert(1)</script><style>p{}</style><!-- note -->`
		out := c.SanitizeHTML(in, pith.DefaultCleaningOptions())

		assert.Contains(t, out, "<p>keep me</p>")
		assert.NotContains(t, out, "script")
		assert.NotContains(t, out, "style")
		assert.NotContains(t, out, "note")
	})

	t.Run("strips event handlers and script URLs", func(t *testing.T) {
		t.Parallel()

		in := `<p onclick="x()">text</p><a href="javascript:run()">bad</a><a href="https://example.com/ok">good</a>`
		out := c.SanitizeHTML(in, pith.DefaultCleaningOptions())

		assert.NotContains(t, out, "onclick")
		assert.NotContains(t, out, "javascript:")
		assert.Contains(t, out, `href="https://example.com/ok"`)
	})

	t.Run("honors media preserve flags", func(t *testing.T) {
		t.Parallel()

		in := `<p>text</p><img src="a.png" alt="a"><iframe src="x"></iframe>`

		out := c.SanitizeHTML(in, pith.DefaultCleaningOptions())
		assert.Contains(t, out, "<img")
		assert.NotContains(t, out, "<iframe")

		opts := pith.DefaultCleaningOptions()
		opts.PreserveImages = false
		out = c.SanitizeHTML(in, opts)
		assert.NotContains(t, out, "<img")
	})

	t.Run("keeps allowlisted attributes only", func(t *testing.T) {
		t.Parallel()

		in := `<p id="p1" class="lead" data-track="xyz" aria-hidden="false">text</p>`
		out := c.SanitizeHTML(in, pith.DefaultCleaningOptions())

		assert.Contains(t, out, `id="p1"`)
		assert.Contains(t, out, `class="lead"`)
		assert.Contains(t, out, `aria-hidden="false"`)
		assert.NotContains(t, out, "data-track")
	})
}

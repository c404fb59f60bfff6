package goquery_test

import (
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mdnPage = `<!DOCTYPE html>
<html lang="en-US">
<head><title>Array.prototype.map() - JavaScript | MDN</title></head>
<body>
<main>
<article class="main-page-content">
	<h1>Array.prototype.map()</h1>
	<p>The map() method creates a new array populated with the results of calling a provided function.</p>
	<iframe class="interactive" src="/interactive-examples/map"></iframe>
	<h2>Syntax and common patterns</h2>
	<p>A new array with each element being the result of the callback function.</p>
	<div class="prev-next"><a href="/prev">Previous</a><a href="/next">Next</a></div>
</article>
</main>
</body>
</html>`

func TestMDNAdapter_Name(t *testing.T) {
	t.Parallel()

	a := goquery.NewMDNAdapter()
	assert.Equal(t, "mdn", a.Name())
	assert.Equal(t, 100, a.Priority())
}

func TestMDNAdapter_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts article content without navigation", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(mdnPage)
		require.NoError(t, err)

		content, err := goquery.NewMDNAdapter().Extract(doc, "https://developer.mozilla.org/docs/map")
		require.NoError(t, err)

		assert.Equal(t, "Array.prototype.map()", content.Title)
		require.Len(t, content.Paragraphs, 3)

		assert.Contains(t, content.Paragraphs[0].Text, "creates a new array")
		assert.True(t, content.Paragraphs[1].IsHeading)
		assert.NotContains(t, content.CleanText, "Previous")
		assert.Equal(t, "MDN Web Docs", content.Metadata.SiteName)
		assert.Equal(t, "en-US", content.Metadata.Language)
	})

	t.Run("returns ENOTFOUND without an article body", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<html><body><div>nothing</div></body></html>`)
		require.NoError(t, err)

		_, err = goquery.NewMDNAdapter().Extract(doc, "https://developer.mozilla.org/docs/map")
		require.Error(t, err)
		assert.Equal(t, pith.ENOTFOUND, pith.ErrorCode(err))
	})
}

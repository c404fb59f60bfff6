package trafilatura_test

import (
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/trafilatura"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Extractor implements pith.Extractor at compile time.
var _ pith.Extractor = (*trafilatura.Extractor)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts title from meta tags", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Inside the Newsroom - The Daily Ledger</title>
<meta property="og:title" content="Inside the Newsroom">
</head>
<body>
<nav>Navigation here</nav>
<main>
<h1>Inside the Newsroom</h1>
<p>This is the main content of the story, describing a week of production.</p>
</main>
<footer>Footer content</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.NotEmpty(t, result.Title)
	})

	t.Run("extracts main content", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav><a href="/">Home</a><a href="/archive">Archive</a></nav>
<article>
<h1>Postmortem</h1>
<p>This is the substantive account of the outage that readers came for.</p>
<pre><code>kubectl rollout undo deploy/api</code></pre>
</article>
<aside>Sidebar content</aside>
<footer>All rights reserved</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "substantive account of the outage")
		assert.Contains(t, result.ContentHTML, "kubectl rollout undo")
	})

	t.Run("removes navigation boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<nav class="main-nav">
<ul>
<li><a href="/">Front Page</a></li>
<li><a href="/world">World</a></li>
<li><a href="/tech">Technology</a></li>
</ul>
</nav>
<main>
<h1>Main Story</h1>
<p>This paragraph contains the actual story text we want.</p>
</main>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "actual story text we want")
		assert.NotContains(t, result.ContentHTML, "main-nav")
	})

	t.Run("removes footer boilerplate", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Test</title></head>
<body>
<article>
<h1>Feature Story</h1>
<p>Feature body with substantive reporting for readers.</p>
</article>
<footer>
<p>All rights reserved, The Daily Ledger</p>
<nav>Privacy | Terms | Contact</nav>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "substantive reporting")
		assert.NotContains(t, result.ContentHTML, "The Daily Ledger")
	})

	t.Run("handles news article layout", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Harbor Expansion Approved | City Desk</title>
<meta property="og:title" content="Harbor Expansion Approved">
</head>
<body>
<nav class="navbar">
<a href="/">City Desk</a>
<a href="/metro">Metro</a>
<a href="/sports">Sports</a>
</nav>
<div class="sidebar">
<ul>
<li><a href="/trending/1">Trending story one</a></li>
<li><a href="/trending/2">Trending story two</a></li>
</ul>
</div>
<main class="articleContainer">
<article>
<h1>Harbor Expansion Approved</h1>
<p>The port authority voted unanimously to expand the eastern terminal.</p>
<h2>Funding</h2>
<p>Construction bonds will cover most of the projected cost.</p>
</article>
</main>
<footer class="footer">
<p>Published by City Desk Media</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "voted unanimously")
		assert.Contains(t, result.ContentHTML, "Funding")
	})

	t.Run("handles blog post layout", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Why We Rewrote the Scheduler - Engineering Blog</title>
</head>
<body>
<header>
<nav class="site-header">
<a href=".">Engineering Blog</a>
</nav>
</header>
<nav class="toc" data-level="0">
<ul>
<li><a href="#background">Background</a></li>
<li><a href="#results">Results</a></li>
</ul>
</nav>
<main>
<article class="post-content">
<h1>Why We Rewrote the Scheduler</h1>
<p>The old scheduler could not keep up with our queue depth.</p>
<h2>Results</h2>
<ul>
<li><code>p99 latency</code> dropped by half.</li>
<li><code>throughput</code> doubled under load.</li>
</ul>
</article>
</main>
<footer class="site-footer">
<p>Powered by a static site generator</p>
</footer>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "could not keep up with our queue depth")
		assert.Contains(t, result.ContentHTML, "p99 latency")
	})

	t.Run("preserves code blocks", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head><title>Code Example</title></head>
<body>
<article>
<h1>Worker Pools</h1>
<p>Here is the core loop:</p>
<pre><code class="language-go">package main

import "fmt"

func main() {
    fmt.Println("Hello, World!")
}
</code></pre>
<p>And here is how to run it: <code>go run main.go</code></p>
</article>
</body>
</html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "fmt.Println")
		// HTML rendering encodes quotes as &#34;
		assert.Contains(t, result.ContentHTML, "Hello, World!")
	})

	t.Run("returns error for empty input", func(t *testing.T) {
		t.Parallel()

		ext := trafilatura.NewExtractor()
		_, err := ext.Extract("")

		require.Error(t, err)
		assert.Equal(t, pith.EINVALID, pith.ErrorCode(err))
	})

	t.Run("handles minimal valid HTML", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><p>Simple content</p></body></html>`

		ext := trafilatura.NewExtractor()
		result, err := ext.Extract(html)

		require.NoError(t, err)
		assert.Contains(t, result.ContentHTML, "Simple content")
	})
}

package detect_test

import (
	"testing"

	"github.com/fwojciec/pith"
	"github.com/fwojciec/pith/detect"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_Title(t *testing.T) {
	t.Parallel()

	d := detect.NewDetector()

	t.Run("container heading wins", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<title>Site Name - Page</title>
<meta property="og:title" content="OG Title">
</head><body>
<main><h1>Understanding Paragraph Detection</h1><p>Body text long enough to matter.</p></main>
</body></html>`)

		assert.Equal(t, "Understanding Paragraph Detection", d.Title(doc))
	})

	t.Run("open graph beats the title element", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head>
<title>Site Name - Page</title>
<meta property="og:title" content="OG Title">
</head><body><p>Loose text without any container at all.</p></body></html>`)

		assert.Equal(t, "OG Title", d.Title(doc))
	})

	t.Run("title element is the last resort", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html><head><title>  Plain Title  </title></head><body><p>text</p></body></html>`)
		assert.Equal(t, "Plain Title", d.Title(doc))
	})
}

func TestDetector_Metadata(t *testing.T) {
	t.Parallel()

	d := detect.NewDetector()

	t.Run("reads standard meta tags", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<html lang="en"><head>
<meta name="author" content="Jane Doe">
<meta name="description" content="A page about things.">
<meta property="article:published_time" content="2024-03-01T10:00:00Z">
<meta property="article:modified_time" content="2024-03-02T11:00:00Z">
<meta property="og:site_name" content="Example Site">
<meta property="og:image" content="https://example.com/hero.png">
<meta name="keywords" content="go, extraction , html">
<link rel="canonical" href="https://example.com/page">
</head><body></body></html>`)

		md := d.Metadata(doc)

		assert.Equal(t, "Jane Doe", md.Author)
		assert.Equal(t, "A page about things.", md.Description)
		assert.Equal(t, "2024-03-01T10:00:00Z", md.Published)
		assert.Equal(t, "2024-03-02T11:00:00Z", md.Modified)
		assert.Equal(t, "Example Site", md.SiteName)
		assert.Equal(t, "https://example.com/hero.png", md.ImageURL)
		assert.Equal(t, "https://example.com/page", md.CanonicalURL)
		assert.Equal(t, []string{"go", "extraction", "html"}, md.Keywords)
		assert.Equal(t, "en", md.Language)
	})

	t.Run("falls back to byline elements and time tags", func(t *testing.T) {
		t.Parallel()

		doc := parse(t, `<body>
<span class="byline">John Smith</span>
<time datetime="2024-05-05">May 5</time>
</body>`)

		md := d.Metadata(doc)
		assert.Equal(t, "John Smith", md.Author)
		assert.Equal(t, "2024-05-05", md.Published)
	})

	t.Run("missing metadata stays empty", func(t *testing.T) {
		t.Parallel()

		md := d.Metadata(parse(t, `<body><p>bare page</p></body>`))
		assert.Equal(t, pith.ContentMetadata{}, md)
	})
}

func TestDetector_StructuredData(t *testing.T) {
	t.Parallel()

	d := detect.NewDetector()

	doc := parse(t, `<html><head>
<script type="application/ld+json">{"@type":"Article","headline":"One"}</script>
<script type="application/ld+json">[{"@type":"Person"},{"@type":"Organization"}]</script>
<script type="application/ld+json">{not json</script>
</head><body></body></html>`)

	data := d.StructuredData(doc)
	require.Len(t, data, 3)
	assert.Equal(t, "Article", data[0]["@type"])
	assert.Equal(t, "One", data[0]["headline"])
	assert.Equal(t, "Person", data[1]["@type"])
	assert.Equal(t, "Organization", data[2]["@type"])
}

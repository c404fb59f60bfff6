package pith

import (
	"strings"
	"time"
)

// ReadingSpeedWPM is the assumed reading speed used to derive reading time.
const ReadingSpeedWPM = 200

// ExtractedContent is the aggregate result of extracting one page.
//
// CleanText is always the paragraph texts joined by blank lines, and
// WordCount and ReadingTime are derived from it; call Finalize after any
// change to Paragraphs rather than authoring these fields directly.
// Fingerprint is a deterministic digest of the title and a bounded prefix
// of CleanText: two records with equal fingerprints are considered the same
// underlying article regardless of source URL.
type ExtractedContent struct {
	URL            string           `json:"url"`
	Title          string           `json:"title"`
	Paragraphs     []Paragraph      `json:"paragraphs"`
	CleanText      string           `json:"cleanText"`
	Metadata       ContentMetadata  `json:"metadata"`
	Sections       []Section        `json:"sections,omitempty"`
	WordCount      int              `json:"wordCount"`
	ReadingTime    int              `json:"readingTime"`
	Language       string           `json:"language,omitempty"`
	Quality        ContentQuality   `json:"quality"`
	Fingerprint    string           `json:"fingerprint,omitempty"`
	Summary        string           `json:"summary,omitempty"`
	Tables         []Table          `json:"tables,omitempty"`
	Lists          []List           `json:"lists,omitempty"`
	Embeds         []Embed          `json:"embeds,omitempty"`
	StructuredData []map[string]any `json:"structuredData,omitempty"`
	ExtractedAt    time.Time        `json:"extractedAt"`
}

// ContentMetadata is descriptive page metadata gathered from meta tags and
// structured data. All fields are optional; absent values stay empty.
type ContentMetadata struct {
	Author          string   `json:"author,omitempty"`
	Description     string   `json:"description,omitempty"`
	Published       string   `json:"published,omitempty"`
	Modified        string   `json:"modified,omitempty"`
	SiteName        string   `json:"siteName,omitempty"`
	CanonicalURL    string   `json:"canonicalUrl,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
	Keywords        []string `json:"keywords,omitempty"`
	Language        string   `json:"language,omitempty"`
	LikelyDuplicate bool     `json:"likelyDuplicate,omitempty"`
	ExtractedBy     string   `json:"extractedBy,omitempty"`
}

// ContentQuality is a coarse quality signal for extracted content.
type ContentQuality struct {
	Score       float64 `json:"score"`
	TextDensity float64 `json:"textDensity"`
	LinkDensity float64 `json:"linkDensity"`
}

// Table is a simplified data table found in the content.
type Table struct {
	Caption string     `json:"caption,omitempty"`
	Headers []string   `json:"headers,omitempty"`
	Rows    [][]string `json:"rows"`
}

// List is an ordered or unordered list found in the content.
type List struct {
	Ordered bool     `json:"ordered"`
	Items   []string `json:"items"`
}

// Embed is an embedded media reference found in the content.
type Embed struct {
	Type  string `json:"type"`
	Src   string `json:"src"`
	Title string `json:"title,omitempty"`
}

// CountWords returns the number of whitespace-separated words in s.
func CountWords(s string) int {
	return len(strings.Fields(s))
}

// Finalize recomputes the derived fields of c from its paragraphs:
// CleanText, WordCount, ReadingTime, and Quality. It is the single
// derivation point and must run after any pass that changes Paragraphs.
func (c *ExtractedContent) Finalize() {
	texts := make([]string, 0, len(c.Paragraphs))
	for i := range c.Paragraphs {
		if t := strings.TrimSpace(c.Paragraphs[i].Text); t != "" {
			texts = append(texts, t)
		}
	}
	c.CleanText = strings.Join(texts, "\n\n")
	c.WordCount = CountWords(c.CleanText)
	c.ReadingTime = readingMinutes(c.WordCount)
	c.Quality = ScoreQuality(c)
}

// readingMinutes converts a word count to whole minutes at ReadingSpeedWPM,
// rounding up. Zero words read in zero minutes.
func readingMinutes(words int) int {
	if words <= 0 {
		return 0
	}
	return (words + ReadingSpeedWPM - 1) / ReadingSpeedWPM
}

// ScoreQuality derives a quality signal from a content record. The score
// rewards a present title, multiple paragraphs, and substantial word count,
// and penalizes link-heavy content.
func ScoreQuality(c *ExtractedContent) ContentQuality {
	var q ContentQuality

	if len(c.Paragraphs) > 0 {
		q.TextDensity = float64(c.WordCount) / float64(len(c.Paragraphs))
	}

	anchors := 0
	for i := range c.Paragraphs {
		anchors += strings.Count(c.Paragraphs[i].HTML, "<a ")
		anchors += strings.Count(c.Paragraphs[i].HTML, "<a>")
	}
	if c.WordCount > 0 {
		q.LinkDensity = float64(anchors) / float64(c.WordCount)
	}

	score := 0.0
	if strings.TrimSpace(c.Title) != "" {
		score += 0.2
	}
	score += min(0.3, float64(len(c.Paragraphs))*0.1)
	switch {
	case c.WordCount >= 250:
		score += 0.3
	case c.WordCount >= 100:
		score += 0.2
	case c.WordCount >= 50:
		score += 0.1
	}
	score += 0.2 * (1 - min(1, q.LinkDensity*5))

	q.Score = min(1, max(0, score))
	return q
}

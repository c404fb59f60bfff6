package pith

import (
	"fmt"
	"strings"
	"unicode"
)

// MergeGap is the maximum vertical distance, in layout units, between two
// paragraphs that may still be merged into one.
const MergeGap = 50.0

// Rect describes the coarse layout bounds of an element. Bounds come from
// the tree builder and are a heuristic signal only, never rendered geometry.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Union returns the smallest rectangle covering both r and other.
func (r Rect) Union(other Rect) Rect {
	top := min(r.Top, other.Top)
	left := min(r.Left, other.Left)
	bottom := max(r.Top+r.Height, other.Top+other.Height)
	right := max(r.Left+r.Width, other.Left+other.Width)
	return Rect{
		Top:    top,
		Left:   left,
		Width:  right - left,
		Height: bottom - top,
	}
}

// Paragraph is one content block of an extracted page, in reading order.
// Paragraphs are immutable once produced by a detection pass; Index is the
// paragraph's rank and is contiguous from 0 after any merge or filter pass.
type Paragraph struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	HTML         string  `json:"html"`
	Index        int     `json:"index"`
	ElementPath  string  `json:"elementPath"`
	Bounds       Rect    `json:"bounds"`
	IsQuote      bool    `json:"isQuote"`
	IsCode       bool    `json:"isCode"`
	IsHeading    bool    `json:"isHeading"`
	HeadingLevel int     `json:"headingLevel,omitempty"`
	Importance   float64 `json:"importance"`

	// Optional analysis results, populated only when the corresponding
	// extraction option is enabled and an analyzer is configured.
	Sentiment   *SentimentScore   `json:"sentiment,omitempty"`
	Entities    []Entity          `json:"entities,omitempty"`
	Readability *ReadabilityScore `json:"readability,omitempty"`
}

// WordCount returns the number of whitespace-separated words in the
// paragraph text.
func (p *Paragraph) WordCount() int {
	return len(strings.Fields(p.Text))
}

// MergeParagraphs reassembles paragraphs that were split by inline markup.
// Scanning in order, a paragraph is folded into its predecessor when neither
// is a heading, quote, or code block, the vertical gap between them is at
// most MergeGap layout units, the predecessor does not end in sentence
// punctuation, and the successor starts with a lowercase letter. Merged
// bounds take the union rectangle. The result is reindexed so ids and
// indexes stay contiguous from zero.
func MergeParagraphs(paragraphs []Paragraph) []Paragraph {
	if len(paragraphs) == 0 {
		return paragraphs
	}

	merged := make([]Paragraph, 0, len(paragraphs))
	merged = append(merged, paragraphs[0])

	for _, next := range paragraphs[1:] {
		last := &merged[len(merged)-1]
		if !canMerge(last, &next) {
			merged = append(merged, next)
			continue
		}

		last.Text = last.Text + " " + next.Text
		if next.HTML != "" {
			if last.HTML != "" {
				last.HTML = last.HTML + "\n" + next.HTML
			} else {
				last.HTML = next.HTML
			}
		}
		last.Bounds = last.Bounds.Union(next.Bounds)
		last.Importance = max(last.Importance, next.Importance)
	}

	return ReindexParagraphs(merged)
}

// canMerge reports whether next can be folded into prev.
func canMerge(prev, next *Paragraph) bool {
	if prev.IsHeading || prev.IsQuote || prev.IsCode {
		return false
	}
	if next.IsHeading || next.IsQuote || next.IsCode {
		return false
	}

	gap := next.Bounds.Top - (prev.Bounds.Top + prev.Bounds.Height)
	if gap > MergeGap {
		return false
	}

	if endsWithSentencePunctuation(prev.Text) {
		return false
	}
	return startsWithLowercase(next.Text)
}

// ReindexParagraphs rewrites Index and ID so that paragraphs[i].Index == i
// and ids run p-0 through p-(n-1). The input slice is modified in place and
// returned for convenience.
func ReindexParagraphs(paragraphs []Paragraph) []Paragraph {
	for i := range paragraphs {
		paragraphs[i].Index = i
		paragraphs[i].ID = fmt.Sprintf("p-%d", i)
	}
	return paragraphs
}

func endsWithSentencePunctuation(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	switch s[len(s)-1] {
	case '.', '!', '?':
		return true
	}
	return false
}

func startsWithLowercase(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		return unicode.IsLower(r)
	}
	return false
}

package goquery

import (
	"strings"
	"sync"

	"github.com/fwojciec/pith"
	"golang.org/x/net/html"
)

// Synthetic layout constants. The model lays blocks out top to bottom in a
// fixed-width page: text wraps at lineChars characters per line, each line
// adds lineHeight, sibling blocks are separated by blockGap and media
// elements occupy a fixed height.
const (
	pageWidth   = 800.0
	lineChars   = 80
	lineHeight  = 20.0
	blockGap    = 10.0
	mediaHeight = 150.0
)

// layout holds lazily computed bounds for every element in a document.
// Structural mutations invalidate it; the next Bounds call recomputes.
type layout struct {
	mu     sync.Mutex
	bounds map[*html.Node]pith.Rect
	valid  bool
}

func newLayout() *layout {
	return &layout{}
}

func (l *layout) invalidate() {
	l.mu.Lock()
	l.valid = false
	l.mu.Unlock()
}

// boundsFor returns the rectangle for n, running the flow pass from root
// if the cached layout is stale. Elements outside the layout (head
// content, scripts, detached nodes) report a zero rectangle.
func (l *layout) boundsFor(root, n *html.Node) pith.Rect {
	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.valid {
		l.bounds = make(map[*html.Node]pith.Rect)
		l.flow(root, 0)
		l.valid = true
	}
	return l.bounds[n]
}

// flow lays out the children of n starting at vertical offset y and
// returns the height consumed. Consecutive text and inline elements share
// a run that wraps as one block of lines.
func (l *layout) flow(n *html.Node, y float64) float64 {
	top := y
	cursor := y
	runChars := 0

	flushRun := func() {
		if runChars > 0 {
			cursor += textHeight(runChars)
			runChars = 0
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			runChars += visibleChars(c.Data)
		case html.ElementNode:
			switch {
			case skipTags[c.Data]:
				// No layout contribution.
			case blockTags[c.Data] || mediaTags[c.Data]:
				flushRun()
				if cursor > top {
					cursor += blockGap
				}
				cursor += l.flowBlock(c, cursor)
			default:
				l.flowInline(c, cursor)
				runChars += textChars(c)
			}
		}
	}
	flushRun()
	return cursor - top
}

func (l *layout) flowBlock(n *html.Node, y float64) float64 {
	h := l.flow(n, y)
	if mediaTags[n.Data] && h < mediaHeight {
		h = mediaHeight
	}
	l.bounds[n] = pith.Rect{Top: y, Left: 0, Width: pageWidth, Height: h}
	return h
}

// flowInline records bounds for an inline element and its descendants at
// the current run position. Height is derived from the element's own text.
func (l *layout) flowInline(n *html.Node, y float64) {
	h := textHeight(textChars(n))
	if mediaTags[n.Data] {
		h = mediaHeight
	}
	l.bounds[n] = pith.Rect{Top: y, Left: 0, Width: pageWidth, Height: h}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && !skipTags[c.Data] {
			l.flowInline(c, y)
		}
	}
}

// textHeight converts a character count into wrapped-line height.
func textHeight(chars int) float64 {
	if chars <= 0 {
		return 0
	}
	lines := (chars + lineChars - 1) / lineChars
	return float64(lines) * lineHeight
}

// visibleChars counts the characters of s after collapsing whitespace.
func visibleChars(s string) int {
	return len(strings.Join(strings.Fields(s), " "))
}

// textChars counts the visible characters in the subtree rooted at n.
func textChars(n *html.Node) int {
	total := 0
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			total += visibleChars(c.Data)
		case html.ElementNode:
			if !skipTags[c.Data] {
				total += textChars(c)
			}
		}
	}
	return total
}

var blockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"body": true, "dd": true, "details": true, "div": true, "dl": true,
	"dt": true, "fieldset": true, "figcaption": true, "figure": true,
	"footer": true, "form": true, "h1": true, "h2": true, "h3": true,
	"h4": true, "h5": true, "h6": true, "header": true, "hr": true,
	"html": true, "li": true, "main": true, "nav": true, "ol": true,
	"p": true, "pre": true, "section": true, "summary": true,
	"table": true, "tbody": true, "td": true, "tfoot": true, "th": true,
	"thead": true, "tr": true, "ul": true,
}

var mediaTags = map[string]bool{
	"audio": true, "canvas": true, "embed": true, "iframe": true,
	"img": true, "object": true, "picture": true, "svg": true,
	"video": true,
}

var skipTags = map[string]bool{
	"base": true, "head": true, "link": true, "meta": true,
	"noscript": true, "script": true, "style": true, "template": true,
	"title": true,
}

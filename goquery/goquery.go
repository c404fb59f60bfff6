// Package goquery provides the document tree implementation behind
// pith.Parser, built on PuerkitoBio/goquery. Selectors are compiled with
// cascadia so invalid selectors surface as errors instead of panics, and
// every element carries coarse synthetic layout bounds derived from a
// simple text-flow model.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/pith"
	"golang.org/x/net/html"
)

// Ensure implementations satisfy the domain interfaces at compile time.
var (
	_ pith.Parser   = (*Parser)(nil)
	_ pith.Document = (*Document)(nil)
)

// Parser builds pith documents from raw markup.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds a navigable document from raw markup.
func (p *Parser) Parse(markup string) (pith.Document, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pith.Errorf(pith.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: gq, layout: newLayout()}, nil
}

// Document wraps a goquery document. Layout bounds are computed lazily on
// first use and recomputed after structural mutations.
type Document struct {
	doc    *goquery.Document
	layout *layout
}

// Root returns the document's root element.
func (d *Document) Root() pith.Node {
	sel := d.doc.Find("html")
	if len(sel.Nodes) == 0 {
		// Parser normalization guarantees an html element; fall back to
		// the document node so callers never receive nil.
		return &node{n: d.doc.Nodes[0], doc: d}
	}
	return &node{n: sel.Nodes[0], doc: d}
}

// Find returns all elements matching the CSS selector in document order.
func (d *Document) Find(selector string) ([]pith.Node, error) {
	m, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	return d.wrapNodes(d.doc.FindMatcher(m).Nodes), nil
}

// Title returns the text of the document's <title> element.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// HTML serializes the current state of the tree.
func (d *Document) HTML() (string, error) {
	return goquery.OuterHtml(d.doc.Selection)
}

// Clone returns a deep copy by rendering and reparsing the tree. The copy
// shares no state with the receiver and computes its own layout.
func (d *Document) Clone() (pith.Document, error) {
	markup, err := d.HTML()
	if err != nil {
		return nil, err
	}
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, pith.Errorf(pith.EINTERNAL, "failed to reparse document: %v", err)
	}
	return &Document{doc: gq, layout: newLayout()}, nil
}

func (d *Document) wrapNodes(nodes []*html.Node) []pith.Node {
	wrapped := make([]pith.Node, 0, len(nodes))
	for _, n := range nodes {
		wrapped = append(wrapped, &node{n: n, doc: d})
	}
	return wrapped
}

// bounds returns the layout rectangle for n, computing the flow layout on
// first use.
func (d *Document) bounds(n *html.Node) pith.Rect {
	return d.layout.boundsFor(d.rootNode(), n)
}

func (d *Document) rootNode() *html.Node {
	return d.doc.Nodes[0]
}

// compileSelector compiles a CSS selector, mapping compilation failures to
// EINVALID so callers can skip bad selectors without aborting a pass.
func compileSelector(selector string) (cascadia.Selector, error) {
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, pith.Errorf(pith.EINVALID, "invalid selector %q: %v", selector, err)
	}
	return m, nil
}

package goquery

import (
	"strings"

	"github.com/fwojciec/pith"
)

// RegisterSiteAdapters registers the built-in site adapters on reg.
func RegisterSiteAdapters(reg *pith.Registry) error {
	adapters := []pith.SiteAdapter{
		NewWikipediaAdapter(),
		NewGitHubAdapter(),
		NewMDNAdapter(),
	}
	for _, a := range adapters {
		if err := reg.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// minTextChars is the acceptance floor for adapter paragraphs; anything at
// or below it is navigation chrome or stray markup.
const minTextChars = 20

// collectParagraphs builds scored paragraphs from the elements matching
// selector inside container. When matches nest, the outermost element wins
// so a <p> inside a matching <blockquote> is not counted twice.
func collectParagraphs(container pith.Node, selector string) ([]pith.Paragraph, error) {
	nodes, err := container.Find(selector)
	if err != nil {
		return nil, err
	}

	var paragraphs []pith.Paragraph
	for _, n := range nodes {
		if parent, ok := n.Parent(); ok {
			if _, nested := parent.Closest(selector); nested {
				continue
			}
		}
		if p, ok := paragraphFromNode(n); ok {
			paragraphs = append(paragraphs, p)
		}
	}
	pith.ReindexParagraphs(paragraphs)
	return paragraphs, nil
}

// paragraphFromNode converts one matched element into a scored paragraph.
// Fragments at or below the acceptance floor are rejected.
func paragraphFromNode(n pith.Node) (pith.Paragraph, bool) {
	text := collapseSpace(n.Text())
	if len(text) <= minTextChars {
		return pith.Paragraph{}, false
	}

	markup, err := n.HTML()
	if err != nil {
		markup = ""
	}

	tag := n.Tag()
	level := headingLevel(tag)
	p := pith.Paragraph{
		Text:         text,
		HTML:         markup,
		ElementPath:  pith.NodePath(n),
		Bounds:       n.Bounds(),
		IsQuote:      tag == "blockquote" || tag == "q",
		IsCode:       tag == "pre" || tag == "code",
		IsHeading:    level > 0,
		HeadingLevel: level,
	}

	anchors, err := n.Find("a")
	if err != nil {
		anchors = nil
	}
	_, inArticle := n.Closest("article")

	p.Importance = pith.ScoreImportance(pith.ImportanceSignals{
		TextLength:    len(text),
		WordCount:     pith.CountWords(text),
		AnchorCount:   len(anchors),
		Top:           p.Bounds.Top,
		InsideArticle: inArticle,
		Tag:           tag,
		IsQuote:       p.IsQuote,
		IsCode:        p.IsCode,
	})
	return p, true
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

// firstMatch returns the first element matching any of the selectors,
// tried in order.
func firstMatch(doc pith.Document, selectors ...string) (pith.Node, bool) {
	for _, sel := range selectors {
		nodes, err := doc.Find(sel)
		if err == nil && len(nodes) > 0 {
			return nodes[0], true
		}
	}
	return nil, false
}

// firstText returns the collapsed text of the first element matching any
// of the selectors.
func firstText(doc pith.Document, selectors ...string) string {
	if n, ok := firstMatch(doc, selectors...); ok {
		return collapseSpace(n.Text())
	}
	return ""
}

// metaContent returns the content attribute of the first matching element.
func metaContent(doc pith.Document, selector string) string {
	nodes, err := doc.Find(selector)
	if err != nil || len(nodes) == 0 {
		return ""
	}
	v, _ := nodes[0].Attr("content")
	return strings.TrimSpace(v)
}

// removeAll removes every element matching selector from doc.
func removeAll(doc pith.Document, selector string) {
	nodes, err := doc.Find(selector)
	if err != nil {
		return
	}
	for _, n := range nodes {
		n.Remove()
	}
}

// htmlLang returns the document root's lang attribute.
func htmlLang(doc pith.Document) string {
	v, _ := doc.Root().Attr("lang")
	return strings.TrimSpace(v)
}

// collapseSpace trims s and collapses whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

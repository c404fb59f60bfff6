package clean

import (
	"strings"

	"github.com/fwojciec/pith"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// sanitizeDropTags are removed outright by SanitizeHTML regardless of
// options.
var sanitizeDropTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "template": true,
	"base": true, "meta": true, "link": true,
}

// SanitizeHTML returns markup reduced to the attribute allowlist with
// scripts, event handlers and javascript: URLs removed. It operates on the
// string level for callers that never build a full document; unparseable
// input yields an empty string.
func (c *Cleaner) SanitizeHTML(markup string, opts pith.CleaningOptions) string {
	ctx := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), ctx)
	if err != nil {
		return ""
	}

	var sb strings.Builder
	for _, n := range nodes {
		sanitizeNode(n, opts)
		if err := html.Render(&sb, n); err != nil {
			return ""
		}
	}
	return sb.String()
}

func sanitizeNode(n *html.Node, opts pith.CleaningOptions) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type != html.ElementNode {
			if c.Type == html.CommentNode {
				n.RemoveChild(c)
			}
			continue
		}
		if dropSanitized(c.Data, opts) {
			n.RemoveChild(c)
			continue
		}
		sanitizeAttrs(c)
		sanitizeNode(c, opts)
	}
}

func dropSanitized(tag string, opts pith.CleaningOptions) bool {
	if sanitizeDropTags[tag] {
		return true
	}
	switch tag {
	case "img", "picture":
		return !opts.PreserveImages
	case "video", "audio":
		return !opts.PreserveVideos
	case "iframe", "embed", "object":
		return !opts.PreserveIframes
	}
	return false
}

func sanitizeAttrs(n *html.Node) {
	attrs := n.Attr[:0]
	for _, a := range n.Attr {
		if !allowedAttrs[a.Key] && !strings.HasPrefix(a.Key, "aria-") {
			continue
		}
		if (a.Key == "href" || a.Key == "src") && isScriptURL(a.Val) {
			continue
		}
		attrs = append(attrs, a)
	}
	n.Attr = attrs
}

func isScriptURL(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return strings.HasPrefix(v, "javascript:") || strings.HasPrefix(v, "data:text/html")
}

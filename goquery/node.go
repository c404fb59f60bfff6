package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/pith"
	"golang.org/x/net/html"
)

var _ pith.Node = (*node)(nil)

// node wraps a single element in the parsed tree. Structural mutations go
// through the owning document so layout bounds can be invalidated.
type node struct {
	n   *html.Node
	doc *Document
}

// Tag returns the lowercase element name.
func (n *node) Tag() string {
	return n.n.Data
}

// Text returns the concatenated visible text of the node's subtree.
// Script, style and template content never counts as text.
func (n *node) Text() string {
	var sb strings.Builder
	appendVisibleText(&sb, n.n)
	return sb.String()
}

func appendVisibleText(sb *strings.Builder, n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			sb.WriteString(c.Data)
		case html.ElementNode:
			if !skipTags[c.Data] {
				appendVisibleText(sb, c)
			}
		}
	}
}

// HTML serializes the node and its subtree.
func (n *node) HTML() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, n.n); err != nil {
		return "", pith.Errorf(pith.EINTERNAL, "failed to render node: %v", err)
	}
	return sb.String(), nil
}

// Attr returns the value of the named attribute and whether it is present.
func (n *node) Attr(name string) (string, bool) {
	for _, a := range n.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets the named attribute, replacing any existing value.
func (n *node) SetAttr(name, value string) {
	for i, a := range n.n.Attr {
		if a.Key == name {
			n.n.Attr[i].Val = value
			return
		}
	}
	n.n.Attr = append(n.n.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes the named attribute if present.
func (n *node) RemoveAttr(name string) {
	attrs := n.n.Attr[:0]
	for _, a := range n.n.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	n.n.Attr = attrs
}

// Attrs returns all attributes in document order.
func (n *node) Attrs() []pith.Attribute {
	attrs := make([]pith.Attribute, 0, len(n.n.Attr))
	for _, a := range n.n.Attr {
		attrs = append(attrs, pith.Attribute{Key: a.Key, Val: a.Val})
	}
	return attrs
}

// Parent returns the parent element, or false at the root.
func (n *node) Parent() (pith.Node, bool) {
	p := n.n.Parent
	if p == nil || p.Type != html.ElementNode {
		return nil, false
	}
	return &node{n: p, doc: n.doc}, true
}

// Children returns the node's element children in document order.
func (n *node) Children() []pith.Node {
	var children []pith.Node
	for c := n.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &node{n: c, doc: n.doc})
		}
	}
	return children
}

// Find returns descendants matching the CSS selector in document order.
// The node itself is never included.
func (n *node) Find(selector string) ([]pith.Node, error) {
	m, err := compileSelector(selector)
	if err != nil {
		return nil, err
	}
	sel := goquery.NewDocumentFromNode(n.n).FindMatcher(m)
	return n.doc.wrapNodes(sel.Nodes), nil
}

// Is reports whether the node matches the CSS selector. Invalid selectors
// match nothing.
func (n *node) Is(selector string) bool {
	m, err := compileSelector(selector)
	if err != nil {
		return false
	}
	return m.Match(n.n)
}

// Closest returns the nearest ancestor-or-self matching the selector.
func (n *node) Closest(selector string) (pith.Node, bool) {
	m, err := compileSelector(selector)
	if err != nil {
		return nil, false
	}
	for cur := n.n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		if m.Match(cur) {
			return &node{n: cur, doc: n.doc}, true
		}
	}
	return nil, false
}

// SameNode reports whether other wraps the same underlying element.
func (n *node) SameNode(other pith.Node) bool {
	o, ok := other.(*node)
	return ok && o.n == n.n
}

// Remove detaches the node from the tree. Bounds of remaining nodes are
// recomputed on next use.
func (n *node) Remove() {
	if n.n.Parent != nil {
		n.n.Parent.RemoveChild(n.n)
		n.doc.layout.invalidate()
	}
}

// Bounds returns the node's synthetic layout rectangle.
func (n *node) Bounds() pith.Rect {
	return n.doc.bounds(n.n)
}

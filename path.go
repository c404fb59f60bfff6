package pith

import (
	"fmt"
	"slices"
	"strings"
)

// NodePath returns a CSS-like selector path identifying n within its
// document, for example "#content > div.post-body > p:nth-child(3)". An
// element with an id anchors the path; otherwise segments accumulate up to
// the body element.
func NodePath(n Node) string {
	var segments []string
	cur := n
	for {
		seg, anchored := pathSegment(cur)
		segments = append(segments, seg)
		if anchored {
			break
		}
		parent, ok := cur.Parent()
		if !ok || parent.Tag() == "body" || parent.Tag() == "html" {
			break
		}
		cur = parent
	}
	slices.Reverse(segments)
	return strings.Join(segments, " > ")
}

// pathSegment renders one path element. The second return reports whether
// the segment anchors the path (an id is unique enough on its own).
func pathSegment(n Node) (string, bool) {
	if id, ok := n.Attr("id"); ok && id != "" {
		return "#" + id, true
	}

	var sb strings.Builder
	sb.WriteString(n.Tag())

	if class, ok := n.Attr("class"); ok {
		classes := strings.Fields(class)
		if len(classes) > 2 {
			classes = classes[:2]
		}
		for _, c := range classes {
			sb.WriteString(".")
			sb.WriteString(c)
		}
	}

	if pos, ambiguous := childPosition(n); ambiguous {
		fmt.Fprintf(&sb, ":nth-child(%d)", pos)
	}
	return sb.String(), false
}

// childPosition returns n's 1-based position among its parent's element
// children and whether the position is needed to disambiguate same-tag
// siblings.
func childPosition(n Node) (int, bool) {
	parent, ok := n.Parent()
	if !ok {
		return 0, false
	}

	pos := 0
	sameTag := 0
	for i, c := range parent.Children() {
		if c.Tag() == n.Tag() {
			sameTag++
		}
		if c.SameNode(n) {
			pos = i + 1
		}
	}
	return pos, sameTag > 1 && pos > 0
}

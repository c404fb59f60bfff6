package detect

import (
	"github.com/fwojciec/pith"
)

// Tables returns the data tables of doc with caption, header cells and
// body rows flattened to text. Layout tables inside excluded chrome are
// skipped.
func (d *Detector) Tables(doc pith.Document) []pith.Table {
	nodes, err := doc.Find("table")
	if err != nil {
		return nil
	}

	var out []pith.Table
	for _, tn := range nodes {
		if _, hit := tn.Closest(exclusionSelector); hit {
			continue
		}

		t := pith.Table{Caption: childText(tn, "caption")}

		headers, err := tn.Find("thead th")
		if err == nil && len(headers) == 0 {
			headers, _ = tn.Find("tr:first-child th")
		}
		for _, th := range headers {
			t.Headers = append(t.Headers, collapseSpace(th.Text()))
		}

		rows, err := tn.Find("tr")
		if err != nil {
			continue
		}
		for _, row := range rows {
			cells, err := row.Find("td")
			if err != nil || len(cells) == 0 {
				continue
			}
			r := make([]string, 0, len(cells))
			for _, c := range cells {
				r = append(r, collapseSpace(c.Text()))
			}
			t.Rows = append(t.Rows, r)
		}

		if len(t.Headers) > 0 || len(t.Rows) > 0 {
			out = append(out, t)
		}
	}
	return out
}

// Lists returns the top-level lists of doc. Nested lists contribute their
// text to the enclosing item rather than appearing separately.
func (d *Detector) Lists(doc pith.Document) []pith.List {
	nodes, err := doc.Find("ul, ol")
	if err != nil {
		return nil
	}

	var out []pith.List
	for _, ln := range nodes {
		if _, hit := ln.Closest(exclusionSelector); hit {
			continue
		}
		if parent, ok := ln.Parent(); ok {
			if _, nested := parent.Closest("ul, ol"); nested {
				continue
			}
		}

		var items []string
		for _, c := range ln.Children() {
			if c.Tag() != "li" {
				continue
			}
			if t := collapseSpace(c.Text()); t != "" {
				items = append(items, t)
			}
		}
		if len(items) > 0 {
			out = append(out, pith.List{Ordered: ln.Tag() == "ol", Items: items})
		}
	}
	return out
}

// Embeds returns embedded media references: iframes, video, audio and
// plugin objects. Elements without a resolvable source are skipped.
func (d *Detector) Embeds(doc pith.Document) []pith.Embed {
	nodes, err := doc.Find("iframe, video, audio, embed, object")
	if err != nil {
		return nil
	}

	var out []pith.Embed
	for _, n := range nodes {
		src, _ := n.Attr("src")
		if src == "" {
			src, _ = n.Attr("data")
		}
		if src == "" {
			if sources, err := n.Find("source"); err == nil && len(sources) > 0 {
				src, _ = sources[0].Attr("src")
			}
		}
		if src == "" {
			continue
		}
		title, _ := n.Attr("title")
		out = append(out, pith.Embed{Type: n.Tag(), Src: src, Title: title})
	}
	return out
}

// childText returns the collapsed text of the first matching descendant.
func childText(n pith.Node, selector string) string {
	nodes, err := n.Find(selector)
	if err != nil || len(nodes) == 0 {
		return ""
	}
	return collapseSpace(nodes[0].Text())
}

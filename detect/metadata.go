package detect

import (
	"encoding/json"
	"strings"

	"github.com/fwojciec/pith"
)

// Title picks the page title. A top-level heading inside the content
// container wins over Open Graph metadata, which wins over the <title>
// element.
func (d *Detector) Title(doc pith.Document) string {
	if container, ok := selectContainer(doc); ok {
		if hs, err := container.Find("h1"); err == nil && len(hs) > 0 {
			if t := collapseSpace(hs[0].Text()); t != "" {
				return t
			}
		}
	}
	if t := metaContent(doc, `meta[property="og:title"]`); t != "" {
		return t
	}
	return collapseSpace(doc.Title())
}

// Metadata assembles document metadata from meta tags, link elements and
// byline conventions. Missing fields stay empty.
func (d *Detector) Metadata(doc pith.Document) pith.ContentMetadata {
	md := pith.ContentMetadata{
		Author: firstNonEmpty(
			metaContent(doc, `meta[name="author"]`),
			metaContent(doc, `meta[property="article:author"]`),
			firstText(doc, ".author", ".byline", "[rel='author']"),
		),
		Description: firstNonEmpty(
			metaContent(doc, `meta[name="description"]`),
			metaContent(doc, `meta[property="og:description"]`),
		),
		Published: firstNonEmpty(
			metaContent(doc, `meta[property="article:published_time"]`),
			attrOfFirst(doc, "time[datetime]", "datetime"),
		),
		Modified:     metaContent(doc, `meta[property="article:modified_time"]`),
		SiteName:     metaContent(doc, `meta[property="og:site_name"]`),
		CanonicalURL: attrOfFirst(doc, `link[rel="canonical"]`, "href"),
		ImageURL: firstNonEmpty(
			metaContent(doc, `meta[property="og:image"]`),
			metaContent(doc, `meta[name="twitter:image"]`),
		),
		Language: htmlLang(doc),
	}

	if kw := metaContent(doc, `meta[name="keywords"]`); kw != "" {
		for _, k := range strings.Split(kw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				md.Keywords = append(md.Keywords, k)
			}
		}
	}
	return md
}

// StructuredData returns every JSON-LD object embedded in the document,
// flattening top-level arrays. Unparseable blocks are skipped.
func (d *Detector) StructuredData(doc pith.Document) []map[string]any {
	nodes, err := doc.Find(`script[type="application/ld+json"]`)
	if err != nil {
		return nil
	}

	var out []map[string]any
	for _, n := range nodes {
		var v any
		if err := json.Unmarshal([]byte(strings.TrimSpace(n.Text())), &v); err != nil {
			continue
		}
		switch t := v.(type) {
		case map[string]any:
			out = append(out, t)
		case []any:
			for _, item := range t {
				if m, ok := item.(map[string]any); ok {
					out = append(out, m)
				}
			}
		}
	}
	return out
}

func metaContent(doc pith.Document, selector string) string {
	return attrOfFirst(doc, selector, "content")
}

func attrOfFirst(doc pith.Document, selector, attr string) string {
	nodes, err := doc.Find(selector)
	if err != nil || len(nodes) == 0 {
		return ""
	}
	v, _ := nodes[0].Attr(attr)
	return strings.TrimSpace(v)
}

func firstText(doc pith.Document, selectors ...string) string {
	for _, sel := range selectors {
		nodes, err := doc.Find(sel)
		if err != nil || len(nodes) == 0 {
			continue
		}
		if t := collapseSpace(nodes[0].Text()); t != "" {
			return t
		}
	}
	return ""
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func htmlLang(doc pith.Document) string {
	v, _ := doc.Root().Attr("lang")
	return strings.TrimSpace(v)
}

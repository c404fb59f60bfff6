// Package detect implements generic main-content detection: container
// selection, leaf-most block traversal, paragraph materialization and the
// merge pass that reassembles paragraphs split by inline markup.
package detect

import (
	"regexp"
	"strings"

	"github.com/fwojciec/pith"
)

var _ pith.Detector = (*Detector)(nil)

// Detector finds content paragraphs in documents no adapter claims.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// minAcceptChars is the traversal acceptance floor: an element qualifies
// as a content block only above it.
const minAcceptChars = 20

// containerSelectors are the ranked content-container candidates. Rank
// breaks score ties.
var containerSelectors = []string{
	"main",
	"article",
	"[role='main']",
	"#content",
	"#main-content",
	".content",
	".main-content",
	".article-body",
	".article-content",
	".post-content",
	".post-body",
	".entry-content",
	".story-body",
}

// flatScanSelector drives the fallback pass when no container candidate
// exists.
const flatScanSelector = "p, blockquote, pre, h1, h2, h3, h4, h5, h6, li, td, dd"

// exclusionSelector matches subtrees that never contribute content.
const exclusionSelector = "script, style, noscript, template, nav, header, footer, aside, form, " +
	"[role='navigation'], [role='banner'], [role='contentinfo'], " +
	".nav, .navbar, .menu, .sidebar, .widget, " +
	".ad, .ads, .advertisement, .comments, #comments, .comment, " +
	".share, .social, .related"

// Detect returns the content paragraphs of doc in reading order. An empty
// or content-free document yields an empty slice, never an error.
func (d *Detector) Detect(doc pith.Document, opts *pith.ExtractionOptions) ([]pith.Paragraph, error) {
	if opts == nil {
		opts = pith.DefaultExtractionOptions()
	}
	var nodes []pith.Node
	if container, ok := selectContainer(doc); ok {
		nodes = walkContainer(container, opts.MinParagraphLength)
	} else {
		var err error
		nodes, err = flatScan(doc, opts.MinParagraphLength)
		if err != nil {
			return nil, err
		}
	}

	paragraphs := make([]pith.Paragraph, 0, len(nodes))
	for _, n := range nodes {
		paragraphs = append(paragraphs, materialize(n, opts))
	}
	return pith.MergeParagraphs(paragraphs), nil
}

// selectContainer scores every container candidate by
// textLength × (1 − linkDensity) and returns the best one. Link density is
// the share of text that lives inside anchors, so link farms lose to prose
// even when they carry more raw text.
func selectContainer(doc pith.Document) (pith.Node, bool) {
	var (
		best      pith.Node
		bestScore float64
	)
	for _, sel := range containerSelectors {
		nodes, err := doc.Find(sel)
		if err != nil {
			continue
		}
		for _, n := range nodes {
			// Strict comparison keeps the earlier, higher-ranked candidate
			// on ties.
			if score := containerScore(n); score > bestScore {
				best, bestScore = n, score
			}
		}
	}
	return best, best != nil
}

func containerScore(n pith.Node) float64 {
	textLen := len(strings.TrimSpace(n.Text()))
	if textLen == 0 {
		return 0
	}
	anchorLen := 0
	if anchors, err := n.Find("a"); err == nil {
		for _, a := range anchors {
			anchorLen += len(strings.TrimSpace(a.Text()))
		}
	}
	density := float64(anchorLen) / float64(textLen)
	return float64(textLen) * (1 - density)
}

// walkContainer collects leaf-most content blocks under container. An
// element is accepted when it qualifies and none of its children qualify
// on their own; excluded subtrees are pruned wholesale.
func walkContainer(container pith.Node, minLen int) []pith.Node {
	var out []pith.Node
	walk(container, minLen, &out)
	return out
}

func walk(n pith.Node, minLen int, out *[]pith.Node) {
	if excluded(n) {
		return
	}
	if !qualifies(n, minLen) {
		return
	}

	descend := false
	children := n.Children()
	for _, c := range children {
		if !excluded(c) && qualifies(c, minLen) {
			descend = true
			break
		}
	}
	if !descend {
		*out = append(*out, n)
		return
	}
	for _, c := range children {
		walk(c, minLen, out)
	}
}

// flatScan is the containerless fallback: a document-order sweep over
// paragraph-like elements, keeping only outermost matches outside excluded
// subtrees.
func flatScan(doc pith.Document, minLen int) ([]pith.Node, error) {
	nodes, err := doc.Find(flatScanSelector)
	if err != nil {
		return nil, err
	}
	var out []pith.Node
	for _, n := range nodes {
		if !qualifies(n, minLen) {
			continue
		}
		if _, hit := n.Closest(exclusionSelector); hit {
			continue
		}
		if parent, ok := n.Parent(); ok {
			if _, nested := parent.Closest(flatScanSelector); nested {
				continue
			}
		}
		out = append(out, n)
	}
	return out, nil
}

func excluded(n pith.Node) bool {
	return n.Is(exclusionSelector)
}

func qualifies(n pith.Node, minLen int) bool {
	l := len(collapseSpace(n.Text()))
	return l > minAcceptChars && l >= minLen
}

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style>`)
)

// materialize converts an accepted element into a Paragraph. Importance is
// computed only when scoring is requested.
func materialize(n pith.Node, opts *pith.ExtractionOptions) pith.Paragraph {
	text := collapseSpace(n.Text())

	markup, err := n.HTML()
	if err != nil {
		markup = ""
	}
	markup = styleBlockRe.ReplaceAllString(scriptBlockRe.ReplaceAllString(markup, ""), "")

	tag := n.Tag()
	class, _ := n.Attr("class")
	class = strings.ToLower(class)
	role, _ := n.Attr("role")

	level := headingLevel(tag)
	p := pith.Paragraph{
		Text:        text,
		HTML:        markup,
		ElementPath: pith.NodePath(n),
		Bounds:      n.Bounds(),
		IsQuote: tag == "blockquote" || tag == "q" || role == "blockquote" ||
			strings.Contains(class, "quote"),
		IsCode: tag == "pre" || tag == "code" ||
			strings.Contains(class, "highlight") || strings.Contains(class, "code"),
		IsHeading:    level > 0,
		HeadingLevel: level,
	}

	if opts.ScoreParagraphs {
		anchorCount := 0
		if anchors, err := n.Find("a"); err == nil {
			anchorCount = len(anchors)
		}
		_, inArticle := n.Closest("article")
		p.Importance = pith.ScoreImportance(pith.ImportanceSignals{
			TextLength:    len(text),
			WordCount:     pith.CountWords(text),
			AnchorCount:   anchorCount,
			Top:           p.Bounds.Top,
			InsideArticle: inArticle,
			Tag:           tag,
			IsQuote:       p.IsQuote,
			IsCode:        p.IsCode,
		})
	}
	return p
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

// collapseSpace trims s and collapses whitespace runs to single spaces.
func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

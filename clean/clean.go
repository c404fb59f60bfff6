// Package clean strips boilerplate from parsed documents ahead of
// paragraph detection. Passes run in a fixed order: category removals,
// attribute cleanup, media removal, empty-element pruning, hidden-element
// removal, then optional aggressive pruning.
package clean

import (
	"log/slog"
	"strings"

	"github.com/fwojciec/pith"
)

var _ pith.Cleaner = (*Cleaner)(nil)

// Cleaner removes boilerplate from documents.
type Cleaner struct {
	// Logger receives notes about skipped selectors. Nil uses the process
	// default.
	Logger *slog.Logger
}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

func (c *Cleaner) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// Clean returns a cleaned deep copy of doc. The input document is never
// mutated. Invalid selectors, built-in or caller-supplied, are skipped
// without aborting the pass.
func (c *Cleaner) Clean(doc pith.Document, opts pith.CleaningOptions) (pith.Document, error) {
	cleaned, err := doc.Clone()
	if err != nil {
		return nil, err
	}

	p := &pass{c: c, doc: cleaned, keep: c.keepRoots(cleaned, opts.KeepSelectors)}

	p.categories(opts)
	p.attributes()
	p.media(opts)
	p.pruneEmpty()
	p.removeHidden()
	if opts.Aggressive {
		p.aggressive()
	}
	return cleaned, nil
}

// keepRoots resolves KeepSelectors into concrete protected nodes.
func (c *Cleaner) keepRoots(doc pith.Document, selectors []string) *protector {
	p := &protector{}
	for _, sel := range selectors {
		nodes, err := doc.Find(sel)
		if err != nil {
			c.logger().Debug("skipping invalid keep selector", "selector", sel, "err", err)
			continue
		}
		p.roots = append(p.roots, nodes...)
	}
	return p
}

// pass holds the state of one cleaning run over one document.
type pass struct {
	c    *Cleaner
	doc  pith.Document
	keep *protector

	// flagged collects nodes whose hidden markers (inline display:none,
	// the hidden attribute) were observed during attribute cleanup, which
	// strips that evidence before the hidden pass runs.
	flagged []pith.Node
}

// categories applies the per-category selector lists. Script and social
// removal are unconditional; the rest honor their toggles. Caller-supplied
// RemoveSelectors run last.
func (p *pass) categories(opts pith.CleaningOptions) {
	groups := []struct {
		enabled   bool
		selectors []string
	}{
		{true, scriptSelectors},
		{true, socialSelectors},
		{opts.RemoveAds, adSelectors},
		{opts.RemoveNavigation, navigationSelectors},
		{opts.RemoveComments, commentSelectors},
		{opts.RemoveRelated, relatedSelectors},
		{opts.RemoveFooters, footerSelectors},
		{opts.RemoveSidebars, sidebarSelectors},
		{opts.RemovePopups, popupSelectors},
		{opts.RemoveCookieBanners, cookieSelectors},
		{opts.RemoveNewsletters, newsletterSelectors},
	}
	for _, g := range groups {
		if !g.enabled {
			continue
		}
		for _, sel := range g.selectors {
			p.remove(sel)
		}
	}
	for _, sel := range opts.RemoveSelectors {
		p.remove(sel)
	}
}

// attributes drops attributes outside the allowlist and filters junk class
// names. Hidden markers are flagged for the later hidden pass before they
// are stripped.
func (p *pass) attributes() {
	nodes, err := p.doc.Find("*")
	if err != nil {
		return
	}
	for _, n := range nodes {
		if hiddenByAttrs(n) {
			p.flagged = append(p.flagged, n)
		}
		for _, a := range n.Attrs() {
			if allowedAttrs[a.Key] || strings.HasPrefix(a.Key, "aria-") {
				continue
			}
			n.RemoveAttr(a.Key)
		}
		if class, ok := n.Attr("class"); ok {
			scrubbed := scrubClasses(class)
			switch {
			case scrubbed == "":
				n.RemoveAttr("class")
			case scrubbed != class:
				n.SetAttr("class", scrubbed)
			}
		}
	}
}

// hiddenByAttrs reports whether an element's own attributes mark it as
// invisible.
func hiddenByAttrs(n pith.Node) bool {
	if _, ok := n.Attr("hidden"); ok {
		return true
	}
	style, ok := n.Attr("style")
	if !ok {
		return false
	}
	style = strings.ToLower(strings.ReplaceAll(style, " ", ""))
	return strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden")
}

// scrubClasses filters junk class names, preserving the order of the rest.
func scrubClasses(class string) string {
	var kept []string
	for _, name := range strings.Fields(class) {
		if junkClass(name) {
			continue
		}
		kept = append(kept, name)
	}
	return strings.Join(kept, " ")
}

func junkClass(name string) bool {
	for _, re := range junkClassPatterns {
		if re.MatchString(name) {
			return true
		}
	}
	return false
}

// media removes embedded media not covered by a preserve flag.
func (p *pass) media(opts pith.CleaningOptions) {
	if !opts.PreserveImages {
		p.remove("img")
		p.remove("picture")
	}
	if !opts.PreserveVideos {
		p.remove("video")
		p.remove("audio")
	}
	if !opts.PreserveIframes {
		p.remove("iframe")
		p.remove("embed")
		p.remove("object")
	}
}

// pruneEmpty removes block-level elements with no text, no media and no
// structural children, repeating until a fixed point because removing an
// empty wrapper can empty its parent.
func (p *pass) pruneEmpty() {
	for {
		nodes, err := p.doc.Find(emptyPruneSelector)
		if err != nil {
			return
		}
		removed := 0
		for _, n := range nodes {
			if p.keep.protected(n) {
				continue
			}
			if strings.TrimSpace(n.Text()) != "" {
				continue
			}
			if kids, err := n.Find(structuralChildSelector); err == nil && len(kids) > 0 {
				continue
			}
			n.Remove()
			removed++
		}
		if removed == 0 {
			return
		}
	}
}

// removeHidden drops elements flagged during attribute cleanup, elements
// with hidden class conventions, and zero-sized elements. Zero-sized
// images are kept; sizes on lazy-loaded images are unreliable.
func (p *pass) removeHidden() {
	for _, n := range p.flagged {
		if !p.keep.protected(n) {
			n.Remove()
		}
	}

	p.remove(hiddenClassSelector)

	nodes, err := p.doc.Find(`[width="0"], [height="0"]`)
	if err != nil {
		return
	}
	for _, n := range nodes {
		if n.Is("img, picture, source") {
			continue
		}
		if !p.keep.protected(n) {
			n.Remove()
		}
	}
}

// aggressive drops leftover chrome: short bare divs, stray anchors outside
// prose, and promotional class patterns.
func (p *pass) aggressive() {
	divs, err := p.doc.Find("div")
	if err == nil {
		for _, n := range divs {
			if p.keep.protected(n) {
				continue
			}
			if len(strings.TrimSpace(n.Text())) >= 50 {
				continue
			}
			if kids, err := n.Find(structuralChildSelector + ", p, h1, h2, h3, h4, h5, h6, blockquote"); err == nil && len(kids) > 0 {
				continue
			}
			n.Remove()
		}
	}

	anchors, err := p.doc.Find("a")
	if err == nil {
		for _, n := range anchors {
			if p.keep.protected(n) {
				continue
			}
			if len(strings.TrimSpace(n.Text())) >= 20 {
				continue
			}
			if _, inProse := n.Closest("p, li"); inProse {
				continue
			}
			n.Remove()
		}
	}

	p.remove(promoSelector)
}

// remove drops every unprotected element matching sel. Invalid selectors
// are logged and skipped.
func (p *pass) remove(sel string) {
	nodes, err := p.doc.Find(sel)
	if err != nil {
		p.c.logger().Debug("skipping invalid selector", "selector", sel, "err", err)
		return
	}
	for _, n := range nodes {
		if p.keep.protected(n) {
			continue
		}
		n.Remove()
	}
}

// protector tracks the subtrees shielded from removal by KeepSelectors. A
// node is protected when it is a keep root, contains one, or sits inside
// one.
type protector struct {
	roots []pith.Node
}

func (p *protector) protected(n pith.Node) bool {
	for _, root := range p.roots {
		if n.SameNode(root) || isAncestorOf(n, root) || isAncestorOf(root, n) {
			return true
		}
	}
	return false
}

// isAncestorOf reports whether a is a strict ancestor of b.
func isAncestorOf(a, b pith.Node) bool {
	cur := b
	for {
		parent, ok := cur.Parent()
		if !ok {
			return false
		}
		if parent.SameNode(a) {
			return true
		}
		cur = parent
	}
}

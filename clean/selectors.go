package clean

import "regexp"

// Boilerplate selector lists, one per removable category. Lists target the
// id/class conventions that recur across publishing platforms; matching is
// best effort and an unmatched selector costs nothing.
var (
	scriptSelectors = []string{
		"script", "style", "noscript", "template", "link[rel='stylesheet']",
	}

	socialSelectors = []string{
		".social", ".social-share", ".social-links", ".share",
		".share-buttons", ".sharing", ".follow-us", ".addthis_toolbox",
		"[class*='share-button']",
	}

	adSelectors = []string{
		".ad", ".ads", ".advert", ".advertisement", ".ad-banner",
		".ad-container", ".ad-wrapper", "ins.adsbygoogle",
		"[id^='google_ads']", "[data-ad-slot]", "[class*='sponsored']",
	}

	navigationSelectors = []string{
		"nav", "[role='navigation']", ".nav", ".navbar", ".navigation",
		".menu", ".breadcrumb", ".breadcrumbs", ".pagination", ".pager",
		"#navigation", ".skip-link",
	}

	commentSelectors = []string{
		"#comments", ".comments", ".comment-section", ".comment-list",
		"#disqus_thread", ".disqus", ".livefyre",
	}

	relatedSelectors = []string{
		".related", ".related-posts", ".related-articles", ".recommended",
		".read-next", ".more-stories", ".outbrain", ".taboola",
		"[data-module='related']",
	}

	footerSelectors = []string{
		"footer", "[role='contentinfo']", ".footer", "#footer",
		".site-footer", ".page-footer",
	}

	sidebarSelectors = []string{
		"aside", "[role='complementary']", ".sidebar", "#sidebar",
		".side-bar", ".widget-area", ".rail",
	}

	popupSelectors = []string{
		".popup", ".modal", ".overlay", ".lightbox", ".interstitial",
		"[role='dialog']", ".popover",
	}

	cookieSelectors = []string{
		".cookie-banner", ".cookie-notice", ".cookie-consent",
		"#cookie-banner", "#onetrust-banner-sdk", ".consent-banner",
		".gdpr", ".cc-window",
	}

	newsletterSelectors = []string{
		".newsletter", ".newsletter-signup", ".subscribe", ".subscription",
		".email-signup", ".signup-form", "[class*='newsletter']",
	}
)

// allowedAttrs is the attribute allowlist applied to every element. aria-*
// attributes are allowed by prefix.
var allowedAttrs = map[string]bool{
	"alt": true, "cite": true, "class": true, "data-src": true,
	"datetime": true, "dir": true, "height": true, "href": true,
	"id": true, "lang": true, "src": true, "title": true, "width": true,
}

// junkClassPatterns match class names that encode build-tool or UI-state
// conventions rather than document semantics.
var junkClassPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^js-`),
	regexp.MustCompile(`^is-`),
	regexp.MustCompile(`^has-`),
	regexp.MustCompile(`^css-`),
	regexp.MustCompile(`-\d+$`),
}

// hiddenClassSelector matches class conventions for visually hidden or
// screen-reader-only elements.
const hiddenClassSelector = ".hidden, .hide, .invisible, .sr-only, .visually-hidden, .screen-reader-text, .d-none"

// promoSelector matches the promotional chrome dropped in aggressive mode.
const promoSelector = "[class*='banner'], [class*='promo'], [class*='sponsor'], [class*='widget'], [id*='banner'], [id*='promo']"

// emptyPruneSelector lists the block-level elements subject to
// empty-element pruning.
const emptyPruneSelector = "p, div, section, article, aside, header, footer, li, ul, ol, figure, figcaption, blockquote, h1, h2, h3, h4, h5, h6, table"

// structuralChildSelector matches content-bearing descendants that keep an
// otherwise empty or short element alive.
const structuralChildSelector = "table, ul, ol, dl, pre, code, img, picture, video, audio, iframe, embed, object, svg, canvas"

// Package rod provides a pith.Fetcher that renders pages in headless
// Chrome, for JavaScript applications whose content never appears in the
// raw server response.
package rod

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/fwojciec/pith"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements pith.Fetcher at compile time.
var _ pith.Fetcher = (*Fetcher)(nil)

// serializeScript renders the document to HTML including open shadow
// roots, which the plain outerHTML serialization omits. Web-component
// sites keep article bodies and navigation inside shadow DOM.
const serializeScript = `() => {
	const serialize = (root) => {
		let out = "";
		for (const node of root.childNodes) {
			if (node.nodeType === Node.ELEMENT_NODE) {
				const clone = node.cloneNode(false);
				let inner = "";
				if (node.shadowRoot) {
					inner += serialize(node.shadowRoot);
				}
				inner += serialize(node);
				clone.innerHTML = inner;
				out += clone.outerHTML;
			} else if (node.nodeType === Node.TEXT_NODE) {
				out += node.textContent;
			} else if (node.nodeType === Node.COMMENT_NODE) {
				out += "<!--" + node.textContent + "-->";
			}
		}
		return out;
	};
	const doctype = document.doctype ? "<!DOCTYPE " + document.doctype.name + ">" : "";
	const html = document.documentElement;
	const clone = html.cloneNode(false);
	clone.innerHTML = serialize(html);
	return doctype + clone.outerHTML;
}`

// Fetcher retrieves rendered HTML from URLs using Chrome browser
// automation. The underlying browser is recycled after a fixed number of
// pages to cap memory growth. Fetcher is safe for concurrent use by
// multiple goroutines.
type Fetcher struct {
	manager  *BrowserManager
	timeout  time.Duration
	maxPages int64
	closed   atomic.Bool
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout bounds each Fetch call. Zero means only the caller's
// context limits the fetch.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxPagesPerBrowser sets how many pages are rendered before the
// underlying browser is recycled. Defaults to DefaultMaxPages.
func WithMaxPagesPerBrowser(n int64) Option {
	return func(f *Fetcher) {
		f.maxPages = n
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{}
	for _, opt := range opts {
		opt(f)
	}

	var managerOpts []ManagerOption
	if f.maxPages > 0 {
		managerOpts = append(managerOpts, WithMaxPages(f.maxPages))
	}

	manager, err := NewBrowserManager(managerOpts...)
	if err != nil {
		return nil, err
	}
	f.manager = manager

	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if f.closed.Load() {
		return "", pith.Errorf(pith.EINVALID, "fetcher closed")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.manager.Browser().Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", err
	}
	defer page.Close()

	// Set context for all subsequent operations
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", err
	}
	if err := page.WaitLoad(); err != nil {
		return "", err
	}

	html, err := renderHTML(page)
	if err != nil {
		return "", err
	}

	f.manager.IncrementPageCount()
	return html, nil
}

// renderHTML serializes the page including open shadow roots, falling back
// to the plain document HTML when evaluation fails.
func renderHTML(page *rod.Page) (string, error) {
	obj, err := page.Eval(serializeScript)
	if err != nil {
		return page.HTML()
	}
	return obj.Value.Str(), nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (f *Fetcher) Close() error {
	if !f.closed.CompareAndSwap(false, true) {
		return nil
	}
	return f.manager.Close()
}

// LauncherPID returns the process ID of the browser launcher. It exists to
// verify process cleanup in tests.
func (f *Fetcher) LauncherPID() int {
	return f.manager.LauncherPID()
}

// Package http provides HTTP-based implementations of pith.Fetcher and
// pith.SitemapService for static sites that don't require JavaScript
// rendering.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/pith"
	"golang.org/x/time/rate"
)

// DefaultUserAgent identifies the fetcher to origin servers.
const DefaultUserAgent = "pith/1.0 (+https://github.com/fwojciec/pith)"

// Ensure Fetcher implements pith.Fetcher at compile time.
var _ pith.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves HTML content from URLs using plain HTTP requests.
// Unlike rod.Fetcher, this does not execute JavaScript and is suitable
// for static sites only.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	userAgent   string
	limiter     *rate.Limiter
	retryDelays []time.Duration
}

// DefaultRetryDelays returns the backoff delays used when retries are
// enabled without explicit delays: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to pith.DefaultFetchTimeout if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent sets the User-Agent header sent with each request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithRateLimit throttles outgoing requests to n per second as a politeness
// measure. This is independent of the per-origin quota the extraction
// service enforces; it bounds the raw request rate of this fetcher.
func WithRateLimit(n float64) Option {
	return func(f *Fetcher) {
		f.limiter = rate.NewLimiter(rate.Limit(n), 1)
	}
}

// WithRetries enables retrying transient failures (ETIMEOUT, EUNAVAILABLE,
// ERATELIMIT) with backoff, one delay per retry. With no delays it uses
// DefaultRetryDelays. Short explicit delays keep tests fast.
func WithRetries(delays ...time.Duration) Option {
	return func(f *Fetcher) {
		if len(delays) == 0 {
			delays = DefaultRetryDelays()
		}
		f.retryDelays = delays
	}
}

// WithClient substitutes the underlying HTTP client, primarily for tests.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   pith.DefaultFetchTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.client == nil {
		f.client = &http.Client{
			Timeout: f.timeout,
		}
	}

	return f
}

// Fetch retrieves the HTML content from the given URL.
//
// Status codes map onto the application error taxonomy: 404 and 410 yield
// ENOTFOUND, 429 yields ERATELIMIT, everything else non-200 yields
// EUNAVAILABLE. Transport failures yield EUNAVAILABLE, deadline overruns
// ETIMEOUT. Transient failures are retried when WithRetries is configured;
// ENOTFOUND and EINVALID never retry.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	markup, err := f.fetchOnce(ctx, url)
	for attempt := 0; err != nil && retryable(err) && attempt < len(f.retryDelays); attempt++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(f.retryDelays[attempt]):
		}
		markup, err = f.fetchOnce(ctx, url)
	}
	return markup, err
}

func (f *Fetcher) fetchOnce(ctx context.Context, url string) (string, error) {
	if f.limiter != nil {
		if err := f.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", pith.Errorf(pith.EINVALID, "invalid url %s: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", transportError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", statusError(resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", pith.Errorf(pith.EUNAVAILABLE, "read %s: %v", url, err)
	}

	return string(body), nil
}

// Close releases resources. For HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}

// retryable reports whether a failure might clear on its own: timeouts,
// transport errors, and over-quota responses. Missing pages and bad input
// will not improve with repetition.
func retryable(err error) bool {
	switch pith.ErrorCode(err) {
	case pith.ETIMEOUT, pith.EUNAVAILABLE, pith.ERATELIMIT:
		return true
	}
	return false
}

func transportError(url string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return pith.Errorf(pith.ETIMEOUT, "fetch %s: %v", url, err)
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return pith.Errorf(pith.ETIMEOUT, "fetch %s: %v", url, err)
	}
	return pith.Errorf(pith.EUNAVAILABLE, "fetch %s: %v", url, err)
}

func statusError(code int, url string) error {
	switch code {
	case http.StatusNotFound, http.StatusGone:
		return pith.Errorf(pith.ENOTFOUND, "HTTP %d for %s", code, url)
	case http.StatusTooManyRequests:
		return pith.Errorf(pith.ERATELIMIT, "HTTP %d for %s", code, url)
	}
	return pith.Errorf(pith.EUNAVAILABLE, "HTTP %d for %s", code, url)
}

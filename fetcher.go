package pith

import "context"

// Fetcher retrieves page markup for extraction. The plain HTTP
// implementation covers server-rendered sites; the browser-backed one
// exists for pages that only materialize after JavaScript runs.
type Fetcher interface {
	// Fetch returns the markup at url. Cancellation and deadlines come
	// from ctx.
	Fetch(ctx context.Context, url string) (markup string, err error)

	// Close releases any resources held by the fetcher, such as a
	// browser process. Safe to call more than once.
	Close() error
}

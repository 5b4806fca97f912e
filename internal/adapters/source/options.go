package source

import (
	"net/http"
	"time"

	"github.com/okian/warboard/pkg/logger"
)

// Option applies a configuration option to the Cache.
type Option func(*Cache)

// WithExpiration sets the maximum file age before a refetch. Non-positive
// values are ignored.
func WithExpiration(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.expiration = d
		}
	}
}

// WithClock overrides the time source used for age checks.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger sets a custom logger for the cache.
func WithLogger(l logger.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// FetcherOption applies a configuration option to the HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *HTTPFetcher) {
		if d > 0 {
			f.client.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying client.
func WithHTTPClient(client *http.Client) FetcherOption {
	return func(f *HTTPFetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithURL maps a cache key to the URL it is fetched from.
func WithURL(key, url string) FetcherOption {
	return func(f *HTTPFetcher) {
		if key != "" && url != "" {
			f.urls[key] = url
		}
	}
}

// Package source acquires raw record files through a file cache with a
// time-to-live and splits them into header and rows.
package source

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/okian/warboard/pkg/logger"
	"github.com/okian/warboard/pkg/metrics"
)

// DefaultExpiration is the file age after which a cached file is refetched.
const DefaultExpiration = 7 * 24 * time.Hour

// Fetcher retrieves fresh bytes for a key.
type Fetcher interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, key string) ([]byte, error)

// Fetch calls f.
func (f FetcherFunc) Fetch(ctx context.Context, key string) ([]byte, error) { return f(ctx, key) }

// Cache is a write-through file cache. A file is refetched when it is absent
// or its age is strictly greater than the expiration.
type Cache struct {
	dir        string
	expiration time.Duration
	fetcher    Fetcher
	now        func() time.Time
	logger     logger.Logger

	// mu guards locks. Each key has its own lock so different keys load
	// concurrently and the same key is fetched at most once at a time.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewCache creates dir if needed and returns a cache backed by fetcher.
func NewCache(dir string, fetcher Fetcher, opts ...Option) (*Cache, error) {
	if fetcher == nil {
		return nil, errors.New("source: nil fetcher")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	c := &Cache{
		dir:        dir,
		expiration: DefaultExpiration,
		fetcher:    fetcher,
		now:        time.Now,
		locks:      make(map[string]*sync.Mutex),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = logger.Get().Named("source-cache")
	}
	return c, nil
}

// Load returns the cached bytes for key, refreshing the file first when it
// is missing or expired.
func (c *Cache) Load(ctx context.Context, key string) ([]byte, error) {
	path, err := c.path(key)
	if err != nil {
		return nil, err
	}

	lock := c.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	cause, err := c.staleness(path)
	if err != nil {
		return nil, err
	}
	if cause == "" {
		metrics.RecordCacheHit(key)
		c.logger.Debug(ctx, "cache hit", logger.String("key", key))
		return os.ReadFile(path)
	}

	metrics.RecordCacheMiss(key, cause)
	c.logger.Info(ctx, "refreshing cached file",
		logger.String("key", key),
		logger.String("cause", cause),
	)

	start := time.Now()
	data, err := c.fetcher.Fetch(ctx, key)
	if err != nil {
		metrics.RecordFetchError(key)
		return nil, fmt.Errorf("fetch %s: %w", key, err)
	}
	metrics.RecordFetchDuration(time.Since(start))

	if err := writeAtomic(path, data); err != nil {
		return nil, fmt.Errorf("write %s: %w", key, err)
	}
	c.logger.Info(ctx, "cached file refreshed",
		logger.String("key", key),
		logger.Int("bytes", len(data)),
		logger.Duration("took", time.Since(start)),
	)
	return os.ReadFile(path)
}

func (c *Cache) keyLock(key string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[key]
	if !ok {
		l = &sync.Mutex{}
		c.locks[key] = l
	}
	return l
}

// staleness returns "missing", "expired" or "" for a fresh file.
func (c *Cache) staleness(path string) (string, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "missing", nil
	}
	if err != nil {
		return "", fmt.Errorf("stat cache file: %w", err)
	}
	if c.now().Sub(info.ModTime()) > c.expiration {
		return "expired", nil
	}
	return "", nil
}

func (c *Cache) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return filepath.Join(c.dir, key), nil
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}

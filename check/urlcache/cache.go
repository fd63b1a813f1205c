// Package urlcache persists link-check verdicts between runs.
//
// The cache is keyed by URL and stores gob-encoded entries with a TTL.
// It is strictly opt-in: the checker only constructs one when a cache
// directory is configured, so default runs never touch the filesystem
// outside the site tree.
package urlcache

import (
	"encoding/gob"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTTL is the default time-to-live for cached entries
var DefaultTTL = 24 * time.Hour

// Entry represents a cached item
type Entry[T any] struct {
	Value     T
	CreatedAt time.Time
}

// Cache provides a generic gob-backed cache keyed by URL
type Cache[T any] struct {
	dir string
	ttl time.Duration
}

// New creates a cache rooted at dir. A non-positive ttl falls back to
// DefaultTTL.
func New[T any](dir string, ttl time.Duration) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[T]{dir: dir, ttl: ttl}
}

// normalizeKey converts a cache key into a filesystem-safe format
func normalizeKey(key string) string {
	normalized := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') ||
			(r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') ||
			r == '-' || r == '_' || r == '.' {
			return r
		}
		return '_'
	}, key)

	// Collapse runs of dots so keys cannot form relative path elements
	for strings.Contains(normalized, "..") {
		normalized = strings.ReplaceAll(normalized, "..", ".")
	}

	return normalized
}

// GetOrSet retrieves a value from cache or stores it if it doesn't exist
// or has expired. A failure to persist the entry is not an error: the
// freshly computed value is still returned.
func (c *Cache[T]) GetOrSet(key string, fn func() (T, error)) (T, error) {
	path := filepath.Join(c.dir, normalizeKey(key)+".gob")

	if entry, err := c.loadEntry(path); err == nil {
		if time.Since(entry.CreatedAt) < c.ttl {
			return entry.Value, nil
		}
	}

	value, err := fn()
	if err != nil {
		var zero T
		return zero, err
	}

	entry := Entry[T]{
		Value:     value,
		CreatedAt: time.Now(),
	}

	// A failed write only costs a re-probe next run
	_ = c.saveEntry(path, entry)

	return value, nil
}

func (c *Cache[T]) loadEntry(path string) (*Entry[T], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entry Entry[T]
	if err := gob.NewDecoder(f).Decode(&entry); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (c *Cache[T]) saveEntry(path string, entry Entry[T]) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return gob.NewEncoder(f).Encode(entry)
}

// Clear removes all cached entries
func (c *Cache[T]) Clear() error {
	return os.RemoveAll(c.dir)
}

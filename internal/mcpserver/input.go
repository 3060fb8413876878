package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/oascomponents/document"
	"github.com/erraggy/oascomponents/internal/schemautil"
)

// specInput represents the two ways a document can be provided to a tool.
// Exactly one of File or Content must be set.
type specInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON or YAML document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline document content (JSON or YAML)"`
}

// loadedSpec is a decoded document and the encoding it was read from.
type loadedSpec struct {
	doc    document.Document
	format document.Format
}

// cacheEntry holds a decoded document with LRU ordering and TTL expiry.
type cacheEntry struct {
	spec      loadedSpec
	insertAt  time.Time
	expiresAt time.Time
}

// specCacheStore provides a session-scoped cache for decoded documents.
// File inputs are keyed by (absolutePath, modTime). Content inputs are keyed
// by a SHA-256 hash. Cached trees are never handed out directly: callers
// mutate what they get.
type specCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cacheEntry
	maxSize        int
	sweeperStarted atomic.Bool
}

var specCache = &specCacheStore{
	entries: make(map[string]*cacheEntry),
	maxSize: cfg.CacheMaxSize,
}

// get returns a copy of a cached document. Expired entries are lazily removed.
func (c *specCacheStore) get(key string) (loadedSpec, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.entries[key]; ok {
		if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
			delete(c.entries, key)
			return loadedSpec{}, false
		}
		// Touch entry for LRU.
		e.insertAt = time.Now()
		return loadedSpec{doc: schemautil.CopyNode(e.spec.doc), format: e.spec.format}, true
	}
	return loadedSpec{}, false
}

// putWithTTL stores a copy of spec, evicting the oldest entry if at capacity.
func (c *specCacheStore) putWithTTL(key string, spec loadedSpec, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := &cacheEntry{
		spec:      loadedSpec{doc: schemautil.CopyNode(spec.doc), format: spec.format},
		insertAt:  now,
		expiresAt: now.Add(ttl),
	}

	// If already cached, just update.
	if _, ok := c.entries[key]; ok {
		c.entries[key] = entry
		return
	}

	// Evict oldest if at capacity.
	if len(c.entries) >= c.maxSize {
		var oldestKey string
		var oldestTime time.Time
		for k, e := range c.entries {
			if oldestKey == "" || e.insertAt.Before(oldestTime) {
				oldestKey = k
				oldestTime = e.insertAt
			}
		}
		if oldestKey != "" {
			delete(c.entries, oldestKey)
		}
	}

	c.entries[key] = entry
}

// sweep removes all expired entries from the cache.
func (c *specCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if !e.expiresAt.IsZero() && now.After(e.expiresAt) {
			delete(c.entries, k)
		}
	}
}

// startSweeper launches a background goroutine that periodically removes expired entries.
// It is safe to call multiple times; only the first call spawns a sweeper.
// It stops when ctx is cancelled.
func (c *specCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	if !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

// reset clears all cached entries. Used in tests.
func (c *specCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}

// size returns the number of cached entries.
func (c *specCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// makeCacheKey creates a cache key for the given spec input.
func makeCacheKey(s specInput) string {
	switch {
	case s.File != "":
		absPath, err := filepath.Abs(s.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return "" // Can't stat, don't cache.
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case s.Content != "":
		h := sha256.Sum256([]byte(s.Content))
		return fmt.Sprintf("content:%s", hex.EncodeToString(h[:]))
	default:
		return ""
	}
}

// resolve decodes the document from whichever input was provided, using
// the cache for both input kinds. The returned document is owned by the
// caller.
func (s specInput) resolve() (loadedSpec, error) {
	if (s.File != "") == (s.Content != "") {
		return loadedSpec{}, fmt.Errorf("exactly one of file or content must be provided")
	}

	// Enforce inline content size limit.
	if s.Content != "" && int64(len(s.Content)) > cfg.MaxInlineSize {
		return loadedSpec{}, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set OASCOMPONENTS_MAX_INLINE_SIZE to increase",
			len(s.Content), cfg.MaxInlineSize)
	}

	var key string
	var ttl time.Duration
	if cfg.CacheEnabled {
		key = makeCacheKey(s)
		ttl = cfg.CacheContentTTL
		if s.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}

	if key != "" {
		if cached, ok := specCache.get(key); ok {
			return cached, nil
		}
	}

	var spec loadedSpec
	if s.File != "" {
		doc, format, err := document.Load(s.File)
		if err != nil {
			return loadedSpec{}, err
		}
		spec = loadedSpec{doc: doc, format: format}
	} else {
		data := []byte(s.Content)
		format := document.FormatFromContent(data)
		doc, err := document.Parse(data, format)
		if err != nil {
			return loadedSpec{}, err
		}
		spec = loadedSpec{doc: doc, format: format}
	}

	if key != "" {
		specCache.putWithTTL(key, spec, ttl)
	}
	return spec, nil
}

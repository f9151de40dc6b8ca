// Package patterncache memoizes compiled glob patterns.
//
// A Cache is safe for concurrent use. If a compile function panics, the cache
// is cleared and the call returns ErrPatternCompile; later calls start from an
// empty cache instead of failing forever.
package patterncache

import (
	"fmt"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gobwas/glob"
	lru "github.com/hashicorp/golang-lru/v2"

	errUtils "github.com/mdlint/mdlint/errors"
	log "github.com/mdlint/mdlint/pkg/logger"
)

// DefaultSize bounds the number of compiled patterns held by New.
const DefaultSize = 1024

// Cache holds compiled patterns keyed by kind and source text.
type Cache struct {
	mu      sync.Mutex
	entries *lru.Cache[string, any]
}

// New returns a Cache holding up to DefaultSize patterns.
func New() *Cache {
	return NewWithSize(DefaultSize)
}

// NewWithSize returns a Cache holding up to size patterns. Non-positive sizes use DefaultSize.
func NewWithSize(size int) *Cache {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, any](size)
	if err != nil {
		// Only returned for non-positive sizes.
		panic(err)
	}
	return &Cache{entries: entries}
}

// Glob returns the compiled form of pattern using the given separators.
func (c *Cache) Glob(pattern string, separators ...rune) (glob.Glob, error) {
	key := fmt.Sprintf("glob:%q:%s", string(separators), pattern)
	v, err := c.Do(key, func() (any, error) {
		return glob.Compile(pattern, separators...)
	})
	if err != nil {
		return nil, err
	}
	return v.(glob.Glob), nil
}

// Do returns the cached value for key, calling compile on a miss.
// Compile errors are returned and not cached.
func (c *Cache) Do(key string, compile func() (any, error)) (value any, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.entries.Get(key); ok {
		return v, nil
	}

	defer func() {
		if r := recover(); r != nil {
			c.entries.Purge()
			log.Warn("Pattern cache cleared after panic", "key", key, "panic", r)
			value = nil
			err = errors.Wrapf(errUtils.ErrPatternCompile, "compiling %s panicked: %v", key, r)
		}
	}()

	v, err := compile()
	if err != nil {
		return nil, errors.WithSecondaryError(errors.Wrapf(errUtils.ErrPatternCompile, "compiling %s: %v", key, err), err)
	}
	c.entries.Add(key, v)
	return v, nil
}

// Len reports the number of cached patterns.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Reset drops every cached pattern.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}

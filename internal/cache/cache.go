// Package cache is dtsforge's incremental-generation collaborator: an
// LRU-backed cache keyed by a content hash of (source text, options), so
// re-running the pipeline over an unchanged file skips regeneration
// entirely.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dtsforge/dtsforge/internal/helpers"
	"github.com/dtsforge/dtsforge/internal/logger"
	"github.com/dtsforge/dtsforge/pkg/dtsgen"
)

// Result is what the cache stores per content hash: the generated text
// plus the diagnostics produced alongside it.
type Result struct {
	Output      string
	Diagnostics []logger.Diagnostic
}

// Cache is safe for concurrent Get/Put from the worker pool; the
// underlying LRU already owns its own locking.
type Cache struct {
	lru *lru.Cache[string, Result]
}

// New creates a Cache holding at most size entries; size <= 0 defaults to
// 1024, matching a single large-repo generation run comfortably.
func New(size int) (*Cache, error) {
	if size <= 0 {
		size = 1024
	}
	l, err := lru.New[string, Result](size)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get returns the cached Result for contentHash, if present.
func (c *Cache) Get(contentHash string) (Result, bool) {
	return c.lru.Get(contentHash)
}

// Put stores r under contentHash, evicting the least recently used entry
// if the cache is at capacity.
func (c *Cache) Put(contentHash string, r Result) {
	c.lru.Add(contentHash, r)
}

// ContentHash digests (sourceText, options) into the cache key. Any
// character change anywhere in sourceText, or any option that affects
// emission, changes the hash.
func ContentHash(sourceText string, options dtsgen.Options) string {
	seed := helpers.HashCombineString(0, sourceText)
	if options.RetainComments {
		seed = helpers.HashCombine(seed, 1)
	}
	for _, pat := range options.ImportOrder {
		seed = helpers.HashCombineString(seed, pat)
	}
	seed = helpers.HashCombine(seed, uint32(options.OutputStructure))
	return hex32(seed)
}

const hexDigits = "0123456789abcdef"

func hex32(v uint32) string {
	buf := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		buf[i] = hexDigits[v&0xf]
		v >>= 4
	}
	return string(buf)
}

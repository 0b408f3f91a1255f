// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/pathkit

package pathkit

import (
	"fmt"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultGlobCacheSize is capacity of cache used by Match and GlobToRegex.
const DefaultGlobCacheSize = 256

var defaultGlobCache = mustGlobCache(DefaultGlobCacheSize)

// GlobCache is bounded LRU of compiled globs keyed by glob text and options.
type GlobCache struct {
	entries *lru.Cache[string, *Glob]
	group   singleflight.Group
}

// NewGlobCache creates cache holding up to size compiled globs.
func NewGlobCache(size int) (*GlobCache, error) {
	entries, err := lru.New[string, *Glob](size)
	if err != nil {
		return nil, fmt.Errorf("create glob cache: %w", err)
	}

	return &GlobCache{entries: entries}, nil
}

// mustGlobCache creates cache or panics on invalid size.
func mustGlobCache(size int) *GlobCache {
	c, err := NewGlobCache(size)
	if err != nil {
		panic(err)
	}

	return c
}

// Get returns cached compiled glob or compiles and stores it.
//
// Concurrent misses for one key compile once. Errors are not cached.
func (c *GlobCache) Get(glob string, opts GlobOptions) (*Glob, error) {
	opts.applyDefaults()
	key := globCacheKey(glob, opts)

	if g, ok := c.entries.Get(key); ok {
		return g, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if g, ok := c.entries.Get(key); ok {
			return g, nil
		}

		g, err := CompileGlob(glob, opts)
		if err != nil {
			return nil, err
		}
		c.entries.Add(key, g)

		return g, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*Glob), nil
}

// Match compiles glob through cache and matches text, using path regex when
// opts.Filepath is set.
func (c *GlobCache) Match(text string, glob string, opts GlobOptions) (bool, error) {
	g, err := c.Get(glob, opts)
	if err != nil {
		return false, err
	}

	if opts.Filepath {
		return g.MatchPath(text), nil
	}

	return g.Match(text), nil
}

// Len returns number of cached globs.
func (c *GlobCache) Len() int {
	return c.entries.Len()
}

// globCacheKey encodes options as flag prefix before glob text.
func globCacheKey(glob string, opts GlobOptions) string {
	flags := 0
	for i, set := range []bool{opts.Extended, opts.Globstar, opts.Strict, opts.Filepath} {
		if set {
			flags |= 1 << i
		}
	}

	return strconv.Itoa(flags) + ":" + strconv.Itoa(int(opts.Flavor)) + ":" + glob
}

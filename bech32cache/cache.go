// Copyright (c) 2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bech32cache remembers which candidate strings have already been
// run through bech32.Decode, so a caller re-checking the same strings
// repeatedly (for instance a CLI validating the same address list on every
// invocation of a watch loop) doesn't pay for PolyMod again.
package bech32cache

import (
	"github.com/decred/dcrd/lru"
)

// defaultCacheSize is used when a caller constructs a ValidationCache with
// a size of 0.
const defaultCacheSize = 5000

// ValidationCache is a pair of LRU membership caches: strings already known
// to decode successfully, and strings already known to fail. It holds no
// value beyond membership itself: a hit means "this string decoded cleanly
// (or failed) last time it was checked", nothing more, so a caller that
// needs the decoded parts still has to call
// bech32.Decode; this cache only lets it skip Decode for strings it can
// prove are still good, or short-circuit known-bad strings.
type ValidationCache struct {
	good lru.Cache
	bad  lru.Cache
}

// New returns a ValidationCache holding up to size entries of each kind
// (known-good and known-bad). A size of 0 uses a reasonable default.
func New(size uint) *ValidationCache {
	if size == 0 {
		size = defaultCacheSize
	}
	return &ValidationCache{
		good: lru.NewCache(size),
		bad:  lru.NewCache(size),
	}
}

// MarkGood records that s decoded successfully.
func (c *ValidationCache) MarkGood(s string) {
	c.bad.Delete(s)
	c.good.Add(s)
}

// MarkBad records that s failed to decode.
func (c *ValidationCache) MarkBad(s string) {
	c.good.Delete(s)
	c.bad.Add(s)
}

// Lookup reports whether s is a cached result, and if so, whether it was
// good. ok is false if s has never been recorded.
func (c *ValidationCache) Lookup(s string) (good, ok bool) {
	if c.good.Contains(s) {
		return true, true
	}
	if c.bad.Contains(s) {
		return false, true
	}
	return false, false
}

// Forget removes any cached result for s.
func (c *ValidationCache) Forget(s string) {
	c.good.Delete(s)
	c.bad.Delete(s)
}

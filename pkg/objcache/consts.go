/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import "strconv"

// Cache backend.
//
// Only Unbounded keeps every cached value for the cache lifetime. Hashicorp and Theine
// are bounded: an evicted value is computed again by Memo as a new instance, so
// callers of bounded memos may get equal but not identical values for the same key.
type CacheProvider uint8

const (
	// Unbounded cache without expiration, implemented by imcache
	Unbounded CacheProvider = iota

	// LRU cache implemented by hashicorp golang-lru
	Hashicorp

	// Size-bounded cache implemented by theine-go
	Theine

	CacheProvider_count
)

func (p CacheProvider) String() string {
	switch p {
	case Unbounded:
		return "Unbounded"
	case Hashicorp:
		return "Hashicorp"
	case Theine:
		return "Theine"
	}
	return "CacheProvider(" + strconv.FormatUint(uint64(p), 10) + ")"
}

// Parses provider name as printed by String(), case-sensitive
func ParseCacheProvider(s string) (CacheProvider, bool) {
	for p := Unbounded; p < CacheProvider_count; p++ {
		if p.String() == s {
			return p, true
		}
	}
	return Unbounded, false
}

// Default size of bounded caches
const DefaultCacheSize = 4096

// Result of memo lookup
type MemoResult uint8

const (
	// Value found in cache
	MemoResult_Hit MemoResult = iota

	// Value computed and cached
	MemoResult_Miss

	// Value computed as not found, nothing cached
	MemoResult_NotFound

	MemoResult_count
)

func (r MemoResult) String() string {
	switch r {
	case MemoResult_Hit:
		return "hit"
	case MemoResult_Miss:
		return "miss"
	case MemoResult_NotFound:
		return "notfound"
	}
	return "MemoResult(" + strconv.FormatUint(uint64(r), 10) + ")"
}

/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package objcache

import (
	"github.com/voedger/odata/pkg/objcache/internal/hashicorp"
	"github.com/voedger/odata/pkg/objcache/internal/imcache"
	"github.com/voedger/odata/pkg/objcache/internal/theine"
)

// Creates and return new object cache implemented by specified provider.
//
// Size is ignored by Unbounded provider. Size less or equal to zero is replaced by DefaultCacheSize.
// Unbounded cache never evicts, so onEvicted is never called.
func NewProvider[K comparable, V any](p CacheProvider, size int, onEvicted func(K, V)) ICache[K, V] {
	if size <= 0 {
		size = DefaultCacheSize
	}
	switch p {
	case Hashicorp:
		return hashicorp.New[K, V](size, onEvicted)
	case Theine:
		return theine.New[K, V](size, onEvicted)
	}
	return imcache.New[K, V]()
}

// Creates and return new memo with string keys, backed by cache from specified provider.
//
// Optional observe cb is called with result of each Get.
func NewMemo[V any](p CacheProvider, size int, observe func(MemoResult)) *Memo[V] {
	return &Memo[V]{
		cache:   NewProvider[string, V](p, size, nil),
		observe: observe,
	}
}

/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package theine

import (
	theine "github.com/Yiling-J/theine-go"
)

// Size-bounded cache implemented by theine-go. Every entry costs 1, so size is the number of entries
type Cache[K comparable, V any] struct {
	c *theine.Cache[K, V]
}

// Creates new theine cache. Panics if size is not positive
func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	b := theine.NewBuilder[K, V](int64(size))
	if onEvicted != nil {
		b.RemovalListener(func(key K, value V, reason theine.RemoveReason) {
			if reason == theine.EVICTED {
				onEvicted(key, value)
			}
		})
	}
	c, err := b.Build()
	if err != nil {
		panic(err)
	}
	return &Cache[K, V]{c: c}
}

func (c *Cache[K, V]) Get(key K) (V, bool) { return c.c.Get(key) }

func (c *Cache[K, V]) Put(key K, value V) { c.c.Set(key, value, 1) }

/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package imcache

import "github.com/erni27/imcache"

// Unbounded cache implemented by imcache. Entries never expire and are never evicted
type Cache[K comparable, V any] struct {
	c *imcache.Cache[K, V]
}

func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{c: imcache.New[K, V]()}
}

func (c *Cache[K, V]) Get(key K) (V, bool) { return c.c.Get(key) }

func (c *Cache[K, V]) Put(key K, value V) { c.c.Set(key, value, imcache.WithNoExpiration()) }

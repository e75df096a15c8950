/*
 * Copyright (c) 2023-present Sigma-Soft, Ltd.
 * @author: Nikolay Nikitin
 */

package hashicorp

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// LRU cache implemented by hashicorp golang-lru
type Cache[K comparable, V any] struct {
	lru *lru.Cache[K, V]
}

// Creates new LRU cache with size entries. Panics if size is not positive
func New[K comparable, V any](size int, onEvicted func(K, V)) *Cache[K, V] {
	l, err := lru.NewWithEvict[K, V](size, onEvicted)
	if err != nil {
		panic(err)
	}
	return &Cache[K, V]{lru: l}
}

func (c *Cache[K, V]) Get(key K) (V, bool) { return c.lru.Get(key) }

func (c *Cache[K, V]) Put(key K, value V) { c.lru.Add(key, value) }

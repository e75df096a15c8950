/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package objcache

import "golang.org/x/sync/singleflight"

// Get-or-compute cache.
//
// Concurrent Get calls with the same missed key compute the value once.
// Values computed as not found are not cached, so they are computed again on the next Get.
//
// @ConcurrentAccess
type Memo[V any] struct {
	cache   ICache[string, V]
	group   singleflight.Group
	observe func(MemoResult)
}

type memoValue[V any] struct {
	value V
	ok    bool
}

// Returns value by key. If key is missed, then calls compute and caches value if compute returns true.
//
// compute must not call Get of the same memo with the same key.
func (m *Memo[V]) Get(key string, compute func() (V, bool)) (V, bool) {
	if v, ok := m.cache.Get(key); ok {
		m.notify(MemoResult_Hit)
		return v, true
	}

	res, _, _ := m.group.Do(key, func() (any, error) {
		if v, ok := m.cache.Get(key); ok {
			return memoValue[V]{v, true}, nil
		}
		v, ok := compute()
		if ok {
			m.cache.Put(key, v)
		}
		return memoValue[V]{v, ok}, nil
	})

	mv := res.(memoValue[V])
	if mv.ok {
		m.notify(MemoResult_Miss)
	} else {
		m.notify(MemoResult_NotFound)
	}
	return mv.value, mv.ok
}

// Returns cached value by key. Neither computes nor observes.
func (m *Memo[V]) Peek(key string) (V, bool) {
	return m.cache.Get(key)
}

// Puts value with key
func (m *Memo[V]) Put(key string, value V) {
	m.cache.Put(key, value)
}

func (m *Memo[V]) notify(r MemoResult) {
	if m.observe != nil {
		m.observe(r)
	}
}

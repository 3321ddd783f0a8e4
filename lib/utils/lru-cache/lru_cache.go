// Copyright 2023 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package lrucache

import (
	"container/list"
)

// DefaultLRUCapacity is the default capacity of the LRU cache.
const DefaultLRUCapacity = 20

// LRUCache is a least recently used cache. It is not safe for concurrent use.
type LRUCache[K comparable, V any] struct {
	capacity uint
	cache    map[K]*list.Element
	lruList  *list.List
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// NewLRUCache creates a new LRU cache with the specified capacity.
func NewLRUCache[K comparable, V any](capacity uint) *LRUCache[K, V] {
	if capacity < 1 {
		capacity = DefaultLRUCapacity
	}

	return &LRUCache[K, V]{
		capacity: capacity,
		cache:    make(map[K]*list.Element),
		lruList:  list.New(),
	}
}

// Get returns the value cached for the key and marks it as recently used.
// The boolean is false if the key is not cached.
func (c *LRUCache[K, V]) Get(key K) (value V, ok bool) {
	elem, ok := c.cache[key]
	if !ok {
		return value, false
	}
	c.lruList.MoveToFront(elem)
	return elem.Value.(*entry[K, V]).value, true
}

// Put caches the value for the key, evicting the least recently used
// entry if the cache is full. It returns the evicted key, if any.
func (c *LRUCache[K, V]) Put(key K, value V) (evicted K, didEvict bool) {
	if elem, exists := c.cache[key]; exists {
		elem.Value.(*entry[K, V]).value = value
		c.lruList.MoveToFront(elem)
		return evicted, false
	}

	if uint(len(c.cache)) >= c.capacity {
		last := c.lruList.Back()
		if last != nil {
			evicted = last.Value.(*entry[K, V]).key
			delete(c.cache, evicted)
			c.lruList.Remove(last)
			didEvict = true
		}
	}

	c.cache[key] = c.lruList.PushFront(&entry[K, V]{key: key, value: value})
	return evicted, didEvict
}

// Len returns the number of cached entries.
func (c *LRUCache[K, V]) Len() int {
	return len(c.cache)
}

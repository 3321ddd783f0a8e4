// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"container/list"
	"sync"
)

type requestsQueue[M any] struct {
	mu    sync.RWMutex
	queue *list.List
}

func newRequestsQueue[M any]() *requestsQueue[M] {
	return &requestsQueue[M]{queue: list.New()}
}

func (r *requestsQueue[M]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.queue.Len()
}

func (r *requestsQueue[M]) PopFront() (value M, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e := r.queue.Front()
	if e == nil {
		return value, false
	}

	r.queue.Remove(e)
	return e.Value.(M), true
}

func (r *requestsQueue[M]) PushBack(message ...M) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range message {
		r.queue.PushBack(m)
	}
}

// RemoveIf removes the messages matching the predicate and returns them.
func (r *requestsQueue[M]) RemoveIf(remove func(M) bool) (removed []M) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for e := r.queue.Front(); e != nil; {
		next := e.Next()
		if m := e.Value.(M); remove(m) {
			r.queue.Remove(e)
			removed = append(removed, m)
		}
		e = next
	}
	return removed
}

// Clear removes all the messages and returns how many there were.
func (r *requestsQueue[M]) Clear() (cleared int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	cleared = r.queue.Len()
	r.queue.Init()
	return cleared
}

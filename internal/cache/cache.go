// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cache implements a small random-replacement memo for fallible,
// deterministic computations such as parsing an identifier.
package cache

import (
	"sync"
)

// DefaultSize is the default number of entries kept by a Memo.
const DefaultSize = 1 << 9

// Memo remembers the successful results of a fallible function. Failed
// computations are not remembered, so arbitrary invalid input cannot fill the
// memo.
//
// Its zero value is ready to use. It is safe for concurrent use.
type Memo[K comparable, V any] struct {
	// MaxEntries bounds the number of remembered results. If it is zero,
	// DefaultSize is used. It must not be changed concurrently with Get.
	MaxEntries int

	mu sync.RWMutex
	m  map[K]V
}

// Get returns the value remembered for k, calling compute to produce it if
// there is none. An error returned by compute is passed through and nothing
// is remembered.
func (c *Memo[K, V]) Get(k K, compute func(K) (V, error)) (V, error) {
	c.mu.RLock()
	v, ok := c.m[k]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	nv, err := compute(k)
	if err != nil {
		return nv, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if v, ok := c.m[k]; ok {
		// another goroutine computed it in the meantime
		return v, nil
	}
	if c.m == nil {
		c.m = make(map[K]V)
	}
	// Map iteration order is random, which makes this a random
	// replacement policy.
	for victim := range c.m {
		if len(c.m) < c.limit() {
			break
		}
		delete(c.m, victim)
	}
	c.m[k] = nv
	return nv, nil
}

// Len returns the number of remembered results.
func (c *Memo[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.m)
}

// Forget drops the result remembered for k, if any.
func (c *Memo[K, V]) Forget(k K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.m, k)
}

// Reset drops all remembered results.
func (c *Memo[K, V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.m)
}

func (c *Memo[K, V]) limit() int {
	if c.MaxEntries <= 0 {
		return DefaultSize
	}
	return c.MaxEntries
}

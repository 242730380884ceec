// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package walkpool recycles the frame stacks used by the trie's
// depth-first subtree walk (C5's shared engine backing StartsWith and
// Postfix), so that repeated queries against the same frozen trie
// don't allocate a new stack on every call.
//
// This is a direct adaptation of github.com/gaissmai/bart's pool.go,
// a typed wrapper around sync.Pool with allocation statistics,
// changed from pooling *node[V] values to pooling []F frame stacks.
package walkpool

import (
	"sync"
	"sync/atomic"
)

// initialStackDepth is the starting capacity for a freshly allocated
// frame stack; deep tries grow it on demand like any slice.
const initialStackDepth = 16

// Pool is a type-safe wrapper around sync.Pool, specialized for
// reusable []F frame stacks used by one walk at a time.
type Pool[F any] struct {
	sync.Pool // embedded sync.Pool for []F

	// TODO: remove once the walk engine's allocation profile is settled.
	totalAllocated atomic.Int64 // total number of stacks ever allocated
	currentLive    atomic.Int64 // number of stacks currently checked out
}

// New creates and returns a new pool of []F frame stacks.
func New[F any]() *Pool[F] {
	p := &Pool[F]{}
	p.Pool.New = func() any {
		p.totalAllocated.Add(1)
		return make([]F, 0, initialStackDepth)
	}
	return p
}

// Get retrieves a zero-length []F frame stack from the pool, or
// allocates a new one if the pool is empty.
//
// If the pool is nil, a new stack is allocated without tracking.
func (p *Pool[F]) Get() []F {
	if p == nil {
		return make([]F, 0, initialStackDepth)
	}
	p.currentLive.Add(1)
	return p.Pool.Get().([]F)
}

// Put returns a frame stack to the pool for reuse, truncating it to
// zero length first. If the pool is nil, the stack is discarded.
func (p *Pool[F]) Put(s []F) {
	if p == nil {
		return
	}
	p.currentLive.Add(-1)
	p.Pool.Put(s[:0])
}

// Stats returns the number of currently checked-out stacks and the
// total number ever allocated by this pool.
//
// TODO: remove once the walk engine's allocation profile is settled.
func (p *Pool[F]) Stats() (live, total int64) {
	if p == nil {
		return 0, 0
	}
	return p.currentLive.Load(), p.totalAllocated.Load()
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

import (
	"github.com/gaissmai/louds/internal/bitvec"
	"github.com/gaissmai/louds/internal/succinct"
	"github.com/gaissmai/louds/internal/walkpool"
)

// buildNode is the builder's mutable intermediate tree node: a token,
// a terminal flag, a value, and children kept sorted by ascending
// token via binary-search insertion — the same insert-at-position
// technique as gaissmai/bart's internal/sparse.Array.insertItem,
// generalized from a fixed 256-slot bitset-indexed array to an
// arbitrary-arity token-ordered slice.
type buildNode[T Token, V any] struct {
	token    T
	terminal bool
	value    V
	children []*buildNode[T, V]
}

// childIndex returns the position of t among n's sorted children, and
// whether it is already present.
func (n *buildNode[T, V]) childIndex(t T) (idx int, found bool) {
	lo, hi := 0, len(n.children)
	for lo < hi {
		mid := (lo + hi) / 2
		switch ct := n.children[mid].token; {
		case ct == t:
			return mid, true
		case ct < t:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo, false
}

// insert walks key from n, splicing in new children as needed, and
// marks the final node terminal with value (last-write-wins for the
// map flavor, a harmless repeated assignment for the set flavor where
// V is struct{}).
func (n *buildNode[T, V]) insert(key []T, value V) {
	cur := n
	for _, tok := range key {
		idx, found := cur.childIndex(tok)
		if found {
			cur = cur.children[idx]
			continue
		}
		child := &buildNode[T, V]{token: tok}
		cur.children = append(cur.children, nil)
		copy(cur.children[idx+1:], cur.children[idx:])
		cur.children[idx] = child
		cur = child
	}
	cur.terminal = true
	cur.value = value
}

// builderCore accumulates keys into a buildNode tree and lowers it to
// a frozen core+values pair in a single breadth-first pass, shared by
// both the set and map builder facades.
type builderCore[T Token, V any] struct {
	root buildNode[T, V]
}

// insert is a no-op for the empty key: the empty key can never mark
// the root terminal.
func (b *builderCore[T, V]) insert(key []T, value V) {
	if len(key) == 0 {
		return
	}
	b.root.insert(key, value)
}

// freeze lowers the intermediate tree to a core[T] plus a parallel
// value slice, in one breadth-first pass: enqueue the root, then for
// each dequeued node emit one '1' bit per child followed by a '0' to
// the LOUDS bit vector, append each child's token/terminal/value to
// the node table, and enqueue the children in turn.
func freeze[T Token, V any](root *buildNode[T, V]) (*core[T], []V) {
	var bits bitvec.Builder
	var termBits bitvec.Builder

	tokens := make([]T, 1, 16)   // index 0 unused
	values := make([]V, 1, 16)   // index 0 unused
	termBits.Push(0)             // index 0 unused

	// virtual super-root: "1 0"
	bits.Push(1)
	bits.Push(0)

	// root occupies node number 1
	tokens = append(tokens, root.token)
	values = append(values, root.value)
	termBits.Push(0) // the root can never be terminal, see insert's no-op rule

	queue := make([]*buildNode[T, V], 0, 16)
	queue = append(queue, root)

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]

		bits.PushOnes(len(n.children))
		bits.Push(0)

		for _, c := range n.children {
			tokens = append(tokens, c.token)
			values = append(values, c.value)
			if c.terminal {
				termBits.Push(1)
			} else {
				termBits.Push(0)
			}
			queue = append(queue, c)
		}
	}

	c := &core[T]{
		tree:     succinct.New(bits.Build()),
		tokens:   tokens,
		terminal: termBits.Build(),
		frames:   walkpool.New[frame[T]](),
	}
	return c, values
}

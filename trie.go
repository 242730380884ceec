// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

// trie is the frozen, immutable representation shared by [Set] and
// [Map]: the structural core[T] (C1+C2's token/terminal layer) plus a
// parallel value slice. The set flavor instantiates V as struct{},
// which the Go runtime allocates zero bytes for per element, so the
// values slice costs nothing extra there.
type trie[T Token, V any] struct {
	c      *core[T]
	values []V
}

// newTrie freezes a builder's intermediate tree into a queryable
// trie.
func newTrie[T Token, V any](root *buildNode[T, V]) *trie[T, V] {
	c, values := freeze(root)
	return &trie[T, V]{c: c, values: values}
}

// Len returns the number of distinct stored keys.
func (t *trie[T, V]) Len() int { return t.c.numKeys() }

// NewCursor returns a cursor positioned at the root.
func (t *trie[T, V]) NewCursor() Cursor[T] { return newCursor(t.c) }

// walkTo drives a fresh cursor along key and reports the final node
// number reached and whether every token matched a child edge.
func (t *trie[T, V]) walkTo(key []T) (node uint32, ok bool) {
	node = t.c.rootNode()
	for _, tok := range key {
		child, found := t.c.findChild(node, tok)
		if !found {
			return 0, false
		}
		node = child
	}
	return node, true
}

// exact reports whether key is a stored key and, if so, its node
// number (for value retrieval by the map flavor).
func (t *trie[T, V]) exact(key []T) (node uint32, found bool) {
	node, ok := t.walkTo(key)
	if !ok || !t.c.isTerminal(node) {
		return 0, false
	}
	return node, true
}

// isPrefix reports whether some stored key has key as a prefix,
// i.e. walking key succeeds at all (the end node need not itself be
// terminal).
func (t *trie[T, V]) isPrefix(key []T) bool {
	_, ok := t.walkTo(key)
	return ok
}

// value returns node's associated value (map flavor only; for the
// set flavor V is struct{} and this is never called for its result).
func (t *trie[T, V]) value(node uint32) V { return t.values[node] }

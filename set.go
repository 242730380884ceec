// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

// Set is the frozen set-trie facade: stores only keys, no associated
// values. Instantiate the shared trie[T, V] with V = struct{}, which
// the Go runtime allocates zero bytes for per element, so the set
// flavor pays nothing for the map flavor's value slot.
type Set[T Token] struct {
	t *trie[T, struct{}]
}

// SetBuilder accumulates keys for a [Set]. The zero value is ready
// to use.
type SetBuilder[T Token] struct {
	b builderCore[T, struct{}]
}

// Insert adds key to the set under construction. Re-inserting an
// already-present key is idempotent; inserting the empty key is a
// silent no-op.
func (b *SetBuilder[T]) Insert(key []T) {
	b.b.insert(key, struct{}{})
}

// Freeze lowers the accumulated keys to an immutable [Set] in one
// breadth-first pass. The builder must not be reused afterwards.
func (b *SetBuilder[T]) Freeze() *Set[T] {
	return &Set[T]{t: newTrie(&b.b.root)}
}

// Len returns the number of distinct stored keys.
func (s *Set[T]) Len() int { return s.t.Len() }

// NumNodes returns the number of nodes in the underlying tree,
// including the root. This is the trie's actual node count, which for
// a set with many shared prefixes is typically much smaller than the
// sum of its keys' lengths.
func (s *Set[T]) NumNodes() int { return s.t.c.numNodes() }

// NewCursor returns a cursor positioned at the root, for incremental
// search.
func (s *Set[T]) NewCursor() Cursor[T] { return s.t.NewCursor() }

// IsExact reports whether key was inserted.
func (s *Set[T]) IsExact(key []T) bool {
	_, ok := s.t.exact(key)
	return ok
}

// IsPrefix reports whether key is a prefix of some stored key
// (walking key succeeds; the end node need not itself be terminal).
func (s *Set[T]) IsPrefix(key []T) bool { return s.t.isPrefix(key) }

// StartsWith returns a lazy, short-circuitable iterator over every
// stored key having prefix as a prefix, in strict lexicographic
// order. An absent prefix yields nothing; an empty prefix yields
// every stored key.
func (s *Set[T]) StartsWith(prefix []T) func(yield func(Key[T]) bool) {
	raw := s.t.startsWithRaw(prefix)
	return func(yield func(Key[T]) bool) {
		raw(func(h hit[T, struct{}]) bool { return yield(Key[T](h.tokens)) })
	}
}

// Postfix returns a lazy iterator over the suffixes of prefix past
// its own length, for every stored key having prefix as a prefix. A
// key equal to prefix contributes the empty suffix.
func (s *Set[T]) Postfix(prefix []T) func(yield func(Key[T]) bool) {
	raw := s.t.postfixRaw(prefix)
	return func(yield func(Key[T]) bool) {
		raw(func(h hit[T, struct{}]) bool { return yield(Key[T](h.tokens)) })
	}
}

// PrefixesOf returns a lazy iterator, in ascending length, over every
// stored key that is a prefix of key.
func (s *Set[T]) PrefixesOf(key []T) func(yield func(Key[T]) bool) {
	raw := s.t.prefixesOfRaw(key)
	return func(yield func(Key[T]) bool) {
		raw(func(h hit[T, struct{}]) bool { return yield(Key[T](h.tokens)) })
	}
}

// LongestPrefix returns the longest stored key that is a prefix of
// key, and whether any such key exists. It is equivalent to the last
// element of PrefixesOf.
func (s *Set[T]) LongestPrefix(key []T) (Key[T], bool) {
	h, ok := s.t.longestPrefixRaw(key)
	if !ok {
		return nil, false
	}
	return Key[T](h.tokens), true
}

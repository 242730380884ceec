// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

// Cloner is an interface that enables deep cloning of values of type
// V. If a [Map]'s V implements Cloner[V], [Map.Clone] uses its Clone
// method to deep-copy every stored value instead of a shallow slice
// copy.
type Cloner[V any] interface {
	Clone() V
}

// Clone returns an independent copy of m. The two tries share no
// mutable state afterwards: the node table, token array, and terminal
// bits are immutable and safe to share by reference, but the value
// slice is always copied, deeply if V implements [Cloner], shallowly
// otherwise.
func (m *Map[T, V]) Clone() *Map[T, V] {
	values := make([]V, len(m.t.values))
	for i, v := range m.t.values {
		// only terminal nodes hold stored values; the other slots keep
		// V's zero value, which is copied as is
		if !m.t.c.isTerminal(uint32(i)) {
			values[i] = v
			continue
		}
		if c, ok := any(v).(Cloner[V]); ok {
			values[i] = c.Clone()
			continue
		}
		values[i] = v
	}
	return &Map[T, V]{t: &trie[T, V]{c: m.t.c, values: values}}
}

// Clone returns a copy of s. Since the set flavor stores no values,
// this shares the entire underlying trie by reference; it exists for
// API symmetry with [Map.Clone].
func (s *Set[T]) Clone() *Set[T] {
	return &Set[T]{t: s.t}
}

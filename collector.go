// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

import "unicode/utf8"

// StringTokens is satisfied by byte and rune, the two built-in token
// types a string-collecting query can reassemble.
type StringTokens interface{ byte | rune }

// Collect reassembles a sequence of byte or rune tokens into a
// string, dispatching on which. A rune sequence always succeeds: Go's
// string conversion turns any rune that is not a valid code point into
// the replacement character U+FFFD. A byte sequence
// succeeds only if it is valid UTF-8; otherwise it returns a
// [ReconstructionError] naming the byte index at which decoding first
// failed, rather than panicking or silently substituting the
// replacement character — the caller must be able to tell "malformed"
// from "the empty string".
func Collect[T StringTokens](tokens []T) (string, error) {
	switch ts := any(tokens).(type) {
	case []rune:
		return string(ts), nil
	case []byte:
		for i := 0; i < len(ts); {
			r, size := utf8.DecodeRune(ts[i:])
			if r == utf8.RuneError && size <= 1 {
				return "", &ReconstructionError{Index: i}
			}
			i += size
		}
		return string(ts), nil
	default:
		panic("louds: unreachable StringTokens case")
	}
}

// CollectString is [Collect] specialized to byte-keyed tries.
func CollectString(tokens []byte) (string, error) { return Collect(tokens) }

// CollectRunes is [Collect] specialized to rune-keyed tries; it never
// fails.
func CollectRunes(tokens []rune) string {
	s, _ := Collect(tokens)
	return s
}

// StringResult is one emitted key from a string-collecting query: the
// reconstructed string, or a non-nil Err naming where reconstruction
// failed for a key that does exist. A query whose prefix doesn't exist
// at all never reaches this type — it yields an empty iterator
// instead.
type StringResult struct {
	Key string
	Err error
}

// collectHits adapts a raw, token-level iterator of byte keys into a
// sequence of [StringResult], without aborting iteration when a single
// key fails to reconstruct.
func collectHits[V any](raw func(yield func(hit[byte, V]) bool), yield func(StringResult, V) bool) {
	raw(func(h hit[byte, V]) bool {
		s, err := CollectString(h.tokens)
		if err != nil {
			return yield(StringResult{Err: err}, h.value)
		}
		return yield(StringResult{Key: s}, h.value)
	})
}

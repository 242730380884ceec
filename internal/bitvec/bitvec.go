// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package bitvec implements an append-only bit vector with rank and
// select, the collaborator the LOUDS succinct tree (see package
// succinct) is built on.
//
// This is a direct descendant of the stripped-down bitset used
// internally by github.com/gaissmai/bart, itself "a simplified and
// stripped down version of github.com/bits-and-blooms/bitset" (see
// that package's doc comment). We don't import bits-and-blooms/bitset
// directly: its public surface is Test/Set/Clear/Count, not the
// rank/select contract this package needs, so there is nothing to
// gain by wrapping it instead of extending the word-sliced
// representation it's descended from. All bugs belong to us.
package bitvec

import (
	"fmt"
	"math/bits"
	"strings"
)

const (
	wordSize     = 64
	log2WordSize = 6
)

// Vec is an immutable-once-built bit vector, stored as a slice of
// 64-bit words. The zero value is an empty vector.
//
// Vec is built append-only (see Builder) and queried read-only
// (Bit, Rank0, Rank1, Select0, Select1) once built — it never shrinks
// or rewrites a bit once appended.
type Vec struct {
	words []uint64
	n     int // number of valid bits
}

// Len returns the number of bits in the vector.
func (v Vec) Len() int { return v.n }

// Bit returns the value of bit i (0 or 1).
//
// It panics if i is out of range: an out-of-range index here is
// always a programmer error in a caller that should have checked Len
// first, not a condition a user-facing API surfaces as a recoverable
// error.
func (v Vec) Bit(i int) int {
	if i < 0 || i >= v.n {
		panic("bitvec: index out of range")
	}
	if v.words[i>>log2WordSize]&(1<<uint(i&(wordSize-1))) != 0 {
		return 1
	}
	return 0
}

// Rank1 returns the number of 1-bits in [0, i).
func (v Vec) Rank1(i int) int {
	if i <= 0 {
		return 0
	}
	if i > v.n {
		i = v.n
	}
	wordIdx := i >> log2WordSize
	cnt := popcntSlice(v.words[:wordIdx])
	if rem := i & (wordSize - 1); rem != 0 {
		cnt += bits.OnesCount64(v.words[wordIdx] & (1<<uint(rem) - 1))
	}
	return cnt
}

// Rank0 returns the number of 0-bits in [0, i).
func (v Vec) Rank0(i int) int {
	if i <= 0 {
		return 0
	}
	if i > v.n {
		i = v.n
	}
	return i - v.Rank1(i)
}

// Select1 returns the index of the n-th 1-bit (1-origin) and true, or
// (0, false) if there is no such bit.
//
// Like Rank above, this scans word-by-word rather than using a
// precomputed select index: for the tree sizes this library targets
// the extra constant is cheaper than the bookkeeping a true O(1)
// select structure would add.
func (v Vec) Select1(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	remaining := n
	for wi, w := range v.words {
		c := bits.OnesCount64(w)
		if c < remaining {
			remaining -= c
			continue
		}
		for w != 0 {
			lsb := w & (-w)
			remaining--
			if remaining == 0 {
				bit := wi*wordSize + bits.TrailingZeros64(w)
				if bit >= v.n {
					return 0, false
				}
				return bit, true
			}
			w ^= lsb
		}
	}
	return 0, false
}

// Select0 returns the index of the n-th 0-bit (1-origin) and true, or
// (0, false) if there is no such bit.
func (v Vec) Select0(n int) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	remaining := n
	for wi := range v.words {
		w := ^v.words[wi]
		// mask off bits beyond n for the last (possibly partial) word
		if lo := wi * wordSize; lo+wordSize > v.n {
			if hi := v.n - lo; hi > 0 {
				w &= 1<<uint(hi) - 1
			} else {
				w = 0
			}
		}
		c := bits.OnesCount64(w)
		if c < remaining {
			remaining -= c
			continue
		}
		for w != 0 {
			lsb := w & (-w)
			remaining--
			if remaining == 0 {
				return wi*wordSize + bits.TrailingZeros64(w), true
			}
			w ^= lsb
		}
	}
	return 0, false
}

// Count returns the total number of 1-bits, aka popcount.
func (v Vec) Count() int { return popcntSlice(v.words) }

func popcntSlice(s []uint64) int {
	var cnt int
	for _, w := range s {
		cnt += bits.OnesCount64(w)
	}
	return cnt
}

// String renders the vector as a string of '0'/'1' characters,
// left-to-right in bit-index order (bit 0 first), matching the
// textual construction format Parse accepts.
func (v Vec) String() string {
	var sb strings.Builder
	sb.Grow(v.n)
	for i := 0; i < v.n; i++ {
		if v.Bit(i) == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Builder appends bits one at a time, in increasing index order. It is
// the only way to produce a non-empty Vec; there is no post-hoc
// mutation once a caller has taken the Vec out of the builder.
type Builder struct {
	v Vec
}

// Push appends a single bit (0 or 1 in the low bit of bit, any other
// bit is truncated to its low bit).
func (b *Builder) Push(bit int) {
	wordIdx := b.v.n >> log2WordSize
	if wordIdx >= len(b.v.words) {
		b.v.words = append(b.v.words, 0)
	}
	if bit&1 != 0 {
		b.v.words[wordIdx] |= 1 << uint(b.v.n&(wordSize-1))
	}
	b.v.n++
}

// PushOnes appends k 1-bits.
func (b *Builder) PushOnes(k int) {
	for range k {
		b.Push(1)
	}
}

// Build finalizes and returns the accumulated Vec. The builder must
// not be used afterwards.
func (b *Builder) Build() Vec { return b.v }

// Parse builds a Vec from a textual 0/1 string: whitespace and '_'
// are ignored as separators, any other rune that isn't '0' or '1' is
// an error.
func Parse(s string) (Vec, error) {
	var b Builder
	for i, r := range s {
		switch r {
		case '0':
			b.Push(0)
		case '1':
			b.Push(1)
		case '_', ' ', '\t', '\n', '\r':
			continue
		default:
			return Vec{}, fmt.Errorf("bitvec: invalid character %q at byte offset %d", r, i)
		}
	}
	return b.Build(), nil
}

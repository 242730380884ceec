// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitvec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderAndBit(t *testing.T) {
	var b Builder
	for _, bit := range []int{1, 0, 1, 1, 0, 1, 0, 0, 0} {
		b.Push(bit)
	}
	v := b.Build()

	assert.Equal(t, 9, v.Len())
	want := []int{1, 0, 1, 1, 0, 1, 0, 0, 0}
	for i, w := range want {
		assert.Equal(t, w, v.Bit(i), "bit %d", i)
	}
}

func TestParseIgnoresSeparators(t *testing.T) {
	v, err := Parse("10 110_10 0 0")
	require.NoError(t, err)
	assert.Equal(t, "101101000", v.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("10x01")
	assert.Error(t, err)
}

func TestRank(t *testing.T) {
	v, err := Parse("101101000")
	require.NoError(t, err)

	// ones at 0,2,3,5
	assert.Equal(t, 0, v.Rank1(0))
	assert.Equal(t, 1, v.Rank1(1))
	assert.Equal(t, 1, v.Rank1(2))
	assert.Equal(t, 2, v.Rank1(3))
	assert.Equal(t, 3, v.Rank1(4))
	assert.Equal(t, 3, v.Rank1(5))
	assert.Equal(t, 4, v.Rank1(6))
	assert.Equal(t, 4, v.Rank1(9))

	for i := 0; i <= v.Len(); i++ {
		assert.Equal(t, i, v.Rank0(i)+v.Rank1(i), "rank0+rank1 at %d", i)
	}
}

func TestSelect(t *testing.T) {
	v, err := Parse("101101000")
	require.NoError(t, err)

	ones := []int{0, 2, 3, 5}
	for n, want := range ones {
		got, ok := v.Select1(n + 1)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok := v.Select1(len(ones) + 1)
	assert.False(t, ok)

	zeros := []int{1, 4, 6, 7, 8}
	for n, want := range zeros {
		got, ok := v.Select0(n + 1)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	_, ok = v.Select0(len(zeros) + 1)
	assert.False(t, ok)
}

func TestSelectAcrossWordBoundary(t *testing.T) {
	var b Builder
	// 130 bits: exercise more than two 64-bit words.
	for i := range 130 {
		if i%7 == 0 {
			b.Push(1)
		} else {
			b.Push(0)
		}
	}
	v := b.Build()

	count := v.Count()
	require.True(t, count > 0)

	prevOne := -1
	oneN := 0
	for i := 0; i < v.Len(); i++ {
		if v.Bit(i) == 1 {
			oneN++
			got, ok := v.Select1(oneN)
			require.True(t, ok)
			assert.Equal(t, i, got)
			assert.True(t, i > prevOne)
			prevOne = i
		}
	}
	assert.Equal(t, count, oneN)
}

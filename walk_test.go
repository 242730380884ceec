// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostfixStripsPrefix(t *testing.T) {
	var b SetBuilder[byte]
	for _, k := range []string{"すし", "すしや", "すしだね"} {
		b.Insert([]byte(k))
	}
	s := b.Freeze()

	var got []string
	for k := range s.Postfix([]byte("すし")) {
		got = append(got, string(k))
	}
	assert.Equal(t, []string{"", "だね", "や"}, got)
}

func TestPostfixAbsentPrefixYieldsNothing(t *testing.T) {
	var b SetBuilder[byte]
	b.Insert([]byte("ab"))
	s := b.Freeze()

	var got []string
	for k := range s.Postfix([]byte("zz")) {
		got = append(got, string(k))
	}
	assert.Empty(t, got)
}

func TestStartsWithEmptyPrefixYieldsEverything(t *testing.T) {
	var b SetBuilder[byte]
	keys := []string{"a", "ab", "abc", "b"}
	for _, k := range keys {
		b.Insert([]byte(k))
	}
	s := b.Freeze()

	var got []string
	for k := range s.StartsWith(nil) {
		got = append(got, string(k))
	}
	assert.Equal(t, []string{"a", "ab", "abc", "b"}, got)
}

func TestStartsWithShortCircuit(t *testing.T) {
	var b SetBuilder[byte]
	for _, k := range []string{"a", "ab", "abc", "abcd", "abcde"} {
		b.Insert([]byte(k))
	}
	s := b.Freeze()

	var got []string
	for k := range s.StartsWith(nil) {
		got = append(got, string(k))
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"a", "ab"}, got)
}

func TestLongestPrefixIsLastOfPrefixesOf(t *testing.T) {
	var b SetBuilder[byte]
	for _, k := range []string{"a", "ab", "abc"} {
		b.Insert([]byte(k))
	}
	s := b.Freeze()

	var all []string
	for k := range s.PrefixesOf([]byte("abcd")) {
		all = append(all, string(k))
	}
	require.Equal(t, []string{"a", "ab", "abc"}, all)

	longest, ok := s.LongestPrefix([]byte("abcd"))
	require.True(t, ok)
	assert.Equal(t, "abc", string(longest))
}

func TestLongestPrefixAbsent(t *testing.T) {
	var b SetBuilder[byte]
	b.Insert([]byte("xyz"))
	s := b.Freeze()

	_, ok := s.LongestPrefix([]byte("abc"))
	assert.False(t, ok)
}

func TestPrefixesOfStopsAtFirstMismatch(t *testing.T) {
	var b SetBuilder[byte]
	b.Insert([]byte("ab"))
	s := b.Freeze()

	var got []string
	for k := range s.PrefixesOf([]byte("axyz")) {
		got = append(got, string(k))
	}
	assert.Empty(t, got)
}

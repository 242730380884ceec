// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

import (
	"github.com/gaissmai/louds/internal/bitvec"
	"github.com/gaissmai/louds/internal/succinct"
	"github.com/gaissmai/louds/internal/walkpool"
)

// core is the value-independent structural backbone shared by the
// frozen trie and its cursors: the LOUDS succinct tree plus the
// level-ordered token and terminal-flag tables.
//
// Splitting this out from the value slice means a Cursor, which
// carries nothing but a node number and a consumed-token count, never
// needs to know the map flavor's V at all.
type core[T Token] struct {
	tree     succinct.Tree
	tokens   []T        // 1-based; tokens[0] is an unused sentinel
	terminal bitvec.Vec // 1-based; bit n set iff node n is terminal

	// frames recycles the depth-first walk's stack of frame[T]
	// values across StartsWith/Postfix calls against this trie.
	frames *walkpool.Pool[frame[T]]
}

// rootNode returns the root's node number (always 1).
func (c *core[T]) rootNode() uint32 { return c.tree.RootNode() }

// numNodes returns the number of nodes, including the root.
func (c *core[T]) numNodes() int { return len(c.tokens) - 1 }

// numKeys returns the number of terminal nodes, i.e. distinct stored
// keys.
func (c *core[T]) numKeys() int { return c.terminal.Count() }

func (c *core[T]) token(n uint32) T { return c.tokens[n] }

func (c *core[T]) isTerminal(n uint32) bool { return c.terminal.Bit(int(n)) == 1 }

func (c *core[T]) childRange(n uint32) (first, last int, ok bool) {
	return c.tree.ChildRange(n)
}

func (c *core[T]) childIndexToNode(i int) uint32 { return c.tree.ChildIndexToNodeNum(i) }

// findChild binary searches n's sorted children for the one labeled
// t: O(log deg) comparisons against the child range's tokens.
func (c *core[T]) findChild(n uint32, t T) (child uint32, ok bool) {
	first, last, has := c.childRange(n)
	if !has {
		return 0, false
	}
	lo, hi := first, last
	for lo <= hi {
		mid := lo + (hi-lo)/2
		midNode := c.childIndexToNode(mid)
		switch mt := c.token(midNode); {
		case mt == t:
			return midNode, true
		case mt < t:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}
	return 0, false
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

import (
	"fmt"
	"strings"
)

// String renders a hierarchical debug dump of the set, one line per
// node, indented by depth, with a '*' marking terminal nodes. It is
// meant for interactive inspection and test failure output, not as a
// stable or parseable format.
func (s *Set[T]) String() string {
	var sb strings.Builder
	writeSubtree(&sb, s.t.c, s.t.c.rootNode(), 0)
	return sb.String()
}

// String renders the same debug dump as [Set.String], additionally
// printing each terminal node's value.
func (m *Map[T, V]) String() string {
	var sb strings.Builder
	writeMapSubtree(&sb, m.t, m.t.c.rootNode(), 0)
	return sb.String()
}

func writeSubtree[T Token](sb *strings.Builder, c *core[T], node uint32, depth int) {
	first, last, ok := c.childRange(node)
	if !ok {
		return
	}
	for i := first; i <= last; i++ {
		child := c.childIndexToNode(i)
		mark := ""
		if c.isTerminal(child) {
			mark = "*"
		}
		fmt.Fprintf(sb, "%s%v%s\n", strings.Repeat("  ", depth), c.token(child), mark)
		writeSubtree(sb, c, child, depth+1)
	}
}

func writeMapSubtree[T Token, V any](sb *strings.Builder, t *trie[T, V], node uint32, depth int) {
	first, last, ok := t.c.childRange(node)
	if !ok {
		return
	}
	for i := first; i <= last; i++ {
		child := t.c.childIndexToNode(i)
		if t.c.isTerminal(child) {
			fmt.Fprintf(sb, "%s%v* -> %v\n", strings.Repeat("  ", depth), t.c.token(child), t.values[child])
		} else {
			fmt.Fprintf(sb, "%s%v\n", strings.Repeat("  ", depth), t.c.token(child))
		}
		writeMapSubtree(sb, t, child, depth+1)
	}
}

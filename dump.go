// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"fmt"
	"io"
	"strings"
)

// String returns a hierarchical tree diagram of the trie's stored
// keys and values, formatted with %v. If Fprint returns an error,
// String panics.
//
//	▼
//	├─ [99]
//	│  └─ [99 97]
//	│     ├─ [99 97 114] (1)
//	│     └─ [99 97 116] (2)
//	└─ [100]
//	   └─ [100 111]
//	      └─ [100 111 103] (3)
func (t *Trie[L, V]) String() string {
	w := new(strings.Builder)
	if err := t.Fprint(w); err != nil {
		panic(err)
	}
	return w.String()
}

// Fprint writes a hierarchical tree diagram of the trie's stored keys
// and values to w, in ascending key order.
func (t *Trie[L, V]) Fprint(w io.Writer) error {
	if _, err := fmt.Fprint(w, "▼\n"); err != nil {
		return err
	}

	if v, ok := t.terminal(rootNode); ok {
		if _, err := fmt.Fprintf(w, "(root) (%v)\n", v); err != nil {
			return err
		}
	}

	return t.fprintRec(w, rootNode, nil, "")
}

// fprintRec writes one line per label child of node, in ascending
// label order, with the child's value if it is terminal, and recurses
// into each child right after its line. Two symbol styles distinguish
// the last child at a level from its siblings, matching the glyphs a
// reader would expect from any hierarchical tree dump.
func (t *Trie[L, V]) fprintRec(w io.Writer, node int, path []L, pad string) error {
	first, count := t.childRange(node)

	start := 0
	if count > 0 && t.cellAt(first).isValue() {
		start = 1
	}

	labelChildCount := count - start
	i := 0
	for k := start; k < count; k++ {
		c := t.cellAt(first + k)
		child := first + k
		childPath := append(append([]L(nil), path...), c.label)

		glyph, spacer := "├─ ", "│  "
		if i == labelChildCount-1 {
			glyph, spacer = "└─ ", "   "
		}
		i++

		if v, ok := t.terminal(child); ok {
			if _, err := fmt.Fprintf(w, "%s%s%v (%v)\n", pad, glyph, childPath, v); err != nil {
				return err
			}
		} else if _, err := fmt.Fprintf(w, "%s%s%v\n", pad, glyph, childPath); err != nil {
			return err
		}

		if err := t.fprintRec(w, child, childPath, pad+spacer); err != nil {
			return err
		}
	}

	return nil
}

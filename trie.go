// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package trie implements a LOUDS-encoded succinct trie: a read-only,
// ordered map from sequences of a generic, orderable label type to
// values, built once by a [Builder] and thereafter never changed in
// structure; only a stored value can be overwritten in place, through
// [Trie.ExactMatchMut].
package trie

import (
	"cmp"

	"github.com/go-louds/trie/internal/louds"
)

// rootNode is the node number of the trie's real root. Node 1, the
// super-root, is never addressed outside of Builder and the LOUDS
// vector itself.
const rootNode = 2

// Trie is a structurally immutable succinct trie produced by
// [Builder.Build]; its stored values can be changed only through
// [Trie.ExactMatchMut]. The
// zero value is not a valid Trie; always obtain one from a Builder.
type Trie[L cmp.Ordered, V any] struct {
	vec   *louds.Vector
	cells []cell[L, V]
}

// cellAt returns the label-table cell that was emitted together with
// node, which must be >= 3 (every node other than the super-root and
// the real root carries exactly one cell).
func (t *Trie[L, V]) cellAt(node int) cell[L, V] {
	return t.cells[node-3]
}

// childRange returns the node number of node's first child and its
// number of children. count is 0 if node is a leaf.
func (t *Trie[L, V]) childRange(node int) (firstChild, count int) {
	start, end := t.vec.ChildRange(node)
	if end <= start {
		return 0, 0
	}
	firstChild = t.vec.Rank1(start) + 1
	count = int(end - start)
	return firstChild, count
}

// findChild returns the node number of the child of node reached by
// label, if any.
func (t *Trie[L, V]) findChild(node int, label L) (int, bool) {
	first, count := t.childRange(node)
	if count == 0 {
		return 0, false
	}

	lo := 0
	if t.cellAt(first).isValue() {
		lo = 1 // a value cell always sorts before every label
	}
	hi := count

	for lo < hi {
		mid := (lo + hi) / 2
		c := t.cellAt(first + mid)
		switch cmp.Compare(c.label, label) {
		case 0:
			return first + mid, true
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return 0, false
}

// terminal returns node's own value, if node has a value cell as its
// first child.
func (t *Trie[L, V]) terminal(node int) (V, bool) {
	first, count := t.childRange(node)
	if count == 0 {
		var zero V
		return zero, false
	}
	c := t.cellAt(first)
	if !c.isValue() {
		var zero V
		return zero, false
	}
	return c.value, true
}

// descend walks query from the root, returning the node number
// reached and whether every label in query matched an existing edge.
func (t *Trie[L, V]) descend(query []L) (int, bool) {
	node := rootNode
	for _, label := range query {
		child, ok := t.findChild(node, label)
		if !ok {
			return 0, false
		}
		node = child
	}
	return node, true
}

// ExactMatch returns the value stored under query, if query is itself
// a stored key.
func (t *Trie[L, V]) ExactMatch(query []L) (V, bool) {
	node, ok := t.descend(query)
	if !ok {
		var zero V
		return zero, false
	}
	return t.terminal(node)
}

// ExactMatchMut returns a mutable pointer to the value stored under
// query, if query is itself a stored key. The caller must not retain
// the pointer across a rebuild of the Trie.
func (t *Trie[L, V]) ExactMatchMut(query []L) (*V, bool) {
	node, ok := t.descend(query)
	if !ok {
		return nil, false
	}
	first, count := t.childRange(node)
	if count == 0 || !t.cellAt(first).isValue() {
		return nil, false
	}
	return &t.cells[first-3].value, true
}

// IsPrefix reports whether query is a strict prefix of at least one
// longer stored key. A query that is itself a stored key but has no
// longer key extending it (a leaf terminal) is not a prefix: its
// landing node's only child, if any, is its own value cell, not a
// continuation.
func (t *Trie[L, V]) IsPrefix(query []L) bool {
	node, ok := t.descend(query)
	if !ok {
		return false
	}
	return t.hasLabelChild(node)
}

// hasLabelChild reports whether node has at least one child that is
// a Label cell, i.e. a continuation to a longer key, as opposed to
// only (at most) its own Value cell.
func (t *Trie[L, V]) hasLabelChild(node int) bool {
	first, count := t.childRange(node)
	if count == 0 {
		return false
	}
	if t.cellAt(first).isValue() {
		return count > 1
	}
	return true
}

// nonValueChild returns the node number of node's sole non-value
// child, and whether it has exactly one.
func (t *Trie[L, V]) nonValueChild(node int) (int, bool) {
	first, count := t.childRange(node)
	if count > 0 && t.cellAt(first).isValue() {
		first++
		count--
	}
	if count != 1 {
		return 0, false
	}
	return first, true
}

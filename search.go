// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"cmp"
	"iter"
)

// Match is one result produced while enumerating keys out of a Trie.
// Err is non-nil only when the supplied [Collector] failed to
// reconstruct Key for this particular result; the iteration itself
// keeps going regardless.
type Match[C any, V any] struct {
	Key   C
	Value V
	Err   error
}

// Go does not allow a method to introduce its own type parameters
// beyond its receiver's, so the searches that need a collector result
// type C independent of a Trie's own L and V are package-level
// functions rather than methods.

// PredictiveSearch enumerates every stored key that has query as a
// prefix, in ascending label order, together with its value. Each
// emitted key is reconstructed, labels included from the very start of
// the key, by a fresh collector obtained from newCollector.
func PredictiveSearch[L cmp.Ordered, V any, C any](t *Trie[L, V], newCollector func() Collector[L, C], query []L) iter.Seq[Match[C, V]] {
	return func(yield func(Match[C, V]) bool) {
		node, ok := t.descend(query)
		if !ok {
			return
		}
		path := append([]L(nil), query...)
		walkSubtree(t, newCollector, node, path, yield)
	}
}

// PostfixSearch enumerates the same keys as [PredictiveSearch], but
// each reconstructed Key contains only the labels following query,
// not query itself.
func PostfixSearch[L cmp.Ordered, V any, C any](t *Trie[L, V], newCollector func() Collector[L, C], query []L) iter.Seq[Match[C, V]] {
	return func(yield func(Match[C, V]) bool) {
		node, ok := t.descend(query)
		if !ok {
			return
		}
		walkSubtree(t, newCollector, node, nil, yield)
	}
}

// walkSubtree performs an explicit-recursion depth-first descent from
// node, yielding a Match for every terminal crossed. path holds the
// labels already consumed on the way to node and is never aliased
// across sibling branches, so each call gets its own backing array.
func walkSubtree[L cmp.Ordered, V any, C any](t *Trie[L, V], newCollector func() Collector[L, C], node int, path []L, yield func(Match[C, V]) bool) bool {
	if v, found := t.terminal(node); found {
		if !emit(newCollector, path, v, yield) {
			return false
		}
	}

	first, count := t.childRange(node)
	for i := 0; i < count; i++ {
		c := t.cellAt(first + i)
		if c.isValue() {
			continue
		}
		childPath := append(append([]L(nil), path...), c.label)
		if !walkSubtree(t, newCollector, first+i, childPath, yield) {
			return false
		}
	}
	return true
}

// CommonPrefixSearch enumerates every stored key that is a prefix of
// query, in ascending length order, together with its value.
func CommonPrefixSearch[L cmp.Ordered, V any, C any](t *Trie[L, V], newCollector func() Collector[L, C], query []L) iter.Seq[Match[C, V]] {
	return func(yield func(Match[C, V]) bool) {
		node := rootNode
		var path []L

		if v, found := t.terminal(node); found {
			if !emit(newCollector, path, v, yield) {
				return
			}
		}

		for _, label := range query {
			child, ok := t.findChild(node, label)
			if !ok {
				return
			}
			node = child
			path = append(path, label)

			if v, found := t.terminal(node); found {
				if !emit(newCollector, path, v, yield) {
					return
				}
			}
		}
	}
}

// LongestPrefix descends query as far as it matches, then keeps going
// past the end of query through any unbranching chain of non-terminal
// nodes with exactly one non-value child, stopping at the first
// terminal node or the first point of branching or dead end. The
// labels consumed along the whole traversed path, not just the part
// that came from query, are handed to a fresh collector and returned:
// the result can therefore be longer than query itself whenever query
// names a unique path through the trie that hasn't reached a stored
// key yet. ok is false if no label at all was consumed.
func LongestPrefix[L cmp.Ordered, V any, C any](t *Trie[L, V], newCollector func() Collector[L, C], query []L) (key C, err error, ok bool) {
	node := rootNode
	var path []L

	for _, label := range query {
		child, found := t.findChild(node, label)
		if !found {
			break
		}
		node = child
		path = append(path, label)
	}

	for {
		if _, terminal := t.terminal(node); terminal {
			break
		}
		child, unique := t.nonValueChild(node)
		if !unique {
			break
		}
		node = child
		path = append(path, t.cellAt(child).label)
	}

	if len(path) == 0 {
		var zero C
		return zero, nil, false
	}

	c := newCollector()
	for _, l := range path {
		c.Push(l)
	}
	key, err = c.Collect()
	return key, err, true
}

func emit[L cmp.Ordered, V any, C any](newCollector func() Collector[L, C], path []L, value V, yield func(Match[C, V]) bool) bool {
	c := newCollector()
	for _, l := range path {
		c.Push(l)
	}
	key, err := c.Collect()
	return yield(Match[C, V]{Key: key, Value: value, Err: err})
}

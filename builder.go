// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"cmp"

	extbitset "github.com/bits-and-blooms/bitset"

	"github.com/go-louds/trie/internal/bitset"
	"github.com/go-louds/trie/internal/louds"
	"github.com/go-louds/trie/internal/naive"
)

// Builder accumulates key/value pairs into a [naive] construction trie
// and compiles them, once, into an immutable succinct [Trie]. A
// Builder is single-use: Build drains the construction trie, and the
// Builder should not be reused afterwards.
type Builder[L cmp.Ordered, V any] struct {
	root *naive.Node[L, V]
}

// NewBuilder returns an empty Builder.
func NewBuilder[L cmp.Ordered, V any]() *Builder[L, V] {
	return &Builder[L, V]{root: naive.NewRoot[L, V]()}
}

// Push associates value with key. Pushing the same key twice
// overwrites the previous value: last write wins. A nil or empty key
// associates value with the trie's root-terminal position.
func (b *Builder[L, V]) Push(key []L, value V) *Builder[L, V] {
	b.root.Push(key, value)
	return b
}

// queueItem is one pending breadth-first emission step: either a real
// construction-trie node, or a marker standing in for the synthetic
// value cell just emitted for its parent. The marker exists purely so
// that value cells, like every other node, get exactly one phantom
// sibling (a trailing 0 bit) when their turn in the queue comes.
type queueItem[L cmp.Ordered, V any] struct {
	node        *naive.Node[L, V]
	isValueLeaf bool
}

// Build drains the construction trie breadth-first, emitting one LOUDS
// bit per child plus a phantom sibling marker per node, and compiles
// the result into a succinct, read-only [Trie].
//
// Node numbering starts at 1 for a virtual super-root whose sole child
// is the real root (node 2); this keeps the root itself free of any
// meaningless "incoming label" while still letting every other node's
// position in the bit sequence be computed with the same rank/select
// formulas. The label table mirrors that offset: the cell that
// introduces node n (n >= 3) lives at index n-3.
func (b *Builder[L, V]) Build() *Trie[L, V] {
	bits := extbitset.New(0)
	pos := uint(1) // position 0 is reserved and always clear

	push := func(bit bool) {
		if bit {
			bits.Set(pos)
		}
		pos++
	}

	var cells []cell[L, V]

	// super-root: exactly one child, the real root
	push(true)
	push(false)

	queue := []queueItem[L, V]{{node: b.root}}
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]

		if item.isValueLeaf {
			push(false)
			continue
		}

		n := item.node
		if v, ok := n.Value(); ok {
			push(true)
			cells = append(cells, cell[L, V]{kind: valueCell, value: v})
			queue = append(queue, queueItem[L, V]{isValueLeaf: true})
		}

		for _, child := range n.Children() {
			push(true)
			label, _ := child.Label()
			cells = append(cells, cell[L, V]{kind: labelCell, label: label})
			queue = append(queue, queueItem[L, V]{node: child})
		}

		push(false)
	}

	frozen := bitset.BitSet(bits.Bytes())
	vec := louds.Freeze(frozen, pos-1)

	return &Trie[L, V]{vec: vec, cells: cells}
}

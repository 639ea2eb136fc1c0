// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

// Package louds implements the succinct, level-order tree encoding
// described by Jacobson: one 1-bit per child followed by a single
// 0-bit, emitted in breadth-first order, with a virtual super-root
// standing in for the tree's real root.
//
// A [Vector] is immutable once frozen and supports rank/select backed
// navigation between parent and child node numbers without ever
// materializing pointers or a node table.
package louds

import (
	"github.com/go-louds/trie/internal/bitset"
)

// Vector is a frozen LOUDS bit sequence over node numbers 1..N, where
// node 1 is the super-root and node 2 is the tree's real root.
//
// Bit position 0 is never set and is never treated as real data; valid
// bit positions run 1..Len(). Reserving position 0 lets Select0(0) act
// as a natural sentinel for "the position just before the first
// child-list", which keeps every navigation formula branch-free at the
// left edge of the sequence.
//
// Rank and select are answered by a precomputed [bitset.Directory]
// rather than by scanning the raw words on every call: a two-level
// directory (per-block popcounts, per-word deltas within a block)
// gives O(1) rank, and a sampled select table starts each select scan
// within one sample interval of the answer; select is therefore a
// bounded scan over that interval, not O(1).
type Vector struct {
	dir *bitset.Directory
	n   uint
}

// Freeze wraps a fully populated bit sequence as an immutable LOUDS
// vector, building its rank/select directory once. n is the number of
// valid bit positions (1..n); the bit at position 0 and any bits beyond
// n must be clear, since the rank directory counts every set bit in
// the words it is given.
func Freeze(bits bitset.BitSet, n uint) *Vector {
	return &Vector{dir: bitset.NewDirectory(bits, n), n: n}
}

// Len returns the number of valid bit positions in the sequence.
func (v *Vector) Len() uint { return v.n }

// NodeCount returns the total number of encoded nodes, including the
// super-root.
func (v *Vector) NodeCount() int { return v.Rank1(v.n) + 1 }

// Get reports the bit at pos, a 1-indexed position in [1, Len()].
func (v *Vector) Get(pos uint) bool {
	if pos < 1 || pos > v.n {
		panic("louds: bit position out of range")
	}
	return v.dir.Test(pos)
}

// Rank1 returns the number of set bits in positions [1, pos].
func (v *Vector) Rank1(pos uint) int {
	if pos == 0 {
		return 0
	}
	if pos > v.n {
		pos = v.n
	}
	return v.dir.Rank1(pos)
}

// Rank0 returns the number of clear bits in positions [1, pos].
func (v *Vector) Rank0(pos uint) int {
	if pos > v.n {
		pos = v.n
	}
	return v.dir.Rank0(pos)
}

// Select1 returns the position of the k-th set bit, k counted from 1.
func (v *Vector) Select1(k int) (pos uint, ok bool) {
	return v.dir.Select1(k)
}

// Select0 returns the position of the k-th clear bit, k counted from 1.
// Select0(0) is defined as 0, the sentinel position preceding the
// first child-list in the sequence.
func (v *Vector) Select0(k int) (pos uint, ok bool) {
	if k == 0 {
		return 0, true
	}
	return v.dir.Select0(k)
}

// ChildRange returns the half-open bit-position range [start, end)
// spanned by the 1-bits belonging to node p's children. If p has no
// children, start == end.
func (v *Vector) ChildRange(p int) (start, end uint) {
	lo, ok := v.Select0(p - 1)
	if !ok {
		panic("louds: node number out of range")
	}
	hi, ok := v.Select0(p)
	if !ok {
		panic("louds: node number out of range")
	}

	start = lo + 1
	end = hi
	if end < start {
		end = start
	}
	return start, end
}

// ChildCount returns the number of children of node p.
func (v *Vector) ChildCount(p int) int {
	start, end := v.ChildRange(p)
	return int(end - start)
}

// HasChildren reports whether node p has at least one child.
func (v *Vector) HasChildren(p int) bool {
	return v.ChildCount(p) > 0
}

// ChildNode returns the node number of the k-th child of p, k counted
// from 0.
func (v *Vector) ChildNode(p, k int) int {
	start, end := v.ChildRange(p)
	if k < 0 || uint(k) >= end-start {
		panic("louds: child index out of range")
	}
	return v.Rank1(start+uint(k)) + 1
}

// ChildNodes returns the node numbers of every child of p, in
// left-to-right order.
func (v *Vector) ChildNodes(p int) []int {
	start, end := v.ChildRange(p)
	count := int(end - start)
	if count == 0 {
		return nil
	}

	firstRank := v.Rank1(start)
	nodes := make([]int, count)
	for i := range nodes {
		nodes[i] = firstRank + i + 1
	}
	return nodes
}

// Parent returns the parent node number of c. c must not be the
// super-root (node 1); Parent panics otherwise.
func (v *Vector) Parent(c int) int {
	if c <= 1 {
		panic("louds: super-root has no parent")
	}
	bitPos, ok := v.Select1(c - 1)
	if !ok {
		panic("louds: node number out of range")
	}
	return v.Rank0(bitPos) + 1
}

// Ancestors returns the chain of ancestor node numbers of c, nearest
// first, ending with the super-root (node 1). c itself is not
// included.
func (v *Vector) Ancestors(c int) []int {
	var out []int
	for c > 1 {
		c = v.Parent(c)
		out = append(out, c)
	}
	return out
}

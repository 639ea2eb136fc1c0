// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package louds

import (
	"slices"
	"testing"

	"github.com/go-louds/trie/internal/bitset"
)

// buildSample constructs the 5-node tree:
//
//	1 (super-root)
//	└─ 2 (root)
//	   ├─ 3
//	   │  └─ 5
//	   └─ 4
//
// whose LOUDS sequence, positions 1..9, is 1 0 1 1 0 1 0 0 0.
func buildSample() *Vector {
	var b bitset.BitSet
	ones := []uint{1, 3, 4, 6}
	for _, i := range ones {
		b.Set(i)
	}
	return Freeze(b, 9)
}

func TestChildRange(t *testing.T) {
	v := buildSample()

	tests := []struct {
		node       int
		start, end uint
	}{
		{1, 1, 2},
		{2, 3, 5},
		{3, 6, 7},
		{4, 8, 8},
		{5, 9, 9},
	}

	for _, tt := range tests {
		start, end := v.ChildRange(tt.node)
		if start != tt.start || end != tt.end {
			t.Errorf("ChildRange(%d) = (%d,%d), want (%d,%d)", tt.node, start, end, tt.start, tt.end)
		}
	}
}

func TestChildNodes(t *testing.T) {
	v := buildSample()

	tests := []struct {
		node int
		want []int
	}{
		{1, []int{2}},
		{2, []int{3, 4}},
		{3, []int{5}},
		{4, nil},
		{5, nil},
	}

	for _, tt := range tests {
		got := v.ChildNodes(tt.node)
		if !slices.Equal(got, tt.want) {
			t.Errorf("ChildNodes(%d) = %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestParent(t *testing.T) {
	v := buildSample()

	tests := []struct {
		node int
		want int
	}{
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
	}

	for _, tt := range tests {
		if got := v.Parent(tt.node); got != tt.want {
			t.Errorf("Parent(%d) = %d, want %d", tt.node, got, tt.want)
		}
	}
}

func TestParentOfSuperRootPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Parent(1) did not panic")
		}
	}()
	buildSample().Parent(1)
}

func TestAncestors(t *testing.T) {
	v := buildSample()

	got := v.Ancestors(5)
	want := []int{3, 2, 1}
	if !slices.Equal(got, want) {
		t.Errorf("Ancestors(5) = %v, want %v", got, want)
	}
}

func TestNodeCount(t *testing.T) {
	v := buildSample()
	if got := v.NodeCount(); got != 5 {
		t.Errorf("NodeCount() = %d, want 5", got)
	}
}

func TestHasChildren(t *testing.T) {
	v := buildSample()

	tests := []struct {
		node int
		want bool
	}{
		{1, true},
		{2, true},
		{3, true},
		{4, false},
		{5, false},
	}

	for _, tt := range tests {
		if got := v.HasChildren(tt.node); got != tt.want {
			t.Errorf("HasChildren(%d) = %v, want %v", tt.node, got, tt.want)
		}
	}
}

func TestSelect0Sentinel(t *testing.T) {
	v := buildSample()
	pos, ok := v.Select0(0)
	if !ok || pos != 0 {
		t.Errorf("Select0(0) = (%d,%v), want (0,true)", pos, ok)
	}
}

func TestSelectOutOfRange(t *testing.T) {
	v := buildSample()

	if _, ok := v.Select1(100); ok {
		t.Error("Select1(100) should fail on a 4-one sequence")
	}
	if _, ok := v.Select0(100); ok {
		t.Error("Select0(100) should fail on a 5-zero sequence")
	}
	if _, ok := v.Select0(-1); ok {
		t.Error("Select0(-1) should fail")
	}
}

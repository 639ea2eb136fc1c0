// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package bitset

import (
	"math/rand/v2"
	"testing"
)

// bruteRank1 counts set bits in [0, pos] the slow, obviously-correct way.
func bruteRank1(b BitSet, pos uint) int {
	n := 0
	for i := uint(0); i <= pos; i++ {
		if b.Test(i) {
			n++
		}
	}
	return n
}

func TestDirectoryRankMatchesBruteForce(t *testing.T) {
	var b BitSet
	n := uint(5000)
	for i := uint(1); i <= n; i++ {
		if rand.IntN(3) == 0 {
			b.Set(i)
		}
	}

	dir := NewDirectory(b, n)

	for _, pos := range []uint{0, 1, 2, 63, 64, 65, 2047, 2048, 2049, 4999, 5000} {
		want := bruteRank1(b, pos)
		if got := dir.Rank1(pos); got != want {
			t.Errorf("Rank1(%d) = %d, want %d", pos, got, want)
		}
		wantRank0 := int(pos) - want
		if pos == 0 {
			wantRank0 = 0
		}
		if got := dir.Rank0(pos); got != wantRank0 {
			t.Errorf("Rank0(%d) = %d, want %d", pos, got, wantRank0)
		}
	}
}

func TestDirectorySelectRoundTrips(t *testing.T) {
	var b BitSet
	n := uint(20000)
	for i := uint(1); i <= n; i++ {
		if rand.IntN(4) == 0 {
			b.Set(i)
		}
	}

	dir := NewDirectory(b, n)

	for k := 1; k <= dir.total1; k += 37 {
		pos, ok := dir.Select1(k)
		if !ok {
			t.Fatalf("Select1(%d) not found, total1=%d", k, dir.total1)
		}
		if !b.Test(pos) {
			t.Fatalf("Select1(%d) = %d, but bit not set", k, pos)
		}
		if got := dir.Rank1(pos); got != k {
			t.Fatalf("Select1(%d) = %d, but Rank1(%d) = %d", k, pos, pos, got)
		}
	}

	for k := 1; k <= dir.total0; k += 41 {
		pos, ok := dir.Select0(k)
		if !ok {
			t.Fatalf("Select0(%d) not found, total0=%d", k, dir.total0)
		}
		if b.Test(pos) {
			t.Fatalf("Select0(%d) = %d, but bit is set", k, pos)
		}
		if got := dir.Rank0(pos); got != k {
			t.Fatalf("Select0(%d) = %d, but Rank0(%d) = %d", k, pos, pos, got)
		}
	}
}

func TestDirectorySelectOutOfRange(t *testing.T) {
	var b BitSet
	b.Set(1)
	b.Set(3)
	dir := NewDirectory(b, 4)

	if _, ok := dir.Select1(0); ok {
		t.Error("Select1(0) should fail")
	}
	if _, ok := dir.Select1(dir.total1 + 1); ok {
		t.Error("Select1 past total1 should fail")
	}
	if _, ok := dir.Select0(dir.total0 + 1); ok {
		t.Error("Select0 past total0 should fail")
	}
}

func TestDirectoryEmpty(t *testing.T) {
	dir := NewDirectory(nil, 0)
	if got := dir.Rank1(0); got != 0 {
		t.Errorf("Rank1(0) on empty directory = %d, want 0", got)
	}
	if got := dir.Rank0(0); got != 0 {
		t.Errorf("Rank0(0) on empty directory = %d, want 0", got)
	}
	if _, ok := dir.Select1(1); ok {
		t.Error("Select1(1) on empty directory should fail")
	}
}

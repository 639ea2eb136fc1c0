// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import "cmp"

// Collector converts an ordered sequence of labels, pushed one at a
// time during key enumeration, into a caller-chosen container. It is
// the boundary between this package's opaque labels and whatever
// concrete key type a caller wants back out of a search — a string, a
// []L, or a domain-specific type entirely outside this package.
//
// A Collector instance is used to reconstruct exactly one key and
// then discarded; Push is never called again after Collect.
type Collector[L cmp.Ordered, C any] interface {
	Push(label L)
	Collect() (C, error)
}

// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package trie

import (
	"cmp"
	"fmt"
	"unicode/utf8"
)

// SliceCollector is the identity [Collector]: it reconstructs a key as
// a plain slice of its labels, for any orderable label type.
type SliceCollector[L cmp.Ordered] struct {
	labels []L
}

// NewSliceCollector returns a fresh [SliceCollector].
func NewSliceCollector[L cmp.Ordered]() *SliceCollector[L] {
	return &SliceCollector[L]{}
}

func (c *SliceCollector[L]) Push(label L) {
	c.labels = append(c.labels, label)
}

func (c *SliceCollector[L]) Collect() ([]L, error) {
	return c.labels, nil
}

// RuneStringCollector reconstructs a key as a string from rune labels.
type RuneStringCollector struct {
	runes []rune
}

// NewRuneStringCollector returns a fresh [RuneStringCollector].
func NewRuneStringCollector() *RuneStringCollector {
	return &RuneStringCollector{}
}

func (c *RuneStringCollector) Push(label rune) {
	c.runes = append(c.runes, label)
}

func (c *RuneStringCollector) Collect() (string, error) {
	return string(c.runes), nil
}

// ByteStringCollector reconstructs a key as a string from byte labels,
// failing with an error if the accumulated bytes are not valid UTF-8.
// It is the collector used for byte-keyed tries whose values happen to
// be UTF-8 text, including multi-byte runes such as emoji.
type ByteStringCollector struct {
	bytes []byte
}

// NewByteStringCollector returns a fresh [ByteStringCollector].
func NewByteStringCollector() *ByteStringCollector {
	return &ByteStringCollector{}
}

func (c *ByteStringCollector) Push(label byte) {
	c.bytes = append(c.bytes, label)
}

func (c *ByteStringCollector) Collect() (string, error) {
	if !utf8.Valid(c.bytes) {
		return "", fmt.Errorf("trie: collected bytes %v are not valid UTF-8", c.bytes)
	}
	return string(c.bytes), nil
}

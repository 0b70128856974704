// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

// Node is a node of a prefix-code tree. A leaf carries a symbol and an
// internal node carries two children; unary nodes never appear in trees
// built by this package. Freq is only meaningful during construction and
// is zero on deserialized trees.
type Node struct {
	Left, Right *Node
	Sym         byte
	Freq        int
}

// Leaf reports whether n is a leaf.
func (n *Node) Leaf() bool { return n.Left == nil && n.Right == nil }

// FreqTable maps symbols to their number of occurrences. Symbols that do
// not occur have no entry.
type FreqTable map[byte]int

// CountFreqs scans p and returns the frequency table of its bytes.
func CountFreqs(p []byte) FreqTable {
	freqs := make(FreqTable)
	for _, b := range p {
		freqs[b]++
	}
	return freqs
}

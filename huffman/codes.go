// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

// CodeTable maps each symbol of a tree to its code, the '0'/'1' string
// describing the descent from the root to the symbol's leaf.
type CodeTable map[byte]string

// Codes derives the code table for the tree rooted at root. Descending
// left appends '0' and descending right appends '1'. A tree that is a
// single leaf gets the fixed one-character code "0", since an empty
// descent cannot represent repeated occurrences of the symbol. A nil
// root yields an empty table.
func Codes(root *Node) CodeTable {
	codes := make(CodeTable)
	if root == nil {
		return codes
	}
	if root.Leaf() {
		codes[root.Sym] = "0"
		return codes
	}
	walk(root, nil, codes)
	return codes
}

func walk(n *Node, path []byte, codes CodeTable) {
	if n.Leaf() {
		codes[n.Sym] = string(path)
		return
	}
	walk(n.Left, append(path, '0'), codes)
	walk(n.Right, append(path, '1'), codes)
}

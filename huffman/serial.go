// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"fmt"
	"strings"
)

// Tag bytes of the serialized tree grammar.
const (
	tagLeaf     = 'L'
	tagInternal = 'I'
)

// Serialize renders the tree rooted at root in preorder. A leaf becomes
// the tag 'L' followed by the raw symbol byte; an internal node becomes
// the tag 'I' followed by the serializations of its left and right
// children. A nil root becomes the empty string. The grammar is
// self-terminating, so no lengths or delimiters appear.
func Serialize(root *Node) string {
	var sb strings.Builder
	serialize(root, &sb)
	return sb.String()
}

func serialize(n *Node, sb *strings.Builder) {
	if n == nil {
		return
	}
	if n.Leaf() {
		sb.WriteByte(tagLeaf)
		sb.WriteByte(n.Sym)
		return
	}
	sb.WriteByte(tagInternal)
	serialize(n.Left, sb)
	serialize(n.Right, sb)
}

// Deserialize parses the grammar produced by Serialize and rebuilds the
// tree. The empty string yields a nil root. Input that ends mid-parse,
// carries an unrecognized tag or continues past the end of the tree
// reports ErrMalformedTree. Frequencies are not part of the grammar;
// deserialized nodes carry zero.
func Deserialize(s string) (*Node, error) {
	if s == "" {
		return nil, nil
	}
	pos := 0
	root, err := deserialize(s, &pos)
	if err != nil {
		return nil, err
	}
	if pos != len(s) {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrMalformedTree,
			len(s)-pos)
	}
	return root, nil
}

func deserialize(s string, pos *int) (*Node, error) {
	if *pos >= len(s) {
		return nil, fmt.Errorf("%w: truncated at byte %d", ErrMalformedTree,
			*pos)
	}
	tag := s[*pos]
	*pos++
	switch tag {
	case tagLeaf:
		if *pos >= len(s) {
			return nil, fmt.Errorf("%w: leaf without symbol at byte %d",
				ErrMalformedTree, *pos)
		}
		sym := s[*pos]
		*pos++
		return &Node{Sym: sym}, nil
	case tagInternal:
		left, err := deserialize(s, pos)
		if err != nil {
			return nil, err
		}
		right, err := deserialize(s, pos)
		if err != nil {
			return nil, err
		}
		return &Node{Left: left, Right: right}, nil
	default:
		return nil, fmt.Errorf("%w: unrecognized tag %#02x at byte %d",
			ErrMalformedTree, tag, *pos-1)
	}
}

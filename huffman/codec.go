// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import (
	"bytes"
	"fmt"
	"strings"
)

// Encode translates p into a bit-string by concatenating the code of
// each byte in input order. Every byte of p must have an entry in
// codes; a missing entry reports ErrNoCode with the offending symbol
// and offset.
func Encode(p []byte, codes CodeTable) (string, error) {
	var sb strings.Builder
	for i, b := range p {
		code, ok := codes[b]
		if !ok {
			return "", fmt.Errorf("%w: %#02x at offset %d", ErrNoCode, b, i)
		}
		sb.WriteString(code)
	}
	return sb.String(), nil
}

// Decode walks the tree rooted at root over the characters of bits and
// returns the decoded symbols. Each walk starts at the root, follows
// '0' left and '1' right, and emits a symbol on reaching a leaf. The
// bit-string must consist of complete walks over existing nodes;
// anything else reports ErrMalformedEncoding.
//
// A root that is itself a leaf has no edges to follow. Its bit-string
// must hold only '0' characters, the code assigned by Codes, one per
// occurrence of the symbol. A nil root decodes the empty bit-string to
// nil and rejects every other.
func Decode(bits string, root *Node) ([]byte, error) {
	if root == nil {
		if bits != "" {
			return nil, fmt.Errorf("%w: bits without a tree", ErrMalformedEncoding)
		}
		return nil, nil
	}
	if root.Leaf() {
		for i := 0; i < len(bits); i++ {
			if bits[i] != '0' {
				return nil, fmt.Errorf(
					"%w: character %q at offset %d against a single-leaf tree",
					ErrMalformedEncoding, bits[i], i)
			}
		}
		return bytes.Repeat([]byte{root.Sym}, len(bits)), nil
	}
	var out []byte
	cur := root
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			cur = cur.Left
		case '1':
			cur = cur.Right
		default:
			return nil, fmt.Errorf("%w: character %q at offset %d",
				ErrMalformedEncoding, bits[i], i)
		}
		if cur == nil {
			return nil, fmt.Errorf("%w: no node for bit at offset %d",
				ErrMalformedEncoding, i)
		}
		if cur.Leaf() {
			out = append(out, cur.Sym)
			cur = root
		}
	}
	if cur != root {
		return nil, fmt.Errorf("%w: bit-string ends inside a code",
			ErrMalformedEncoding)
	}
	return out, nil
}

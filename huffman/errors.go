// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huffman

import "errors"

// Errors reported by the codec. Functions wrap detail around these
// sentinels, so callers test them with errors.Is.
var (
	// ErrNoSymbols indicates that a tree was requested for an empty
	// frequency table. Empty inputs must be handled before a tree is
	// built.
	ErrNoSymbols = errors.New("huffman: no symbols")

	// ErrNoCode indicates that a symbol has no entry in the code table.
	// The table must derive from the same data that is being encoded.
	ErrNoCode = errors.New("huffman: symbol without code")

	// ErrMalformedTree indicates that a serialized tree ends mid-parse,
	// carries an unrecognized tag byte or trailing bytes.
	ErrMalformedTree = errors.New("huffman: malformed tree")

	// ErrMalformedEncoding indicates that a bit-string does not describe
	// complete walks of the tree it is decoded against.
	ErrMalformedEncoding = errors.New("huffman: malformed encoding")
)

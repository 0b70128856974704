// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huffman implements the codec at the heart of the huff format:
// frequency counting, optimal prefix-code tree construction, code table
// derivation, encoding and decoding, and the preorder tree serialization
// that travels with every compressed stream.
//
// The codec works on bit-strings, Go strings holding only the characters
// '0' and '1'. Packing bit-strings into bytes is the container's concern
// and stays out of this package.
package huffman

// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package huff supports the compression and decompression of huff files.
//
// A huff file holds a single Huffman-compressed stream. The prefix-code
// tree travels inside the stream ahead of the payload, so decompression
// needs no state beyond the file itself. Writer produces the format and
// Reader consumes it; the huffman subpackage implements the codec the
// container builds on.
package huff

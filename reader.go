// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package huff

import (
	"bytes"
	"errors"
	"io"

	"github.com/huffio/huff/huffman"
)

// Reader decodes huff files.
//
// The format stores the code tree ahead of the payload, the payload's
// bit count behind it and a checksum over the whole stream, so NewReader
// consumes and decodes the complete stream up front. Read serves the
// decompressed data from memory.
type Reader struct {
	data *bytes.Reader
}

// NewReader reads a complete huff stream from r and decodes it. Streams
// that do not follow the format, fail the checksum or do not decode
// against their own tree are rejected here; Read reports no errors but
// io.EOF.
func NewReader(r io.Reader) (*Reader, error) {
	if r == nil {
		return nil, errors.New("huff: reader must be not nil")
	}
	tree, bits, err := readStream(r)
	if err != nil {
		return nil, err
	}
	root, err := huffman.Deserialize(tree)
	if err != nil {
		return nil, err
	}
	data, err := huffman.Decode(bits, root)
	if err != nil {
		return nil, err
	}
	return &Reader{data: bytes.NewReader(data)}, nil
}

// Read serves the decompressed data.
func (r *Reader) Read(p []byte) (n int, err error) {
	return r.data.Read(p)
}

// Size returns the total size of the decompressed data.
func (r *Reader) Size() int64 { return r.data.Size() }

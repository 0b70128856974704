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

var errWriterClosed = errors.New("huff: writer is closed")

// Writer compresses all data written to it into a single huff stream.
//
// The code tree depends on the frequencies of all symbols, so no output
// can be produced before the input is complete. Write only buffers;
// Close builds the tree, encodes the buffered data and writes the
// stream.
type Writer struct {
	huff io.Writer
	buf  bytes.Buffer
	bits int64
	err  error
}

// NewWriter creates a Writer that writes a huff stream to w when it is
// closed.
func NewWriter(w io.Writer) *Writer {
	return &Writer{huff: w}
}

// Write buffers p for compression by Close. It fails only on a closed
// Writer.
func (w *Writer) Write(p []byte) (n int, err error) {
	if w.err != nil {
		return 0, w.err
	}
	return w.buf.Write(p)
}

// Close compresses the buffered data and writes the complete stream to
// the underlying writer. The underlying writer is not closed. Further
// calls return errWriterClosed.
//
// Buffered data of length zero produces a valid stream without tree and
// payload.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	data := w.buf.Bytes()
	if len(data) == 0 {
		if _, err := writeStream(w.huff, "", ""); err != nil {
			w.err = err
			return err
		}
		w.err = errWriterClosed
		return nil
	}
	root, err := huffman.Build(huffman.CountFreqs(data))
	if err != nil {
		w.err = err
		return err
	}
	bits, err := huffman.Encode(data, huffman.Codes(root))
	if err != nil {
		w.err = err
		return err
	}
	if _, err = writeStream(w.huff, huffman.Serialize(root), bits); err != nil {
		w.err = err
		return err
	}
	w.bits = int64(len(bits))
	w.err = errWriterClosed
	return nil
}

// BitCount returns the number of payload bits of the written stream. It
// is valid after Close.
func (w *Writer) BitCount() int64 { return w.bits }

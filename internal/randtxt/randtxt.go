// Copyright 2025 The huff Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randtxt generates random text with a skewed symbol
// distribution. Code trees over such text have realistic, uneven
// shapes, unlike trees over uniformly random data.
package randtxt

import "math/rand"

// alphabet orders the symbols roughly by their frequency in English
// text, so the most probable ranks map to the most common letters.
const alphabet = " etaoinshrdlucmfwypvbgkjqxz,.\n"

// Reader produces an endless stream of random text. The same source
// seed produces the same text.
type Reader struct {
	zipf *rand.Zipf
}

// NewReader creates a Reader drawing symbols from a Zipf distribution
// over src.
func NewReader(src rand.Source) *Reader {
	rnd := rand.New(src)
	return &Reader{
		zipf: rand.NewZipf(rnd, 1.2, 1, uint64(len(alphabet)-1)),
	}
}

func (r *Reader) Read(p []byte) (n int, err error) {
	for i := range p {
		p[i] = alphabet[r.zipf.Uint64()]
	}
	return len(p), nil
}

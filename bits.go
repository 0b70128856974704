package huff

import "errors"

// maxUvarintLen is the longest accepted encoding of a uvarint. Ten
// base-128 digits cover the full uint64 range.
const maxUvarintLen = 10

// errPutUvarintShortBuffer indicates a short buffer condition
var errPutUvarintShortBuffer = errors.New("putUvarint: short buffer")

// putUvarint encodes u into p as a variable length uvarint, least
// significant digits first, and returns the number of bytes written.
func putUvarint(p []byte, u uint64) (n int, err error) {
	i := 0
	for u >= 0x80 {
		if i >= len(p) {
			return 0, errPutUvarintShortBuffer
		}
		p[i] = byte(u) | 0x80
		i++
		u >>= 7
	}
	if i >= len(p) {
		return 0, errPutUvarintShortBuffer
	}
	p[i] = byte(u)
	i++
	return i, nil
}

// errors for the uvarint function
var (
	errUvarintShortBuffer = errors.New("uvarint: short buffer")
	errUvarintNullByte    = errors.New("uvarint: unexpected null byte")
	errUvarintOverflow    = errors.New("uvarint: value exceeds 64 bits")
)

// uvarint decodes a variable length uvarint from p and returns the value
// and the number of bytes consumed. Encodings wider than 64 bits are
// rejected, as is the non-canonical form that wastes a trailing null
// byte.
func uvarint(p []byte) (u uint64, n int, err error) {
	for i := 0; i < len(p) && i < maxUvarintLen; i++ {
		b := p[i]
		if b&0x80 == 0 {
			if b == 0 && i > 0 {
				return 0, 0, errUvarintNullByte
			}
			if i == maxUvarintLen-1 && b > 1 {
				return 0, 0, errUvarintOverflow
			}
			return u | uint64(b)<<(7*uint(i)), i + 1, nil
		}
		u |= uint64(b&0x7f) << (7 * uint(i))
	}
	if len(p) >= maxUvarintLen {
		return 0, 0, errUvarintOverflow
	}
	return 0, 0, errUvarintShortBuffer
}

// uint32LE reads an uint32 integer from a byte slice
func uint32LE(b []byte) uint32 {
	x := uint32(b[3]) << 24
	x |= uint32(b[2]) << 16
	x |= uint32(b[1]) << 8
	x |= uint32(b[0])
	return x
}

// putUint32LE puts an uint32 integer into a byte slice that must have at
// least a length of 4 bytes.
func putUint32LE(b []byte, x uint32) {
	b[0] = byte(x)
	b[1] = byte(x >> 8)
	b[2] = byte(x >> 16)
	b[3] = byte(x >> 24)
}

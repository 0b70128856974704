package huff

import (
	"bytes"
	"errors"
	"fmt"
	"hash/crc32"
	"io"
	"strings"

	"github.com/icza/bitio"
)

/*** Stream layout ***/

// headerMagic stores the magic bytes every huff stream starts with.
var headerMagic = []byte{0xfd, 'h', 'u', 'f', 'f', 0x00}

// maxTreeLen bounds the serialized tree. A tree over the byte alphabet
// has at most 256 leaves of two bytes each and 255 internal tags.
const maxTreeLen = 2*256 + 255

// minStreamLen is the size of the stream for the empty input: the six
// magic bytes, one null digit for each of the two lengths and the
// checksum.
const minStreamLen = 6 + 1 + 1 + 4

// Errors returned for streams that do not follow the layout.
var (
	errHeaderMagic = errors.New("huff: invalid header magic")
	errChecksum    = errors.New("huff: invalid checksum")
	errTreeLen     = errors.New("huff: tree length out of range")
	errPadding     = errors.New("huff: nonzero padding bits")
	errStrayBytes  = errors.New("huff: stray bytes behind payload")
)

// writeStream writes a complete huff stream to w: the header magic, the
// serialized tree behind its length, the payload bits packed most
// significant bit first behind their count, and the checksum over all
// of it. It returns the number of bytes written.
func writeStream(w io.Writer, tree, bits string) (n int, err error) {
	if len(tree) > maxTreeLen {
		return 0, errTreeLen
	}

	crc := crc32.NewIEEE()
	mw := io.MultiWriter(w, crc)

	// header magic
	k, err := mw.Write(headerMagic)
	n += k
	if err != nil {
		return n, err
	}

	// serialized tree
	p := make([]byte, maxUvarintLen)
	m, err := putUvarint(p, uint64(len(tree)))
	if err != nil {
		return n, err
	}
	k, err = mw.Write(p[:m])
	n += k
	if err != nil {
		return n, err
	}
	k, err = io.WriteString(mw, tree)
	n += k
	if err != nil {
		return n, err
	}

	// payload bits
	m, err = putUvarint(p, uint64(len(bits)))
	if err != nil {
		return n, err
	}
	k, err = mw.Write(p[:m])
	n += k
	if err != nil {
		return n, err
	}
	bw := bitio.NewWriter(mw)
	for i := 0; i < len(bits); i++ {
		switch bits[i] {
		case '0':
			err = bw.WriteBool(false)
		case '1':
			err = bw.WriteBool(true)
		default:
			err = fmt.Errorf("huff: bit-string character %q at offset %d",
				bits[i], i)
		}
		if err != nil {
			return n, err
		}
	}
	if err = bw.Close(); err != nil {
		return n, err
	}
	n += (len(bits) + 7) / 8

	// crc32
	putUint32LE(p, crc.Sum32())
	k, err = w.Write(p[:4])
	n += k
	return n, err
}

// readStream reads a complete huff stream from r and returns the
// serialized tree and the payload bit-string exactly as they were
// given to writeStream. The checksum must match and every byte of the
// stream must be accounted for.
func readStream(r io.Reader) (tree, bits string, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", "", err
	}
	if len(data) < minStreamLen {
		return "", "", fmt.Errorf("huff: stream of %d bytes: %w",
			len(data), io.ErrUnexpectedEOF)
	}

	// checksum
	body, sum := data[:len(data)-4], data[len(data)-4:]
	if crc32.ChecksumIEEE(body) != uint32LE(sum) {
		return "", "", errChecksum
	}

	// header magic
	if !bytes.Equal(body[:len(headerMagic)], headerMagic) {
		return "", "", errHeaderMagic
	}
	body = body[len(headerMagic):]

	// serialized tree
	u, n, err := uvarint(body)
	if err != nil {
		return "", "", fmt.Errorf("huff: tree length: %w", err)
	}
	body = body[n:]
	if u > maxTreeLen {
		return "", "", errTreeLen
	}
	if uint64(len(body)) < u {
		return "", "", fmt.Errorf("huff: serialized tree: %w",
			io.ErrUnexpectedEOF)
	}
	tree = string(body[:u])
	body = body[u:]

	// payload bits
	u, n, err = uvarint(body)
	if err != nil {
		return "", "", fmt.Errorf("huff: bit count: %w", err)
	}
	body = body[n:]
	if uint64(len(body))*8 < u {
		return "", "", fmt.Errorf("huff: payload: %w", io.ErrUnexpectedEOF)
	}
	if uint64(len(body)) != (u+7)/8 {
		return "", "", errStrayBytes
	}
	br := bitio.NewReader(bytes.NewReader(body))
	var sb strings.Builder
	sb.Grow(int(u))
	for i := uint64(0); i < u; i++ {
		b, err := br.ReadBool()
		if err != nil {
			return "", "", err
		}
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	if k := uint64(len(body))*8 - u; k > 0 {
		pad, err := br.ReadBits(uint8(k))
		if err != nil {
			return "", "", err
		}
		if pad != 0 {
			return "", "", errPadding
		}
	}
	return tree, sb.String(), nil
}

package huff

import (
	"bytes"
	"errors"
	"hash/crc32"
	"io"
	"math/rand"
	"strings"
	"testing"
)

// fixCRC recomputes the trailing checksum after a test mutated the
// stream.
func fixCRC(p []byte) {
	putUint32LE(p[len(p)-4:], crc32.ChecksumIEEE(p[:len(p)-4]))
}

func randBits(rnd *rand.Rand, n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for i := 0; i < n; i++ {
		sb.WriteByte('0' + byte(rnd.Intn(2)))
	}
	return sb.String()
}

func TestStreamRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(43))
	tests := []struct {
		tree string
		bits string
	}{
		{"", ""},
		{"La", "0"},
		{"La", "0000"},
		{"ILaLb", "0101"},
		{"ILaILcLb", "0101101110"},
		{"ILaLb", randBits(rnd, 1000)},
		{"ILaLb", randBits(rnd, 1023)},
		{"ILaLb", randBits(rnd, 1024)},
	}
	for _, tc := range tests {
		var buf bytes.Buffer
		n, err := writeStream(&buf, tc.tree, tc.bits)
		if err != nil {
			t.Fatalf("writeStream(%q, %d bits) returned error %v",
				tc.tree, len(tc.bits), err)
		}
		if n != buf.Len() {
			t.Errorf("writeStream returned n=%d; buffer has %d bytes",
				n, buf.Len())
		}
		tree, bits, err := readStream(&buf)
		if err != nil {
			t.Fatalf("readStream(%q, %d bits) returned error %v",
				tc.tree, len(tc.bits), err)
		}
		if tree != tc.tree {
			t.Errorf("readStream returned tree %q; want %q", tree, tc.tree)
		}
		if bits != tc.bits {
			t.Errorf("readStream returned %d bits; want %d and equal",
				len(bits), len(tc.bits))
		}
	}
}

func mustStream(t *testing.T, tree, bits string) []byte {
	t.Helper()
	var buf bytes.Buffer
	if _, err := writeStream(&buf, tree, bits); err != nil {
		t.Fatalf("writeStream returned error %v", err)
	}
	return buf.Bytes()
}

func TestStreamBadMagic(t *testing.T) {
	p := mustStream(t, "La", "00")
	p[1] = 'x'
	fixCRC(p)
	_, _, err := readStream(bytes.NewReader(p))
	if err != errHeaderMagic {
		t.Fatalf("readStream returned error %v; want %v", err,
			errHeaderMagic)
	}
}

func TestStreamBadChecksum(t *testing.T) {
	p := mustStream(t, "ILaLb", "0110")
	p[len(p)-1]++
	_, _, err := readStream(bytes.NewReader(p))
	if err != errChecksum {
		t.Fatalf("readStream returned error %v; want %v", err, errChecksum)
	}

	p = mustStream(t, "ILaLb", "0110")
	p[len(p)-5] ^= 0x40
	_, _, err = readStream(bytes.NewReader(p))
	if err != errChecksum {
		t.Fatalf("readStream after payload flip returned error %v; want %v",
			err, errChecksum)
	}
}

func TestStreamTruncated(t *testing.T) {
	p := mustStream(t, "ILaLb", "010011")
	for i := 0; i < len(p); i++ {
		if _, _, err := readStream(bytes.NewReader(p[:i])); err == nil {
			t.Errorf("readStream accepted truncation to %d of %d bytes",
				i, len(p))
		}
	}
}

func TestStreamTreeLenBound(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(headerMagic)
	q := make([]byte, maxUvarintLen)
	n, err := putUvarint(q, maxTreeLen+1)
	if err != nil {
		t.Fatalf("putUvarint returned error %v", err)
	}
	buf.Write(q[:n])
	buf.Write(bytes.Repeat([]byte{'L'}, 8))
	p := append(buf.Bytes(), 0, 0, 0, 0)
	fixCRC(p)
	_, _, err = readStream(bytes.NewReader(p))
	if err != errTreeLen {
		t.Fatalf("readStream returned error %v; want %v", err, errTreeLen)
	}
}

func TestStreamStrayBytes(t *testing.T) {
	p := mustStream(t, "La", "0")
	p = append(p[:len(p)-4], append([]byte{0}, p[len(p)-4:]...)...)
	fixCRC(p)
	_, _, err := readStream(bytes.NewReader(p))
	if err != errStrayBytes {
		t.Fatalf("readStream returned error %v; want %v", err,
			errStrayBytes)
	}
}

func TestStreamPadding(t *testing.T) {
	p := mustStream(t, "La", "0")
	// payload byte: magic, one length digit, "La", one length digit
	p[10] = 0x01
	fixCRC(p)
	_, _, err := readStream(bytes.NewReader(p))
	if err != errPadding {
		t.Fatalf("readStream returned error %v; want %v", err, errPadding)
	}
}

func TestStreamShortPayload(t *testing.T) {
	var buf bytes.Buffer
	buf.Write(headerMagic)
	buf.WriteByte(2)
	buf.WriteString("La")
	buf.WriteByte(16) // sixteen bits announced
	buf.WriteByte(0)  // but a single payload byte
	p := append(buf.Bytes(), 0, 0, 0, 0)
	fixCRC(p)
	_, _, err := readStream(bytes.NewReader(p))
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("readStream returned error %v; want %v", err,
			io.ErrUnexpectedEOF)
	}
}

func TestWriteStreamRejects(t *testing.T) {
	var buf bytes.Buffer
	if _, err := writeStream(&buf, strings.Repeat("L", maxTreeLen+1),
		""); err != errTreeLen {
		t.Fatalf("writeStream returned error %v; want %v", err, errTreeLen)
	}
	if _, err := writeStream(&buf, "La", "0x1"); err == nil {
		t.Fatal("writeStream accepted a bit-string with stray characters")
	}
}

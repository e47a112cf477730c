package gen

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/rand"
)

// FillRandom reads exactly size bytes from src.
func FillRandom(src io.Reader, size int64) ([]byte, error) {
	out := make([]byte, size)
	if size == 0 {
		return out, nil
	}
	if _, err := io.ReadFull(src, out); err != nil {
		return nil, fmt.Errorf("read entropy: %w", err)
	}
	return out, nil
}

// SeededReader is a reproducible, non-cryptographic byte source.
type SeededReader struct {
	rng *rand.Rand
	buf [8]byte
	n   int
}

// NewSeededReader returns a reader that yields the same byte stream for the same seed.
func NewSeededReader(seed int64) *SeededReader {
	return &SeededReader{rng: rand.New(rand.NewSource(seed))}
}

// Read always fills p completely.
func (r *SeededReader) Read(p []byte) (int, error) {
	for i := range p {
		if r.n == 0 {
			binary.LittleEndian.PutUint64(r.buf[:], r.rng.Uint64())
			r.n = len(r.buf)
		}
		p[i] = r.buf[len(r.buf)-r.n]
		r.n--
	}
	return len(p), nil
}

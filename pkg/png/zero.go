package png

import "io"

// ZeroReader yields a fixed number of zero bytes, then io.EOF. A
// zero-filled image's filtered scanline stream, filter bytes included,
// is exactly such a run.
type ZeroReader struct {
	remaining int64
}

// NewZeroReader returns a reader producing exactly n zero bytes.
func NewZeroReader(n int64) *ZeroReader {
	return &ZeroReader{remaining: n}
}

// Read fills p with zeros up to the remaining count
func (zr *ZeroReader) Read(p []byte) (int, error) {
	if zr.remaining <= 0 {
		return 0, io.EOF
	}
	n := len(p)
	if int64(n) > zr.remaining {
		n = int(zr.remaining)
	}
	clear(p[:n])
	zr.remaining -= int64(n)
	return n, nil
}

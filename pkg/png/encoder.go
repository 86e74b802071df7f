// Package png synthesizes PNG files whose pixel data streams through the
// compressor block by block, so output size is not bounded by memory.
package png

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/liclac/pngbomb/pkg/png/chunk"
)

// Encoder writes complete PNG files chunk by chunk
type Encoder struct {
	cfg      Config
	progress Progress
}

// NewEncoder creates an encoder with the given configuration
func NewEncoder(cfg Config) *Encoder {
	return &Encoder{cfg: cfg}
}

// SetProgress installs a progress reporter; nil disables reporting
func (e *Encoder) SetProgress(p Progress) {
	e.progress = p
}

// Encode writes a PNG described by info to w, consuming exactly
// info.RawSize() bytes of filtered scanline data from src. Each scanline is
// a filter byte followed by packed pixels; src ending early fails with
// ErrDataSize. Returns the total number of bytes written.
func (e *Encoder) Encode(w io.WriteSeeker, info Info, src io.Reader) (int64, error) {
	if err := info.Validate(); err != nil {
		return 0, err
	}
	if err := e.cfg.Validate(); err != nil {
		return 0, err
	}

	sink := newBufferedSink(w)

	if _, err := sink.Write(Signature); err != nil {
		return 0, fmt.Errorf("signature: %w", err)
	}

	header := info.header()
	if _, err := chunk.Write(sink, TypeIHDR, header[:]); err != nil {
		return 0, err
	}

	if err := e.writeImageData(sink, info, src); err != nil {
		return 0, err
	}

	if _, err := chunk.Write(sink, TypeIEND, nil); err != nil {
		return 0, err
	}

	if err := sink.Flush(); err != nil {
		return 0, fmt.Errorf("flush: %w", err)
	}
	size, err := sink.Seek(0, io.SeekCurrent)
	if err != nil {
		return 0, fmt.Errorf("output size: %w", err)
	}
	return size, nil
}

// EncodeZero writes a PNG whose every pixel is zero: black, transparent or
// palette index 0 depending on the color type.
func (e *Encoder) EncodeZero(w io.WriteSeeker, info Info) (int64, error) {
	return e.Encode(w, info, NewZeroReader(info.RawSize()))
}

// writeImageData streams src through the compressor into a single
// deferred-length IDAT chunk
func (e *Encoder) writeImageData(sink *bufferedSink, info Info, src io.Reader) error {
	cw, err := chunk.Begin(sink, TypeIDAT, chunk.Streamed)
	if err != nil {
		return err
	}

	zw, err := zlib.NewWriterLevel(cw, e.cfg.CompressionLevel)
	if err != nil {
		return fmt.Errorf("compressor level %d: %w: %w", e.cfg.CompressionLevel, ErrInvalidConfig, err)
	}

	want := info.RawSize()
	rem := want
	buf := make([]byte, e.cfg.BlockSize)

	for rem > 0 {
		block := buf
		if rem < int64(len(block)) {
			block = buf[:rem]
		}

		n, err := src.Read(block)
		if n > 0 {
			if _, werr := zw.Write(block[:n]); werr != nil {
				return fmt.Errorf("compress pixel data: %w", werr)
			}
			rem -= int64(n)
			if e.progress != nil {
				e.progress.Set(want - rem)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read pixel data: %w", err)
		}
	}
	if rem > 0 {
		return fmt.Errorf("pixel data: got %d bytes, want %d: %w", want-rem, want, ErrDataSize)
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("compressor flush: %w", err)
	}
	_, err = cw.Finish()
	return err
}

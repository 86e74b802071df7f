package chunk

import (
	"encoding/binary"
	"fmt"
	"hash"
	"hash/crc32"
	"io"
)

// Writer frames a single chunk onto a seekable sink. The caller opens it
// with Begin, streams the payload through Write and seals it with Finish.
// Only one chunk may be open on a sink at a time.
type Writer struct {
	w        io.WriteSeeker
	typ      Type
	length   int64
	crc      hash.Hash32
	start    int64
	finished bool
}

// Begin opens a chunk and writes its header. A length of Streamed defers
// the length field to Finish; any other length is written immediately and
// enforced there.
func Begin(w io.WriteSeeker, typ Type, length int64) (*Writer, error) {
	if length < 0 && length != Streamed {
		return nil, fmt.Errorf("%s length must not be negative, got %d", typ, length)
	}
	if length > MaxLength {
		return nil, fmt.Errorf("%s length %d exceeds maximum %d", typ, length, MaxLength)
	}

	start, err := w.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%s start position: %w: %w", typ, ErrSeek, err)
	}

	// Streamed mode leaves the zero placeholder for Finish to patch
	var header [headerSize]byte
	if length != Streamed {
		binary.BigEndian.PutUint32(header[:lengthSize], uint32(length))
	}
	copy(header[lengthSize:], typ[:])
	if _, err := w.Write(header[:]); err != nil {
		return nil, fmt.Errorf("%s header: %w: %w", typ, ErrWrite, err)
	}

	crc := crc32.NewIEEE()
	crc.Write(typ[:])

	return &Writer{w: w, typ: typ, length: length, crc: crc, start: start}, nil
}

// Write appends payload bytes to the open chunk. The checksum folds in
// exactly the bytes the sink accepted.
func (cw *Writer) Write(p []byte) (int, error) {
	if cw.finished {
		return 0, fmt.Errorf("%s write: %w", cw.typ, ErrFinished)
	}
	n, err := cw.w.Write(p)
	if n > 0 {
		cw.crc.Write(p[:n])
	}
	if err != nil {
		return n, fmt.Errorf("%s payload: %w: %w", cw.typ, ErrWrite, err)
	}
	return n, nil
}

// Finish seals the chunk: it verifies or patches the length field, writes
// the checksum and consumes the writer. The payload size comes from the
// sink cursor positions, not a byte count. Returns the sink for the next
// chunk.
func (cw *Writer) Finish() (io.WriteSeeker, error) {
	if cw.finished {
		return nil, fmt.Errorf("%s finish: %w", cw.typ, ErrFinished)
	}
	cw.finished = true

	cur, err := cw.w.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, fmt.Errorf("%s end position: %w: %w", cw.typ, ErrSeek, err)
	}
	size := cur - cw.start - headerSize

	if cw.length != Streamed {
		if size != cw.length {
			return nil, fmt.Errorf("%s payload size: got %d, want %d: %w", cw.typ, size, cw.length, ErrLengthMismatch)
		}
	} else {
		if size > MaxLength {
			return nil, fmt.Errorf("%s payload size %d exceeds maximum %d: %w", cw.typ, size, MaxLength, ErrTooLong)
		}

		var length [lengthSize]byte
		binary.BigEndian.PutUint32(length[:], uint32(size))
		if _, err := cw.w.Seek(cw.start, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%s length patch seek: %w: %w", cw.typ, ErrSeek, err)
		}
		if _, err := cw.w.Write(length[:]); err != nil {
			return nil, fmt.Errorf("%s length patch: %w: %w", cw.typ, ErrWrite, err)
		}
		if _, err := cw.w.Seek(cur, io.SeekStart); err != nil {
			return nil, fmt.Errorf("%s length restore seek: %w: %w", cw.typ, ErrSeek, err)
		}
	}

	var sum [crcSize]byte
	binary.BigEndian.PutUint32(sum[:], cw.crc.Sum32())
	if _, err := cw.w.Write(sum[:]); err != nil {
		return nil, fmt.Errorf("%s checksum: %w: %w", cw.typ, ErrWrite, err)
	}

	return cw.w, nil
}

// Write emits a complete known-length chunk in one call.
func Write(w io.WriteSeeker, typ Type, payload []byte) (io.WriteSeeker, error) {
	cw, err := Begin(w, typ, int64(len(payload)))
	if err != nil {
		return nil, err
	}
	if _, err := cw.Write(payload); err != nil {
		return nil, err
	}
	return cw.Finish()
}

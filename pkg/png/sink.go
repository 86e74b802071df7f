package png

import (
	"bufio"
	"io"
)

// bufferedSink buffers writes to a seekable destination. Seeking flushes
// first, so cursor positions observed through it always match the
// destination's real position.
type bufferedSink struct {
	dst io.WriteSeeker
	buf *bufio.Writer
}

// newBufferedSink wraps dst in a write buffer
func newBufferedSink(dst io.WriteSeeker) *bufferedSink {
	return &bufferedSink{
		dst: dst,
		buf: bufio.NewWriterSize(dst, IOBufferSize),
	}
}

// Write buffers p
func (bs *bufferedSink) Write(p []byte) (int, error) {
	return bs.buf.Write(p)
}

// Seek flushes buffered bytes, then repositions the destination
func (bs *bufferedSink) Seek(offset int64, whence int) (int64, error) {
	if err := bs.buf.Flush(); err != nil {
		return 0, err
	}
	return bs.dst.Seek(offset, whence)
}

// Flush drains buffered bytes to the destination
func (bs *bufferedSink) Flush() error {
	return bs.buf.Flush()
}

// Package chunk frames length-prefixed, checksummed chunks onto a seekable
// sink. A chunk is a 4-byte big-endian length, a 4-byte type, the payload
// and a 4-byte big-endian CRC32 over type and payload. The length can be
// declared up front, or deferred and patched in place once the payload has
// streamed through.
package chunk

// Type is a 4-byte chunk type code.
type Type [4]byte

// String returns the type as text for logs and errors.
func (t Type) String() string {
	return string(t[:])
}

const (
	// Streamed marks the chunk length as unknown. Begin writes a zero
	// placeholder and Finish patches the real length in place.
	Streamed int64 = -1

	// MaxLength is the largest payload a chunk can carry. The most
	// significant bit of the length field must stay zero.
	MaxLength = 1<<31 - 1

	headerSize = 8 // 4-byte length + 4-byte type
	lengthSize = 4
	crcSize    = 4
)

package png

import "github.com/liclac/pngbomb/pkg/png/chunk"

// Signature is the 8-byte marker every PNG file starts with.
var Signature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// Chunk types emitted by the encoder
var (
	TypeIHDR = chunk.Type{'I', 'H', 'D', 'R'}
	TypeIDAT = chunk.Type{'I', 'D', 'A', 'T'}
	TypeIEND = chunk.Type{'I', 'E', 'N', 'D'}
)

// Encoder defaults
const (
	DefaultBlockSize = 65536 // 64KB
	IOBufferSize     = 32768 // 32KB
)

// IHDR layout
const (
	ihdrSize = 13 // two u32 dimensions + five single-byte fields

	maxDimension = 1<<31 - 1 // the top bit of each dimension must stay zero

	compressionDeflate = 0 // the only defined compression method
	filterAdaptive     = 0 // the only defined filter method
	interlaceNone      = 0
)

package png

import (
	"encoding/binary"
	"fmt"
	"math"
)

// ColorType identifies the PNG color model.
type ColorType uint8

const (
	ColorGrayscale      ColorType = 0
	ColorTruecolor      ColorType = 2
	ColorIndexed        ColorType = 3
	ColorGrayscaleAlpha ColorType = 4
	ColorTruecolorAlpha ColorType = 6
)

// Channels returns the number of samples per pixel
func (c ColorType) Channels() int {
	switch c {
	case ColorGrayscale, ColorIndexed:
		return 1
	case ColorGrayscaleAlpha:
		return 2
	case ColorTruecolor:
		return 3
	case ColorTruecolorAlpha:
		return 4
	default:
		return 0
	}
}

// String returns the color type name
func (c ColorType) String() string {
	switch c {
	case ColorGrayscale:
		return "grayscale"
	case ColorTruecolor:
		return "truecolor"
	case ColorIndexed:
		return "indexed"
	case ColorGrayscaleAlpha:
		return "grayscale-alpha"
	case ColorTruecolorAlpha:
		return "truecolor-alpha"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(c))
	}
}

// ParseColorType parses a color type name
func ParseColorType(s string) (ColorType, error) {
	switch s {
	case "grayscale":
		return ColorGrayscale, nil
	case "truecolor":
		return ColorTruecolor, nil
	case "indexed":
		return ColorIndexed, nil
	case "grayscale-alpha":
		return ColorGrayscaleAlpha, nil
	case "truecolor-alpha":
		return ColorTruecolorAlpha, nil
	default:
		return 0, fmt.Errorf("unknown color type %q: %w", s, ErrInvalidImage)
	}
}

// depthValid reports whether the bit depth is allowed for the color type
func depthValid(c ColorType, depth uint8) bool {
	switch c {
	case ColorGrayscale:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8 || depth == 16
	case ColorIndexed:
		return depth == 1 || depth == 2 || depth == 4 || depth == 8
	case ColorTruecolor, ColorGrayscaleAlpha, ColorTruecolorAlpha:
		return depth == 8 || depth == 16
	default:
		return false
	}
}

// Info describes the image being synthesized.
type Info struct {
	Width     uint32
	Height    uint32
	BitDepth  uint8
	ColorType ColorType
}

// Validate rejects dimension and format combinations PNG cannot express
func (i Info) Validate() error {
	if i.Width == 0 || i.Height == 0 {
		return fmt.Errorf("dimensions %dx%d must be positive: %w", i.Width, i.Height, ErrInvalidImage)
	}
	if i.Width > maxDimension || i.Height > maxDimension {
		return fmt.Errorf("dimensions %dx%d exceed maximum %d: %w", i.Width, i.Height, maxDimension, ErrInvalidImage)
	}
	if !depthValid(i.ColorType, i.BitDepth) {
		return fmt.Errorf("bit depth %d not allowed for %s: %w", i.BitDepth, i.ColorType, ErrInvalidImage)
	}
	if i.RowBytes()+1 > math.MaxInt64/int64(i.Height) {
		return fmt.Errorf("image %dx%d at depth %d overflows: %w", i.Width, i.Height, i.BitDepth, ErrInvalidImage)
	}
	return nil
}

// RowBytes returns the packed byte width of one scanline
func (i Info) RowBytes() int64 {
	bits := int64(i.Width) * int64(i.BitDepth) * int64(i.ColorType.Channels())
	return (bits + 7) / 8
}

// RawSize returns the size of the filtered scanline stream: every row
// carries a leading filter byte before its packed pixels
func (i Info) RawSize() int64 {
	return int64(i.Height) * (1 + i.RowBytes())
}

// header encodes the IHDR payload
func (i Info) header() [ihdrSize]byte {
	var b [ihdrSize]byte
	binary.BigEndian.PutUint32(b[0:4], i.Width)
	binary.BigEndian.PutUint32(b[4:8], i.Height)
	b[8] = i.BitDepth
	b[9] = uint8(i.ColorType)
	b[10] = compressionDeflate
	b[11] = filterAdaptive
	b[12] = interlaceNone
	return b
}

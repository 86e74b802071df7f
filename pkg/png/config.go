package png

import (
	"fmt"

	"github.com/klauspost/compress/zlib"
)

// Config holds encoder tuning parameters
type Config struct {
	BlockSize        int // raw bytes read and compressed per step
	CompressionLevel int // zlib level, HuffmanOnly..BestCompression
}

// DefaultConfig returns the default encoder configuration
func DefaultConfig() Config {
	return Config{
		BlockSize:        DefaultBlockSize,
		CompressionLevel: zlib.BestSpeed,
	}
}

// Validate rejects unusable configurations
func (c Config) Validate() error {
	if c.BlockSize < 1 {
		return fmt.Errorf("block size must be at least 1, got %d: %w", c.BlockSize, ErrInvalidConfig)
	}
	if c.CompressionLevel < zlib.HuffmanOnly || c.CompressionLevel > zlib.BestCompression {
		return fmt.Errorf("compression level %d out of range [%d, %d]: %w",
			c.CompressionLevel, zlib.HuffmanOnly, zlib.BestCompression, ErrInvalidConfig)
	}
	return nil
}

package png

import "errors"

var (
	// Argument errors, rejected before anything is written
	ErrInvalidImage  = errors.New("invalid image parameters")
	ErrInvalidConfig = errors.New("invalid encoder configuration")

	// Contract errors
	ErrDataSize = errors.New("pixel data size mismatch")
)

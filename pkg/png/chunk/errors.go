package chunk

import "errors"

var (
	// I/O errors
	ErrWrite = errors.New("chunk write failed")
	ErrSeek  = errors.New("chunk seek failed")

	// Contract errors
	ErrLengthMismatch = errors.New("chunk length mismatch")
	ErrTooLong        = errors.New("chunk payload too long")
	ErrFinished       = errors.New("chunk already finished")
)

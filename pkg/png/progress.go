package png

// Progress receives cumulative raw byte counts while an image is encoded.
// The final call reports the full raw size.
type Progress interface {
	Set(done int64)
}

// ProgressFunc adapts a function to the Progress interface.
type ProgressFunc func(done int64)

// Set calls the function itself
func (f ProgressFunc) Set(done int64) {
	f(done)
}

package fft

import "errors"

// Sentinel errors returned by transform operations. Validation happens
// before any mutation, so a non-nil error means the buffer is unchanged.
var (
	// ErrInvalidSize is returned when the transform length is zero or
	// not a power of two.
	ErrInvalidSize = errors.New("fft: invalid size")

	// ErrSizeMismatch is returned when destination and source lengths
	// disagree.
	ErrSizeMismatch = errors.New("fft: size mismatch")
)

// Package fft implements an in-place radix-2 decimation-in-time fast
// Fourier transform over power-of-two-length complex sequences.
//
// The forward transform divides every output element by n; the inverse
// applies no scaling, so Transform(Forward) followed by Transform(Inverse)
// reproduces the original sequence.
package fft

import "math"

// Complex is the type constraint for the sample precision of one call.
type Complex interface {
	~complex64 | ~complex128
}

// Direction selects the sign of the root-of-unity exponent and whether
// the 1/n normalization is applied.
type Direction int

const (
	Forward Direction = iota
	Inverse
)

func (d Direction) String() string {
	if d == Inverse {
		return "inverse"
	}
	return "forward"
}

// Transform computes the DFT (or inverse DFT) of data in place.
// len(data) must be a power of two; n = 1 is the identity. On error the
// buffer is untouched.
func Transform[C Complex](data []C, dir Direction) error {
	n := len(data)
	if n < 1 || n&(n-1) != 0 {
		return ErrInvalidSize
	}
	if n == 1 {
		return nil
	}

	permute(data)
	butterflies(data, dir)

	if dir == Forward {
		inv := complexFrom[C](1/float64(n), 0)
		for i := range data {
			data[i] *= inv
		}
	}
	return nil
}

// TransformInto copies src into dst and transforms dst in place. dst and
// src may alias. src is validated before dst is written.
func TransformInto[C Complex](dst, src []C, dir Direction) error {
	n := len(src)
	if n < 1 || n&(n-1) != 0 {
		return ErrInvalidSize
	}
	if len(dst) != n {
		return ErrSizeMismatch
	}
	copy(dst, src)
	return Transform(dst, dir)
}

// butterflies performs the iterative decimation-in-time combine passes on
// a sequence already in bit-reversed order. Group size doubles each pass;
// within a group the running twiddle w advances by the stage step factor
// w_n^(n/size) = e^{s*2pi*i/size}.
//
// The running product is carried in complex128 regardless of C so that
// magnitude drift stays below the caller's precision even at large n.
func butterflies[C Complex](data []C, dir Direction) {
	n := len(data)
	sign := -1.0
	if dir == Inverse {
		sign = 1.0
	}

	for size := 2; size <= n; size <<= 1 {
		half := size >> 1
		angle := sign * 2 * math.Pi / float64(size)
		step := complex(math.Cos(angle), math.Sin(angle))

		for start := 0; start < n; start += size {
			w := complex(1, 0)
			for i := start; i < start+half; i++ {
				even := data[i]
				odd := data[i+half] * complexFrom[C](real(w), imag(w))
				data[i] = even + odd
				data[i+half] = even - odd
				w *= step
			}
		}
	}
}

// complexFrom builds a complex number of type C from float64 components.
func complexFrom[C Complex](re, im float64) C {
	var zero C
	switch any(zero).(type) {
	case complex64:
		return any(complex(float32(re), float32(im))).(C)
	case complex128:
		return any(complex(re, im)).(C)
	default:
		panic("fft: unsupported complex type")
	}
}

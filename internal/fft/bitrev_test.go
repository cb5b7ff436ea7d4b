package fft

import (
	"math/rand"
	"testing"
)

func TestReverseBits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		x      uint64
		k      int
		expect uint64
	}{
		{"zero value", 0, 3, 0},
		{"zero width", 0, 0, 0},

		{"1 bit: 1", 1, 1, 1},

		{"2 bits: 0b01", 0b01, 2, 0b10},
		{"2 bits: 0b10", 0b10, 2, 0b01},
		{"2 bits: 0b11", 0b11, 2, 0b11},

		{"3 bits: 0b001", 0b001, 3, 0b100},
		{"3 bits: 0b011", 0b011, 3, 0b110},
		{"3 bits: 0b110", 0b110, 3, 0b011},

		{"8 bits: 0x12", 0x12, 8, 0x48},
		{"8 bits: 0xFF", 0xFF, 8, 0xFF},
		{"10 bits: 0x123", 0x123, 10, 0x312},
		{"16 bits: 0x1234", 0x1234, 16, 0x2C48},
		{"20 bits: 0x00001", 0x00001, 20, 0x80000},
		{"64 bits: 1", 1, 64, 1 << 63},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := reverseBits(tt.x, tt.k); got != tt.expect {
				t.Errorf("reverseBits(%#x, %d) = %#x, want %#x", tt.x, tt.k, got, tt.expect)
			}
			if got := reverseBitsTable(tt.x, tt.k); got != tt.expect {
				t.Errorf("reverseBitsTable(%#x, %d) = %#x, want %#x", tt.x, tt.k, got, tt.expect)
			}
		})
	}
}

// The shift-and-mask and byte-table strategies must agree bit for bit for
// every order: exhaustively for small k, on dense random samples beyond.
func TestReverseBitsStrategiesAgree(t *testing.T) {
	t.Parallel()

	for k := 0; k <= 16; k++ {
		for x := uint64(0); x < 1<<uint(k); x++ {
			a := reverseBits(x, k)
			b := reverseBitsTable(x, k)
			if a != b {
				t.Fatalf("k=%d x=%#x: shift=%#x table=%#x", k, x, a, b)
			}
		}
	}

	rng := rand.New(rand.NewSource(1))
	for k := 17; k <= 64; k++ {
		mask := ^uint64(0) >> (64 - uint(k))
		for range 10000 {
			x := rng.Uint64() & mask
			a := reverseBits(x, k)
			b := reverseBitsTable(x, k)
			if a != b {
				t.Fatalf("k=%d x=%#x: shift=%#x table=%#x", k, x, a, b)
			}
		}
	}
}

func TestReverseBitsInvolution(t *testing.T) {
	t.Parallel()

	for k := 1; k <= 12; k++ {
		for x := uint64(0); x < 1<<uint(k); x++ {
			if got := reverseBits(reverseBits(x, k), k); got != x {
				t.Fatalf("k=%d: double reversal of %#x gave %#x", k, x, got)
			}
		}
	}
}

func TestPermuteKnownOrder(t *testing.T) {
	t.Parallel()

	data := []complex128{0, 1, 2, 3, 4, 5, 6, 7}
	permute(data)

	want := []complex128{0, 4, 2, 6, 1, 5, 3, 7}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("permute order = %v, want %v", data, want)
		}
	}
}

func TestPermuteInvolution(t *testing.T) {
	t.Parallel()

	for n := 1; n <= 1<<12; n <<= 1 {
		data := make([]complex128, n)
		for i := range data {
			data[i] = complex(float64(i), -float64(i))
		}

		permute(data)
		permute(data)

		for i := range data {
			if data[i] != complex(float64(i), -float64(i)) {
				t.Fatalf("n=%d: element %d moved after double permutation", n, i)
			}
		}
	}
}

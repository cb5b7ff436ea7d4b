package fft

// permute reorders data in place so that the element at index i moves to
// the k-bit reversal of i, where len(data) = 2^k. Swapping only when
// rev(i) > i visits each pair once and leaves fixed points alone, so the
// permutation is an involution. Assumes the caller validated the length.
func permute[C Complex](data []C) {
	n := len(data)
	k := log2(n)
	for i := 1; i < n; i++ {
		rev := int(reverseBitsTable(uint64(i), k))
		if rev > i {
			data[i], data[rev] = data[rev], data[i]
		}
	}
}

// log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func log2(n int) int {
	result := 0
	for n > 1 {
		n >>= 1
		result++
	}
	return result
}

// reverseBits reverses the low k bits of x bit by bit.
// Example: reverseBits(0b110, 3) = 0b011.
func reverseBits(x uint64, k int) uint64 {
	var result uint64
	for range k {
		result = result<<1 | x&1
		x >>= 1
	}
	return result
}

// revByte maps a byte to its bit reversal.
var revByte [256]uint8

func init() {
	for i := range revByte {
		revByte[i] = uint8(reverseBits(uint64(i), 8))
	}
}

// reverseBitsTable reverses the low k bits of x by reversing each byte of
// the word through revByte, composing the reversed bytes in opposite
// order, and shifting the full 64-bit reversal down to k bits. Must agree
// with reverseBits for every k up to 64; assumes x < 2^k.
func reverseBitsTable(x uint64, k int) uint64 {
	var result uint64
	for shift := 0; shift < 64; shift += 8 {
		result = result<<8 | uint64(revByte[x>>shift&0xff])
	}
	return result >> (64 - uint(k))
}

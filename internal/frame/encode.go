package frame

import (
	"io"
	"math"
	"math/bits"
)

// EncodedLen is the wire size of one frame: two pixels of 4-bit channels
// pack into three bytes.
const EncodedLen = Width * Height * 3 / 2

// gamma maps a linear 8-bit channel value to its gamma-corrected value
// (exponent 2.5, matching the panel's perceived brightness curve).
var gamma [256]uint8

func init() {
	for i := range gamma {
		gamma[i] = uint8(255 * math.Pow(float64(i)/255, 2.5))
	}
}

// Encode packs the frame into the FPGA wire format. Rows are sent top to
// bottom, columns left to right. Channels are gamma corrected and reduced
// to 4 bits, and each adjacent pixel pair packs into three bytes:
//
//	g0r0, r1b0, b1g1
//
// The SPI bus shifts bytes MSB first, which would split a pixel that
// crosses a byte boundary, so every byte is bit-reversed and the stream
// is consumed LSB first on the wire.
func (f *Frame) Encode() []byte {
	out := make([]byte, 0, EncodedLen)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x += 2 {
			p0, p1 := f.At(x, y), f.At(x+1, y)
			r0, g0, b0 := gamma[p0.R]>>4, gamma[p0.G]>>4, gamma[p0.B]>>4
			r1, g1, b1 := gamma[p1.R]>>4, gamma[p1.G]>>4, gamma[p1.B]>>4
			out = append(out,
				bits.Reverse8(g0<<4|r0),
				bits.Reverse8(r1<<4|b0),
				bits.Reverse8(b1<<4|g1),
			)
		}
	}
	return out
}

// EncodeTo writes the encoded frame to w.
func (f *Frame) EncodeTo(w io.Writer) error {
	_, err := w.Write(f.Encode())
	return err
}

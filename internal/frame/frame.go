// Package frame models the 32x32 RGB display plane and its hardware wire
// format, and provides sinks that push rendered frames to an SPI device or
// to a terminal preview.
package frame

// Display dimensions of the LED matrix.
const (
	Width  = 32
	Height = 32
)

// Pixel is an RGB triple with 8-bit channels. The display has no alpha.
type Pixel struct {
	R, G, B uint8
}

// Frame is a Width x Height plane of pixels, stored row-major.
type Frame struct {
	pix [Width * Height]Pixel
}

// At returns the pixel at column x, row y.
func (f *Frame) At(x, y int) Pixel {
	return f.pix[y*Width+x]
}

// Set writes the pixel at column x, row y.
func (f *Frame) Set(x, y int, p Pixel) {
	f.pix[y*Width+x] = p
}

// SetColumn replaces column x with col, col[0] at the top row.
func (f *Frame) SetColumn(x int, col [Height]Pixel) {
	for y := range col {
		f.pix[y*Width+x] = col[y]
	}
}

// ShiftRight scrolls the frame one column to the right and blanks the
// leftmost column.
func (f *Frame) ShiftRight() {
	for y := 0; y < Height; y++ {
		row := f.pix[y*Width : y*Width+Width]
		copy(row[1:], row[:Width-1])
		row[0] = Pixel{}
	}
}

// Clear blanks every pixel.
func (f *Frame) Clear() {
	f.pix = [Width * Height]Pixel{}
}

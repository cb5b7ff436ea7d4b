package frame

import (
	"fmt"
	"io"
	"os"
)

// Sink receives rendered frames.
type Sink interface {
	Display(f *Frame) error
	Close() error
}

// SPISink streams encoded frames to an SPI device node (or any writer
// carrying the same wire protocol).
type SPISink struct {
	w io.WriteCloser
}

// OpenSPI opens the SPI device at path, e.g. /dev/spidev0.0.
func OpenSPI(path string) (*SPISink, error) {
	f, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("opening SPI device: %w", err)
	}
	return &SPISink{w: f}, nil
}

// NewSPISink wraps an already-open writer, which the sink takes ownership of.
func NewSPISink(w io.WriteCloser) *SPISink {
	return &SPISink{w: w}
}

func (s *SPISink) Display(f *Frame) error {
	return f.EncodeTo(s.w)
}

func (s *SPISink) Close() error {
	return s.w.Close()
}

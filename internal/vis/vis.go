// Package vis generates display frames from a song: a scrolling spectrum
// visualizer plus simple test patterns.
package vis

import (
	"time"

	"github.com/olivier-w/ledvis/internal/frame"
	"github.com/olivier-w/ledvis/internal/song"
)

// Generator produces the frame for a given playback offset. NextFrame
// returns false when the song (or pattern) has nothing more to show.
type Generator interface {
	NextFrame(s *song.Song, offset time.Duration, f *frame.Frame) bool
	FrameRate() int
}

// Func adapts a closure into a Generator, handy for prototyping patterns.
type Func struct {
	Rate int
	Fn   func(s *song.Song, offset time.Duration, f *frame.Frame) bool
}

func (g *Func) NextFrame(s *song.Song, offset time.Duration, f *frame.Frame) bool {
	return g.Fn(s, offset, f)
}

func (g *Func) FrameRate() int { return g.Rate }

// TestPattern lights a single red row for as long as the song plays.
func TestPattern() *Func {
	return &Func{
		Rate: 10,
		Fn: func(s *song.Song, offset time.Duration, f *frame.Frame) bool {
			if offset >= s.Duration() {
				return false
			}
			for x := 0; x < frame.Width; x++ {
				f.Set(x, 1, frame.Pixel{R: 255})
			}
			return true
		},
	}
}

// RainbowWash fills every row with a horizontal rainbow gradient.
func RainbowWash() *Func {
	return &Func{
		Rate: 10,
		Fn: func(s *song.Song, offset time.Duration, f *frame.Frame) bool {
			if offset >= s.Duration() {
				return false
			}
			for x := 0; x < frame.Width; x++ {
				p := Rainbow(float64(x) / frame.Width)
				for y := 0; y < frame.Height; y++ {
					f.Set(x, y, p)
				}
			}
			return true
		},
	}
}

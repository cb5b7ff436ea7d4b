package frame

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

type colorProfile uint8

const (
	colorNone colorProfile = iota
	colorANSI256
	colorTrueColor
)

var (
	profileOnce sync.Once
	profile     colorProfile
	seqCache    sync.Map
)

func currentColorProfile() colorProfile {
	profileOnce.Do(func() {
		if _, disabled := os.LookupEnv("NO_COLOR"); disabled {
			profile = colorNone
			return
		}
		term := strings.ToLower(os.Getenv("TERM"))
		colorTerm := strings.ToLower(os.Getenv("COLORTERM"))
		switch {
		case strings.Contains(colorTerm, "truecolor"), strings.Contains(colorTerm, "24bit"):
			profile = colorTrueColor
		case term == "", term == "dumb":
			profile = colorNone
		default:
			profile = colorANSI256
		}
	})
	return profile
}

// fg=true selects a foreground sequence, false a background one.
func colorSequence(p colorProfile, px Pixel, fg bool) string {
	key := uint32(p)<<25 | uint32(px.R)<<17 | uint32(px.G)<<9 | uint32(px.B)<<1
	if fg {
		key |= 1
	}
	if seq, ok := seqCache.Load(key); ok {
		return seq.(string)
	}

	layer := 48
	if fg {
		layer = 38
	}
	var seq string
	switch p {
	case colorTrueColor:
		seq = fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", layer, px.R, px.G, px.B)
	case colorANSI256:
		r := int(px.R) * 5 / 255
		g := int(px.G) * 5 / 255
		b := int(px.B) * 5 / 255
		seq = fmt.Sprintf("\x1b[%d;5;%dm", layer, 16+36*r+6*g+b)
	default:
		seq = ""
	}

	seqCache.Store(key, seq)
	return seq
}

// TermSink previews frames in a terminal, two pixel rows per text line
// using the upper-half-block glyph. It stands in for the LED matrix when
// no SPI device is attached.
type TermSink struct {
	w       io.Writer
	profile colorProfile
	first   bool
	buf     strings.Builder
}

// NewTermSink creates a terminal preview sink writing to w
// (typically os.Stdout).
func NewTermSink(w io.Writer) *TermSink {
	return &TermSink{w: w, profile: currentColorProfile(), first: true}
}

func (t *TermSink) Display(f *Frame) error {
	t.buf.Reset()
	if t.first {
		// clear screen and hide the cursor once, then home each frame
		t.buf.WriteString("\x1b[2J\x1b[?25l")
		t.first = false
	}
	t.buf.WriteString("\x1b[H")

	for y := 0; y < Height; y += 2 {
		for x := 0; x < Width; x++ {
			top, bottom := f.At(x, y), f.At(x, y+1)
			if t.profile == colorNone {
				t.buf.WriteByte(shade(top, bottom))
				continue
			}
			t.buf.WriteString(colorSequence(t.profile, top, true))
			t.buf.WriteString(colorSequence(t.profile, bottom, false))
			t.buf.WriteRune('▀')
		}
		t.buf.WriteString("\x1b[0m\n")
	}

	_, err := io.WriteString(t.w, t.buf.String())
	return err
}

func (t *TermSink) Close() error {
	if t.first {
		return nil
	}
	_, err := io.WriteString(t.w, "\x1b[0m\x1b[?25h\n")
	return err
}

// shade approximates a pixel pair for colorless terminals.
func shade(a, b Pixel) byte {
	lum := int(a.R) + int(a.G) + int(a.B) + int(b.R) + int(b.G) + int(b.B)
	switch {
	case lum > 900:
		return '#'
	case lum > 450:
		return '+'
	case lum > 120:
		return '.'
	default:
		return ' '
	}
}

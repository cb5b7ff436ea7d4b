package vis

import (
	"math"
	"math/cmplx"
	"time"

	"github.com/olivier-w/ledvis/internal/fft"
	"github.com/olivier-w/ledvis/internal/frame"
	"github.com/olivier-w/ledvis/internal/song"
)

// firstBin is the width of the smallest (lowest-frequency) spectrum bin.
const firstBin = 8

// ScrollingFFT renders a scrolling spectrogram: each frame the display
// shifts right and the spectrum of the newest time slice becomes the
// leftmost column, low frequencies at the bottom.
type ScrollingFFT struct {
	cfg Config

	// derived on the first frame
	maxSample  float64
	skipBins   int
	calibrated bool
}

// NewScrollingFFT creates the generator with the given tunables.
func NewScrollingFFT(cfg Config) *ScrollingFFT {
	cfg.applyDefaults()
	return &ScrollingFFT{cfg: cfg}
}

func (g *ScrollingFFT) FrameRate() int { return g.cfg.FrameRate }

func (g *ScrollingFFT) interval() time.Duration {
	return time.Second / time.Duration(g.cfg.FrameRate)
}

func (g *ScrollingFFT) NextFrame(s *song.Song, offset time.Duration, f *frame.Frame) bool {
	if !g.calibrated {
		g.maxSample = float64(s.MaxSample())
		if g.maxSample <= 0 {
			g.maxSample = 1
		}
		// suppress DC and low-frequency rumble below the frame rate
		g.skipBins = g.cfg.FrameRate
		g.calibrated = true
	}

	spec, ok := g.spectrum(s, offset)
	if !ok {
		return false
	}

	col := g.pickPixels(spec)
	f.ShiftRight()
	f.SetColumn(0, col)
	return true
}

// spectrum transforms the time slice at offset, zero-padded to the next
// power of two. Returns false when the slice is empty (song over) or too
// short to fill a column.
func (g *ScrollingFFT) spectrum(s *song.Song, offset time.Duration) ([]complex64, bool) {
	window := s.Range(offset, g.interval())
	if len(window) == 0 {
		return nil, false
	}

	spec := make([]complex64, nextPow2(len(window)))
	for i, v := range window {
		spec[i] = complex(v, 0)
	}

	if err := fft.Transform(spec, fft.Forward); err != nil {
		return nil, false
	}
	if len(spec) <= frame.Height {
		return nil, false
	}
	return spec, true
}

// pickPixels maps the spectrum onto one display column. Only the low
// SpecFrac of the bins carries interesting music content; those are
// grouped into Height bins of geometrically growing width (b_i =
// alpha*b_{i-1}), log-magnitude scaled against the track's loudest
// sample, gated by the cutoff, and colored along the rainbow.
func (g *ScrollingFFT) pickPixels(spec []complex64) [frame.Height]frame.Pixel {
	var col [frame.Height]frame.Pixel

	usable := int(float64(len(spec))*g.cfg.SpecFrac) - g.skipBins
	if usable < firstBin {
		usable = firstBin
	}
	alpha := binGrowth(firstBin, usable)

	lo := g.skipBins
	for i := 0; i < frame.Height; i++ {
		width := int(firstBin * math.Pow(alpha, float64(i)))
		if width < 1 {
			width = 1
		}
		hi := lo + width
		if hi > len(spec) {
			hi = len(spec)
		}

		var sum complex128
		for _, v := range spec[lo:hi] {
			sum += complex128(v)
		}
		lo = hi

		level := math.Log(cmplx.Abs(sum)+1) / math.Log(float64(width)*g.maxSample)
		if level >= g.cfg.Cutoff {
			level = (level - g.cfg.Cutoff) / (1 - g.cfg.Cutoff)
			level = math.Cbrt(level)
			col[i] = Rainbow(0.8 - level)
		}
	}

	// low frequencies at the bottom of the column
	for i, j := 0, len(col)-1; i < j; i, j = i+1, j-1 {
		col[i], col[j] = col[j], col[i]
	}
	return col
}

// binGrowth solves for alpha such that Height bins of width b0*alpha^i
// cover n spectrum samples: (alpha^Height - 1)/(alpha - 1) = n/b0.
// Guess-and-check with a fixed step is plenty accurate for display use.
func binGrowth(b0, n int) float64 {
	const step = 0.001
	const tolerance = 1.0

	target := float64(n) / float64(b0)
	alpha := 1.0 + step
	for {
		delta := target - (math.Pow(alpha, frame.Height)-1)/(alpha-1)
		if delta > 0 && delta < tolerance {
			return alpha
		}
		if delta < 0 {
			return alpha - step
		}
		alpha += step
	}
}

// Rainbow maps x in [0, 1) to a color x of the way through a rainbow.
func Rainbow(x float64) frame.Pixel {
	f := 2 * math.Pi * x
	const phase = 2 * math.Pi / 3
	return frame.Pixel{
		R: uint8(127 * (1 + math.Cos(f-phase))),
		G: uint8(127 * (1 + math.Cos(f))),
		B: uint8(127 * (1 + math.Cos(f-2*phase))),
	}
}

// nextPow2 returns the smallest power of two >= n (minimum 1).
func nextPow2(n int) int {
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}
